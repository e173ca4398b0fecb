package nes

import (
	"fmt"
	"io"
)

// traceRecord is one instruction boundary's worth of architectural
// state, captured before the instruction executes so a trace line
// reads "this is what the CPU saw about to run this opcode" — the
// same convention nestest.log and flga-vnes/nes/disasembler.go use.
type traceRecord struct {
	pc       uint16
	opcode   byte
	b1, b2   byte
	hasB1    bool
	hasB2    bool
	mnemonic string
	operand  uint16
	a, x, y  byte
	p        byte
	sp       byte
	dot      int
	scanline int
}

// ppuDotScanline derives the PPU dot/scanline pair purely from the
// CPU's monotonic cycle counter, since no PPU is actually emulated:
// three PPU dots elapse per CPU cycle, 341 dots per scanline, 262
// scanlines per frame, rebased so that the pre-render line reads -1
// (the convention nestest.log's CYC/SL columns follow).
func ppuDotScanline(totalCycles uint64) (dot, scanline int) {
	ppuCycles := totalCycles * 3
	dot = int(ppuCycles % 341)
	rawScanline := int((ppuCycles / 341) % 262)
	scanline = (rawScanline+242)%262 - 1
	return dot, scanline
}

// debugStep captures a traceRecord for the instruction about to run,
// writes it to w, then performs the step exactly as step() would.
func (c *cpu) debugStep(w io.Writer) (byte, error) {
	rec := c.captureTrace()
	fmt.Fprintln(w, formatTrace(rec))
	return c.step()
}

// captureTrace reads ahead without mutating CPU state: it peeks at
// the opcode and its operand bytes and resolves the operand exactly
// as step() is about to, but the actual PC/register mutation only
// happens once step() runs afterward.
func (c *cpu) captureTrace() traceRecord {
	pc0 := c.pc
	opcode := c.read(pc0)
	inst := instructions[opcode]

	rec := traceRecord{
		pc:       pc0,
		opcode:   opcode,
		mnemonic: inst.mnemonic,
		a:        c.a,
		x:        c.x,
		y:        c.y,
		p:        byte(c.p),
		sp:       c.s,
	}
	rec.dot, rec.scanline = ppuDotScanline(c.total)

	if inst.length >= 2 {
		rec.b1 = c.read(pc0 + 1)
		rec.hasB1 = true
	}
	if inst.length >= 3 {
		rec.b2 = c.read(pc0 + 2)
		rec.hasB2 = true
	}

	if inst.mnemonic != "" {
		addr, _ := c.resolveAddress(inst, pc0)
		rec.operand = addr
	}

	return rec
}

// formatTrace renders a traceRecord in the field layout spec.md §6
// describes: hex PC and opcode, up to two operand bytes (blank when
// the instruction doesn't have them), the mnemonic, the resolved
// operand, then the register/flag/stack/PPU-position columns.
func formatTrace(r traceRecord) string {
	b1 := "  "
	if r.hasB1 {
		b1 = fmt.Sprintf("%02X", r.b1)
	}
	b2 := "  "
	if r.hasB2 {
		b2 = fmt.Sprintf("%02X", r.b2)
	}

	return fmt.Sprintf(
		"%04X %02X %s %s %s %04X \t\tA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%3d SL:%3d",
		r.pc, r.opcode, b1, b2, r.mnemonic, r.operand,
		r.a, r.x, r.y, r.p, r.sp, r.dot, r.scanline,
	)
}
