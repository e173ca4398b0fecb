package nes

// flag is one bit of the processor status register. Held as named bit
// constants over a single byte rather than seven separate booleans —
// functionally the same "seven independent flags" the spec describes,
// but it packs and unpacks at PHP/PLP/BRK/RTI for free instead of
// needing an explicit pack routine, matching flga-vnes/nes/cpu.go's
// status type.
type flag byte

const (
	flagCarry flag = 1 << iota
	flagZero
	flagInterruptDisable
	flagDecimal
	flagBreak
	flagUnused
	flagOverflow
	flagNegative
)

const (
	stackBase = 0x0100
	resetVec  = 0xFFFC
	irqBrkVec = 0xFFFE
	powerOnPC = 0x0034
	powerOnS  = 0xFD
)

// cpu is the 2A03 register file plus the stepper's bookkeeping. It
// holds no device state of its own: every memory effect flows through
// bus, so mirroring and register windows live there, not here.
type cpu struct {
	a, x, y byte
	pc      uint16
	s       byte
	p       flag

	mode addressingMode // latched for the in-flight instruction

	remaining byte   // cycles still owed for the in-flight instruction
	total     uint64 // monotonic cycle counter, used for trace cadence

	branchExtra       byte // dynamic branch-taken/page-cross cycles, banked by branch()
	branchPageCrossed bool // set by resolveAddress for the in-flight relative-mode instruction

	bus *bus
	err error // sticky error from the most recent bus write
}

// newCPU returns a CPU in its documented post-power-up state: A=X=Y=0,
// PC=0x0034 (a reset-vector-probing artifact of early test harnesses,
// not the hardware reset vector — see reset), S=0xFD, I=1 and every
// other flag clear.
func newCPU(b *bus) *cpu {
	return &cpu{
		s:   powerOnS,
		pc:  powerOnPC,
		p:   flagInterruptDisable | flagUnused,
		bus: b,
	}
}

// setPC overrides the program counter directly, for callers that need
// a specific entry point (e.g. nestest's automated-mode PC of 0xC000).
func (c *cpu) setPC(pc uint16) {
	c.pc = pc
}

// reset reads the real 6502 reset vector at 0xFFFC/0xFFFD and jumps
// there, as actual hardware does. newCPU's PC default is deliberately
// not this value; reset is the only path that reads the vector.
func (c *cpu) reset() {
	c.p |= flagInterruptDisable
	c.s -= 3
	c.pc = c.readAddress(resetVec)
}

// readAddress reads a little-endian 16-bit pointer from the bus.
func (c *cpu) readAddress(addr uint16) uint16 {
	lo := c.bus.read(addr)
	hi := c.bus.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read and write are the CPU's only way to touch memory; write sticks
// the first error it sees so the 75 semantic methods in opcodes.go and
// opcodes_illegal.go can
// stay void and Step can surface the failure once, at the instruction
// boundary, instead of threading an error return through every one of
// them.
func (c *cpu) read(addr uint16) byte {
	return c.bus.read(addr)
}

func (c *cpu) write(addr uint16, v byte) {
	if c.err != nil {
		return
	}
	if err := c.bus.write(addr, v); err != nil {
		c.err = err
	}
}

// step advances the CPU by exactly one instruction: fetch, decode,
// resolve the operand, advance PC by the instruction's declared
// length, execute, then charge the cycle budget for the next call to
// tick. Returns the number of cycles the instruction cost.
func (c *cpu) step() (byte, error) {
	pc0 := c.pc

	opcode := c.read(pc0)
	inst := instructions[opcode]
	if inst.mnemonic == "" {
		return 0, wrapUnknownOpcode(pc0, opcode)
	}

	c.mode = inst.mode

	addr, pageCrossed := c.resolveAddress(inst, pc0)

	extra := byte(0)
	if inst.kind == instrRead && pageCrossed {
		extra += inst.pageCycles
	}
	c.branchPageCrossed = pageCrossed

	c.pc = pc0 + uint16(inst.length)

	c.err = nil
	c.execute(inst, addr)
	if c.err != nil {
		return 0, c.err
	}

	used := inst.cycles + extra + c.branchExtra
	c.branchExtra = 0

	c.total += uint64(used)
	if used > 0 {
		c.remaining = used - 1
	}
	return used, nil
}

// tick advances the machine by exactly one CPU clock cycle: if the
// in-flight instruction still owes cycles, it just decrements the
// counter; otherwise it performs a whole step and banks the result.
func (c *cpu) tick() error {
	if c.remaining > 0 {
		c.remaining--
		return nil
	}
	_, err := c.step()
	return err
}

// resolveAddress implements the thirteen addressing modes of spec.md
// §4.4. pc0 is the address of the opcode byte itself (not yet
// advanced); operand bytes live at pc0+1 (and pc0+2 for two-byte
// operands). It never mutates c.pc — step alone advances PC, by the
// instruction's declared length — so relative addressing computes its
// target from pc0+inst.length, the address of the following
// instruction, exactly as real hardware does.
func (c *cpu) resolveAddress(inst instruction, pc0 uint16) (addr uint16, pageCrossed bool) {
	base := pc0 + 1

	switch inst.mode {
	case implied, accumulator:
		return 0, false

	case immediate:
		return base, false

	case zeroPage:
		return uint16(c.read(base)), false

	case zeroPageIndexedX:
		return uint16(c.read(base) + c.x), false

	case zeroPageIndexedY:
		return uint16(c.read(base) + c.y), false

	case absolute:
		lo := c.read(base)
		hi := c.read(base + 1)
		return uint16(hi)<<8 | uint16(lo), false

	case indexedX:
		lo := c.read(base)
		hi := c.read(base + 1)
		abs := uint16(hi)<<8 | uint16(lo)
		result := abs + uint16(c.x)
		return result, pageCross(abs, result)

	case indexedY:
		lo := c.read(base)
		hi := c.read(base + 1)
		abs := uint16(hi)<<8 | uint16(lo)
		result := abs + uint16(c.y)
		return result, pageCross(abs, result)

	case preIndexedIndirect:
		pointer := c.read(base) + c.x // zero-page wrap
		lo := c.read(uint16(pointer))
		hi := c.read(uint16(pointer + 1)) // zero-page wrap
		return uint16(hi)<<8 | uint16(lo), false

	case postIndexedIndirect:
		pointer := c.read(base)
		lo := c.read(uint16(pointer))
		hi := c.read(uint16(pointer + 1)) // zero-page wrap
		baseAddr := uint16(hi)<<8 | uint16(lo)
		result := baseAddr + uint16(c.y)
		return result, pageCross(baseAddr, result)

	case indirect:
		lo := c.read(base)
		hi := c.read(base + 1)
		pointer := uint16(hi)<<8 | uint16(lo)
		ptrLo := c.read(pointer)
		// The original hardware does not carry into the pointer's high
		// byte when forming the second fetch: a pointer of $xxFF reads
		// its high byte from $xx00, not $(xx+1)00 (the JMP indirect bug).
		ptrHi := c.read(pointer&0xFF00 | uint16(byte(pointer)+1))
		return uint16(ptrHi)<<8 | uint16(ptrLo), false

	case relative:
		offset := int8(c.read(base))
		afterPC := pc0 + uint16(inst.length)
		target := afterPC + uint16(offset)
		// The page-cross check compares the branch instruction's own
		// address (not the post-fetch PC the target is computed from)
		// against the target: a branch whose target lands on a
		// different page than the branch opcode itself pays the extra
		// cycle, even when the post-fetch-PC-relative addition alone
		// wouldn't have carried into the high byte.
		return target, pageCross(pc0, target)
	}

	return 0, false
}

func pageCross(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// execute dispatches one instruction's semantic by mnemonic. A dense
// 256-entry table of bound function values would remove this switch,
// but a single exhaustive switch over a small fixed mnemonic set is
// easier to audit by eye for "every mnemonic in the table is handled"
// (cpu_test.go only checks that every table entry has a non-empty
// mnemonic), which is the tradeoff spec.md's design notes call out.
func (c *cpu) execute(inst instruction, addr uint16) {
	switch inst.mnemonic {
	case "ADC":
		c.adc(addr)
	case "AHX":
		c.ahx(addr)
	case "ALR":
		c.alr(addr)
	case "ANC":
		c.anc(addr)
	case "AND":
		c.and(addr)
	case "ARR":
		c.arr(addr)
	case "ASL":
		c.asl(addr)
	case "AXS":
		c.axs(addr)
	case "BCC":
		c.bcc(addr)
	case "BCS":
		c.bcs(addr)
	case "BEQ":
		c.beq(addr)
	case "BIT":
		c.bit(addr)
	case "BMI":
		c.bmi(addr)
	case "BNE":
		c.bne(addr)
	case "BPL":
		c.bpl(addr)
	case "BRK":
		c.brk(addr)
	case "BVC":
		c.bvc(addr)
	case "BVS":
		c.bvs(addr)
	case "CLC":
		c.clc(addr)
	case "CLD":
		c.cld(addr)
	case "CLI":
		c.cli(addr)
	case "CLV":
		c.clv(addr)
	case "CMP":
		c.cmp(addr)
	case "CPX":
		c.cpx(addr)
	case "CPY":
		c.cpy(addr)
	case "DCP":
		c.dcp(addr)
	case "DEC":
		c.dec(addr)
	case "DEX":
		c.dex(addr)
	case "DEY":
		c.dey(addr)
	case "EOR":
		c.eor(addr)
	case "INC":
		c.inc(addr)
	case "INX":
		c.inx(addr)
	case "INY":
		c.iny(addr)
	case "ISB":
		c.isb(addr)
	case "JMP":
		c.jmp(addr)
	case "JSR":
		c.jsr(addr)
	case "KIL":
		c.kil(addr)
	case "LAS":
		c.las(addr)
	case "LAX":
		c.lax(addr)
	case "LDA":
		c.lda(addr)
	case "LDX":
		c.ldx(addr)
	case "LDY":
		c.ldy(addr)
	case "LSR":
		c.lsr(addr)
	case "NOP":
		c.nop(addr)
	case "ORA":
		c.ora(addr)
	case "PHA":
		c.pha(addr)
	case "PHP":
		c.php(addr)
	case "PLA":
		c.pla(addr)
	case "PLP":
		c.plp(addr)
	case "RLA":
		c.rla(addr)
	case "ROL":
		c.rol(addr)
	case "ROR":
		c.ror(addr)
	case "RRA":
		c.rra(addr)
	case "RTI":
		c.rti(addr)
	case "RTS":
		c.rts(addr)
	case "SAX":
		c.sax(addr)
	case "SBC":
		c.sbc(addr)
	case "SEC":
		c.sec(addr)
	case "SED":
		c.sed(addr)
	case "SEI":
		c.sei(addr)
	case "SHX":
		c.shx(addr)
	case "SHY":
		c.shy(addr)
	case "SLO":
		c.slo(addr)
	case "SRE":
		c.sre(addr)
	case "STA":
		c.sta(addr)
	case "STX":
		c.stx(addr)
	case "STY":
		c.sty(addr)
	case "TAS":
		c.tas(addr)
	case "TAX":
		c.tax(addr)
	case "TAY":
		c.tay(addr)
	case "TSX":
		c.tsx(addr)
	case "TXA":
		c.txa(addr)
	case "TXS":
		c.txs(addr)
	case "TYA":
		c.tya(addr)
	case "XAA":
		c.xaa(addr)
	}
}

// --- shared helpers -------------------------------------------------

func (c *cpu) setZN(v byte) {
	if v == 0 {
		c.p |= flagZero
	} else {
		c.p &^= flagZero
	}
	if v&0x80 != 0 {
		c.p |= flagNegative
	} else {
		c.p &^= flagNegative
	}
}

func (c *cpu) setCarry(on bool) {
	if on {
		c.p |= flagCarry
	} else {
		c.p &^= flagCarry
	}
}

func (c *cpu) setOverflow(on bool) {
	if on {
		c.p |= flagOverflow
	} else {
		c.p &^= flagOverflow
	}
}

// push writes v to the hardware stack at 0x0100+S and decrements S,
// wrapping modulo 256 without bounds checking, as real hardware does.
func (c *cpu) push(v byte) {
	c.write(stackBase|uint16(c.s), v)
	c.s--
}

func (c *cpu) pop() byte {
	c.s++
	return c.read(stackBase | uint16(c.s))
}

func (c *cpu) pushAddress(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *cpu) popAddress() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// packStatus returns the status byte as PHP/BRK push it: bit 5 always
// set, bit 4 (break) set because it came from an instruction rather
// than a hardware interrupt line (the core never models NMI/IRQ).
func (c *cpu) packStatus() byte {
	return byte(c.p) | byte(flagUnused) | byte(flagBreak)
}

// unpackStatus restores C,Z,I,D,V,N from a byte pulled by PLP/RTI. The
// break bit is never a real register bit, so it is always masked off
// afterward, and bit 5 is always forced on, matching the live
// register's invariant.
func (c *cpu) unpackStatus(v byte) {
	c.p = flag(v)
	c.p &^= flagBreak
	c.p |= flagUnused
}

// compare implements the shared CMP/CPX/CPY rule: carry is set when
// the register is greater than or equal to the operand (not strictly
// greater — an inconsistency observed across early drafts of the
// source this was distilled from).
func (c *cpu) compare(reg, operand byte) {
	c.setCarry(reg >= operand)
	c.setZN(reg - operand)
}

func (c *cpu) doDec(v byte) byte {
	r := v - 1
	c.setZN(r)
	return r
}

func (c *cpu) doInc(v byte) byte {
	r := v + 1
	c.setZN(r)
	return r
}

// doAdd implements ADC's arithmetic in a 16-bit lane so the carry-out
// and signed overflow can both be read back as simple bit tests. SBC
// is expressed as doAdd(m ^ 0xFF), the standard two's-complement
// identity SBC(M) = ADC(~M).
func (c *cpu) doAdd(v byte) {
	a := uint16(c.a)
	m := uint16(v)
	carryIn := uint16(0)
	if c.p&flagCarry != 0 {
		carryIn = 1
	}

	result := a + m + carryIn

	c.setCarry(result&0x0100 != 0)
	c.setOverflow((a^result)&(m^result)&0x80 != 0)

	c.a = byte(result)
	c.setZN(c.a)
}

func (c *cpu) doAsl(v byte) byte {
	c.setCarry(v&0x80 != 0)
	r := v << 1
	c.setZN(r)
	return r
}

func (c *cpu) doLsr(v byte) byte {
	c.setCarry(v&0x01 != 0)
	r := v >> 1
	c.setZN(r)
	return r
}

func (c *cpu) doRol(v byte) byte {
	carryOut := v&0x80 != 0
	r := v << 1
	if c.p&flagCarry != 0 {
		r |= 0x01
	}
	c.setCarry(carryOut)
	c.setZN(r)
	return r
}

func (c *cpu) doRor(v byte) byte {
	carryOut := v&0x01 != 0
	r := v >> 1
	if c.p&flagCarry != 0 {
		r |= 0x80
	}
	c.setCarry(carryOut)
	c.setZN(r)
	return r
}

// branch implements the shared timing rule for all eight conditional
// branches: always +1 cycle for the branch itself, plus +1 more when
// the branch crosses a page. addr has already been computed by
// resolveAddress relative to the post-fetch PC.
func (c *cpu) branch(addr uint16) {
	c.branchExtra++
	if c.branchPageCrossed {
		c.branchExtra++
	}
	c.pc = addr
}
