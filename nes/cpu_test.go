package nes

import "testing"

// newTestCPU builds a cpu over RAM-backed memory with no cartridge,
// suitable for placing a short program directly at any address below
// 0x2000 without going through the iNES loader.
func newTestCPU() *cpu {
	b := newBus(nil)
	return newCPU(b)
}

func (c *cpu) loadAt(addr uint16, bytes ...byte) {
	for i, v := range bytes {
		c.write(addr+uint16(i), v)
	}
}

func TestStepInlineADCThenAND(t *testing.T) {
	c := newTestCPU()
	c.loadAt(0x34, 0x69, 0x1F, 0x29, 0xF1)

	if _, err := c.step(); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if c.a != 0x1F {
		t.Errorf("A = %#02x, want 0x1F", c.a)
	}
	if c.p&flagCarry != 0 || c.p&flagZero != 0 || c.p&flagNegative != 0 {
		t.Errorf("flags after ADC = %#02x, want C=Z=N=0", c.p)
	}
	if c.pc != 0x36 {
		t.Errorf("PC = %#04x, want 0x36", c.pc)
	}

	if _, err := c.step(); err != nil {
		t.Fatalf("step 2: %v", err)
	}
	if c.a != 0x11 {
		t.Errorf("A = %#02x, want 0x11", c.a)
	}
	if c.pc != 0x38 {
		t.Errorf("PC = %#04x, want 0x38", c.pc)
	}
}

func TestADCOverflow(t *testing.T) {
	c := newTestCPU()
	c.a = 0x7F
	c.setCarry(false)
	c.loadAt(0x34, 0x69, 0x01) // ADC #$01

	if _, err := c.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.a != 0x80 {
		t.Errorf("A = %#02x, want 0x80", c.a)
	}
	if c.p&flagCarry != 0 {
		t.Error("C set, want clear")
	}
	if c.p&flagOverflow == 0 {
		t.Error("V clear, want set")
	}
	if c.p&flagNegative == 0 {
		t.Error("N clear, want set")
	}
	if c.p&flagZero != 0 {
		t.Error("Z set, want clear")
	}
}

func TestSBCBorrow(t *testing.T) {
	c := newTestCPU()
	c.a = 0x40
	c.setCarry(true)
	c.loadAt(0x34, 0xE9, 0x40) // SBC #$40

	if _, err := c.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.a != 0x00 {
		t.Errorf("A = %#02x, want 0x00", c.a)
	}
	if c.p&flagCarry == 0 {
		t.Error("C clear, want set")
	}
	if c.p&flagOverflow != 0 {
		t.Error("V set, want clear")
	}
	if c.p&flagZero == 0 {
		t.Error("Z clear, want set")
	}
}

func TestSBCIsADCOfComplement(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for m := 0; m < 256; m += 17 {
			for _, carry := range []bool{false, true} {
				lhs := newTestCPU()
				lhs.a = byte(a)
				lhs.setCarry(carry)
				lhs.write(0x0000, byte(m))
				lhs.sbc(0x0000)

				rhs := newTestCPU()
				rhs.a = byte(a)
				rhs.setCarry(carry)
				rhs.doAdd(byte(m) ^ 0xFF)

				if lhs.a != rhs.a || (lhs.p&flagCarry) != (rhs.p&flagCarry) ||
					(lhs.p&flagZero) != (rhs.p&flagZero) || (lhs.p&flagNegative) != (rhs.p&flagNegative) {
					t.Fatalf("SBC(%#02x,%#02x,C=%v) = (A=%#02x,P=%#02x); ADC(~M) = (A=%#02x,P=%#02x)",
						a, m, carry, lhs.a, lhs.p, rhs.a, rhs.p)
				}
			}
		}
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c := newTestCPU()
	c.write(0x10FF, 0x34)
	c.write(0x1000, 0x12)
	c.write(0x1100, 0xAB) // decoy: what a non-buggy implementation would read
	c.loadAt(0x34, 0x6C, 0xFF, 0x10)

	if _, err := c.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.pc != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", c.pc)
	}
}

func TestBranchTakenCrossingPage(t *testing.T) {
	c := newTestCPU()
	c.p |= flagZero
	c.setPC(0x01FE)
	c.loadAt(0x01FE, 0xF0, 0x04) // BEQ +4

	used, err := c.step()
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if used != 4 {
		t.Errorf("cycles = %d, want 4", used)
	}
	if c.pc != 0x0204 {
		t.Errorf("PC = %#04x, want 0x0204", c.pc)
	}
}

func TestBranchNotTakenPaysBaseCyclesOnly(t *testing.T) {
	c := newTestCPU()
	c.p &^= flagZero
	c.setPC(0x01FE)
	c.loadAt(0x01FE, 0xF0, 0x04) // BEQ +4, not taken

	used, err := c.step()
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if used != 2 {
		t.Errorf("cycles = %d, want 2", used)
	}
	if c.pc != 0x0200 {
		t.Errorf("PC = %#04x, want 0x0200", c.pc)
	}
}

func TestAbsoluteIndexedPageCrossPenalty(t *testing.T) {
	c := newTestCPU()
	c.x = 0xFF
	c.write(0x0201, 0xAA) // target: 0x0102 + 0xFF = 0x0201, crosses page
	c.setPC(0x0100)
	c.loadAt(0x0100, 0xBD, 0x02, 0x01) // LDA $0102,X

	used, err := c.step()
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if used != 5 { // base 4 + 1 page-cross
		t.Errorf("cycles = %d, want 5", used)
	}
	if c.a != 0xAA {
		t.Errorf("A = %#02x, want 0xAA", c.a)
	}
}

func TestStoreClassPaysNoPageCrossPenalty(t *testing.T) {
	c := newTestCPU()
	c.x = 0xFF
	c.a = 0x7E
	c.setPC(0x0100)
	c.loadAt(0x0100, 0x9D, 0x02, 0x01) // STA $0102,X, crosses a page

	used, err := c.step()
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if used != 5 { // STA abs,X's fixed cost already bakes the worst case in
		t.Errorf("cycles = %d, want 5", used)
	}
	if got := c.read(0x0201); got != 0x7E {
		t.Errorf("memory at target = %#02x, want 0x7E", got)
	}
}

func TestCompareUsesGreaterOrEqualForCarry(t *testing.T) {
	c := newTestCPU()
	c.a = 0x40
	c.compare(c.a, 0x40)
	if c.p&flagCarry == 0 {
		t.Error("C clear for A == M, want set")
	}
	if c.p&flagZero == 0 {
		t.Error("Z clear for A == M, want set")
	}

	c.compare(c.a, 0x41)
	if c.p&flagCarry != 0 {
		t.Error("C set for A < M, want clear")
	}
}

func TestStatusByteRoundTrips(t *testing.T) {
	c := newTestCPU()
	c.p = flagCarry | flagZero | flagOverflow | flagNegative | flagUnused
	packed := c.packStatus()

	c2 := newTestCPU()
	c2.unpackStatus(packed)

	want := flagCarry | flagZero | flagOverflow | flagNegative | flagUnused
	if c2.p != want {
		t.Errorf("round-tripped P = %#02x, want %#02x", c2.p, want)
	}
	if packed&0x20 == 0 {
		t.Error("packed status bit 5 clear, want always-set")
	}
}

func TestUnknownOpcodeErrorsRatherThanPanics(t *testing.T) {
	// Every byte value has a table entry in instructions.go; this test
	// exercises the guard path directly rather than needing a real gap.
	saved := instructions[0x00]
	instructions[0x00] = instruction{}
	defer func() { instructions[0x00] = saved }()

	c := newTestCPU()
	c.setPC(0x0000)
	_, err := c.step()
	if err == nil {
		t.Fatal("want error for opcode with no table entry")
	}
}

func TestEveryInstructionTableEntryHasAKnownMnemonic(t *testing.T) {
	for i, inst := range instructions {
		if inst.mnemonic == "" {
			t.Errorf("opcode %#02x has no mnemonic", i)
		}
		if inst.length == 0 {
			t.Errorf("opcode %#02x (%s) has zero length", i, inst.mnemonic)
		}
	}
}

func TestPCAdvanceMatchesDeclaredLengthForNonControlFlow(t *testing.T) {
	skip := map[string]bool{
		"JMP": true, "JSR": true, "RTS": true, "RTI": true, "BRK": true,
		"BCC": true, "BCS": true, "BEQ": true, "BNE": true,
		"BMI": true, "BPL": true, "BVC": true, "BVS": true,
	}
	for opcode, inst := range instructions {
		if inst.mnemonic == "" || skip[inst.mnemonic] {
			continue
		}
		c := newTestCPU()
		c.setPC(0x0200)
		c.write(0x0200, byte(opcode))
		if _, err := c.step(); err != nil {
			t.Fatalf("opcode %#02x (%s): %v", opcode, inst.mnemonic, err)
		}
		if want := 0x0200 + uint16(inst.length); c.pc != want {
			t.Errorf("opcode %#02x (%s): PC = %#04x, want %#04x", opcode, inst.mnemonic, c.pc, want)
		}
	}
}
