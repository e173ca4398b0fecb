package nes

// This file implements the undocumented opcodes the table marks
// illegal: true. Most are composites of two documented operations
// that happen to fire together when the decoder's unused bit patterns
// line up; a handful (AHX, SHX, SHY, TAS, LAS, XAA, AXS) are included
// for table completeness with the commonly agreed-upon behavior, and
// KIL is the halt-and-catch-fire opcode that real hardware locks up
// on — modeled here as a no-op rather than actually halting the
// stepper, since nothing calling step() expects it to stop returning.

// slo is ASL followed by ORA against the shifted result.
func (c *cpu) slo(addr uint16) {
	v := c.doAsl(c.read(addr))
	c.write(addr, v)
	c.a |= v
	c.setZN(c.a)
}

// rla is ROL followed by AND against the rotated result.
func (c *cpu) rla(addr uint16) {
	v := c.doRol(c.read(addr))
	c.write(addr, v)
	c.a &= v
	c.setZN(c.a)
}

// sre is LSR followed by EOR against the shifted result.
func (c *cpu) sre(addr uint16) {
	v := c.doLsr(c.read(addr))
	c.write(addr, v)
	c.a ^= v
	c.setZN(c.a)
}

// rra is ROR followed by ADC against the rotated result.
func (c *cpu) rra(addr uint16) {
	v := c.doRor(c.read(addr))
	c.write(addr, v)
	c.doAdd(v)
}

// sax stores A AND X, without touching any flags.
func (c *cpu) sax(addr uint16) {
	c.write(addr, c.a&c.x)
}

// lax is LDA immediately followed by TAX.
func (c *cpu) lax(addr uint16) {
	c.a = c.read(addr)
	c.x = c.a
	c.setZN(c.a)
}

// dcp is DEC followed by CMP against the decremented result.
func (c *cpu) dcp(addr uint16) {
	v := c.doDec(c.read(addr))
	c.write(addr, v)
	c.compare(c.a, v)
}

// isb is INC followed by SBC against the incremented result.
func (c *cpu) isb(addr uint16) {
	v := c.doInc(c.read(addr))
	c.write(addr, v)
	c.doAdd(v ^ 0xFF)
}

// anc is AND immediate, then copies the result's sign bit into carry
// as though the accumulator had been shifted through ASL.
func (c *cpu) anc(addr uint16) {
	c.a &= c.read(addr)
	c.setZN(c.a)
	c.setCarry(c.a&0x80 != 0)
}

// alr is AND immediate followed by LSR on the accumulator.
func (c *cpu) alr(addr uint16) {
	c.a &= c.read(addr)
	c.a = c.doLsr(c.a)
}

// arr is AND immediate followed by ROR on the accumulator, with carry
// taken from bit 6 of the rotated result and overflow from bit 6 XOR
// bit 5, rather than ROR's usual carry-out rule.
func (c *cpu) arr(addr uint16) {
	c.a &= c.read(addr)
	c.a = c.doRor(c.a)
	bit6 := c.a&0x40 != 0
	bit5 := c.a&0x20 != 0
	c.setCarry(bit6)
	c.setOverflow(bit6 != bit5)
}

// axs computes X = (A AND X) - immediate using CMP-style (unsigned,
// no borrow-in) subtraction, setting carry the same way CMP does.
func (c *cpu) axs(addr uint16) {
	v := c.read(addr)
	and := c.a & c.x
	c.setCarry(and >= v)
	c.x = and - v
	c.setZN(c.x)
}

// xaa is electrically unstable on real hardware (its result depends on
// analog bus capacitance); modeled here with the commonly used
// deterministic approximation AND of X and the operand into A.
func (c *cpu) xaa(addr uint16) {
	c.a = c.x & c.read(addr)
	c.setZN(c.a)
}

// las ANDs the stack pointer with the operand and loads the result
// into A, X, and S simultaneously.
func (c *cpu) las(addr uint16) {
	v := c.read(addr) & c.s
	c.a = v
	c.x = v
	c.s = v
	c.setZN(v)
}

// ahx stores A AND X AND (high byte of the effective address + 1).
// Also electrically unstable; this is the commonly documented
// approximation.
func (c *cpu) ahx(addr uint16) {
	v := c.a & c.x & byte((addr>>8)+1)
	c.write(addr, v)
}

// shx stores X AND (high byte of the effective address + 1).
func (c *cpu) shx(addr uint16) {
	v := c.x & byte((addr>>8)+1)
	c.write(addr, v)
}

// shy stores Y AND (high byte of the effective address + 1).
func (c *cpu) shy(addr uint16) {
	v := c.y & byte((addr>>8)+1)
	c.write(addr, v)
}

// tas stores A AND X into S, then stores S AND (high byte of the
// effective address + 1) to memory.
func (c *cpu) tas(addr uint16) {
	c.s = c.a & c.x
	c.write(addr, c.s&byte((addr>>8)+1))
}

// kil is the "halt and catch fire" opcode. Real hardware locks the bus
// up permanently; step has no representation for that, so this is a
// no-op and execution continues past it.
func (c *cpu) kil(_ uint16) {}
