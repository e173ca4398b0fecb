package nes

// This file implements the 56 documented 6502 mnemonics. Each method
// takes the effective address resolveAddress already computed (unused
// for implied/accumulator-mode instructions, which ignore addr).
// Undocumented composite opcodes live in opcodes_illegal.go.

func (c *cpu) adc(addr uint16) {
	c.doAdd(c.read(addr))
}

func (c *cpu) and(addr uint16) {
	c.a &= c.read(addr)
	c.setZN(c.a)
}

func (c *cpu) asl(addr uint16) {
	if c.mode == accumulator {
		c.a = c.doAsl(c.a)
		return
	}
	c.write(addr, c.doAsl(c.read(addr)))
}

func (c *cpu) bcc(addr uint16) {
	if c.p&flagCarry == 0 {
		c.branch(addr)
	}
}

func (c *cpu) bcs(addr uint16) {
	if c.p&flagCarry != 0 {
		c.branch(addr)
	}
}

func (c *cpu) beq(addr uint16) {
	if c.p&flagZero != 0 {
		c.branch(addr)
	}
}

func (c *cpu) bit(addr uint16) {
	v := c.read(addr)
	c.setOverflow(v&0x40 != 0)
	if v&0x80 != 0 {
		c.p |= flagNegative
	} else {
		c.p &^= flagNegative
	}
	if c.a&v == 0 {
		c.p |= flagZero
	} else {
		c.p &^= flagZero
	}
}

func (c *cpu) bmi(addr uint16) {
	if c.p&flagNegative != 0 {
		c.branch(addr)
	}
}

func (c *cpu) bne(addr uint16) {
	if c.p&flagZero == 0 {
		c.branch(addr)
	}
}

func (c *cpu) bpl(addr uint16) {
	if c.p&flagNegative == 0 {
		c.branch(addr)
	}
}

// brk pushes PC (already advanced past the signature byte by step)
// and the status register with the break bit set, disables further
// IRQs, and jumps through the BRK/IRQ vector at 0xFFFE.
func (c *cpu) brk(_ uint16) {
	c.pushAddress(c.pc)
	c.push(c.packStatus())
	c.p |= flagInterruptDisable
	c.pc = c.readAddress(irqBrkVec)
}

func (c *cpu) bvc(addr uint16) {
	if c.p&flagOverflow == 0 {
		c.branch(addr)
	}
}

func (c *cpu) bvs(addr uint16) {
	if c.p&flagOverflow != 0 {
		c.branch(addr)
	}
}

func (c *cpu) clc(_ uint16) { c.setCarry(false) }
func (c *cpu) cld(_ uint16) { c.p &^= flagDecimal }
func (c *cpu) cli(_ uint16) { c.p &^= flagInterruptDisable }
func (c *cpu) clv(_ uint16) { c.setOverflow(false) }

func (c *cpu) cmp(addr uint16) { c.compare(c.a, c.read(addr)) }
func (c *cpu) cpx(addr uint16) { c.compare(c.x, c.read(addr)) }
func (c *cpu) cpy(addr uint16) { c.compare(c.y, c.read(addr)) }

func (c *cpu) dec(addr uint16) {
	c.write(addr, c.doDec(c.read(addr)))
}

func (c *cpu) dex(_ uint16) { c.x = c.doDec(c.x) }
func (c *cpu) dey(_ uint16) { c.y = c.doDec(c.y) }

func (c *cpu) eor(addr uint16) {
	c.a ^= c.read(addr)
	c.setZN(c.a)
}

func (c *cpu) inc(addr uint16) {
	c.write(addr, c.doInc(c.read(addr)))
}

func (c *cpu) inx(_ uint16) { c.x = c.doInc(c.x) }
func (c *cpu) iny(_ uint16) { c.y = c.doInc(c.y) }

func (c *cpu) jmp(addr uint16) {
	c.pc = addr
}

// jsr pushes the address of the last byte of the JSR instruction
// itself (PC-1, not the address of the next instruction): resolving
// addressing never advances PC, so by the time jsr runs PC already
// sits at the start of the next instruction, one past the convention.
func (c *cpu) jsr(addr uint16) {
	c.pushAddress(c.pc - 1)
	c.pc = addr
}

func (c *cpu) lda(addr uint16) {
	c.a = c.read(addr)
	c.setZN(c.a)
}

func (c *cpu) ldx(addr uint16) {
	c.x = c.read(addr)
	c.setZN(c.x)
}

func (c *cpu) ldy(addr uint16) {
	c.y = c.read(addr)
	c.setZN(c.y)
}

func (c *cpu) lsr(addr uint16) {
	if c.mode == accumulator {
		c.a = c.doLsr(c.a)
		return
	}
	c.write(addr, c.doLsr(c.read(addr)))
}

func (c *cpu) nop(_ uint16) {}

func (c *cpu) ora(addr uint16) {
	c.a |= c.read(addr)
	c.setZN(c.a)
}

func (c *cpu) pha(_ uint16) { c.push(c.a) }
func (c *cpu) php(_ uint16) { c.push(c.packStatus()) }

func (c *cpu) pla(_ uint16) {
	c.a = c.pop()
	c.setZN(c.a)
}

func (c *cpu) plp(_ uint16) { c.unpackStatus(c.pop()) }

func (c *cpu) rol(addr uint16) {
	if c.mode == accumulator {
		c.a = c.doRol(c.a)
		return
	}
	c.write(addr, c.doRol(c.read(addr)))
}

func (c *cpu) ror(addr uint16) {
	if c.mode == accumulator {
		c.a = c.doRor(c.a)
		return
	}
	c.write(addr, c.doRor(c.read(addr)))
}

func (c *cpu) rti(_ uint16) {
	c.unpackStatus(c.pop())
	c.pc = c.popAddress()
}

func (c *cpu) rts(_ uint16) {
	c.pc = c.popAddress() + 1
}

// sbc is the two's-complement identity SBC(M) = ADC(~M): flipping
// every bit of the operand turns "subtract M and borrow" into "add
// M's complement and carry", so the same carry/overflow logic in
// doAdd produces the correct borrow-out and signed-overflow results.
func (c *cpu) sbc(addr uint16) {
	c.doAdd(c.read(addr) ^ 0xFF)
}

func (c *cpu) sec(_ uint16) { c.setCarry(true) }
func (c *cpu) sed(_ uint16) { c.p |= flagDecimal }
func (c *cpu) sei(_ uint16) { c.p |= flagInterruptDisable }

func (c *cpu) sta(addr uint16) { c.write(addr, c.a) }
func (c *cpu) stx(addr uint16) { c.write(addr, c.x) }
func (c *cpu) sty(addr uint16) { c.write(addr, c.y) }

func (c *cpu) tax(_ uint16) { c.x = c.a; c.setZN(c.x) }
func (c *cpu) tay(_ uint16) { c.y = c.a; c.setZN(c.y) }
func (c *cpu) tsx(_ uint16) { c.x = c.s; c.setZN(c.x) }
func (c *cpu) txa(_ uint16) { c.a = c.x; c.setZN(c.a) }
func (c *cpu) txs(_ uint16) { c.s = c.x }
func (c *cpu) tya(_ uint16) { c.a = c.y; c.setZN(c.a) }
