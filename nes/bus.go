package nes

// Address-space layout, half-open ranges:
//
//	[0x0000, 0x2000)  RAM, 2KiB mirrored x4
//	[0x2000, 0x4000)  PPU registers, 8 bytes mirrored
//	[0x4000, 0x4018)  APU / IO registers
//	[0x4018, 0x4020)  disabled (CPU test mode)
//	[0x4020, 0x10000) cartridge-mapped
const (
	ramEnd      = 0x2000
	ppuEnd      = 0x4000
	apuEnd      = 0x4018
	disabledEnd = 0x4020

	ppuWindowSize = 8
	apuWindowSize = apuEnd - ppuEnd
	disabledSize  = disabledEnd - apuEnd
)

// bus is the address-decoding intermediary between the CPU and every
// memory-mapped device. RAM, the PPU/APU register windows, and the
// disabled test-mode window are mutable byte arrays owned directly by
// the bus; PPU and APU are modeled as opaque register banks here (full
// PPU/APU emulation is out of scope), and the cartridge is a real NROM
// backend with reads delegated to it.
type bus struct {
	ram       *ram
	ppuRegs   [ppuWindowSize]byte
	apuRegs   [apuWindowSize]byte
	disabled  [disabledSize]byte
	cartridge *cartridge
}

func newBus(cart *cartridge) *bus {
	return &bus{
		ram:       newRAM(),
		cartridge: cart,
	}
}

// read dispatches a CPU-initiated read. address is always treated
// modulo 0x10000, which a uint16 already guarantees.
func (b *bus) read(address uint16) byte {
	switch {
	case address < ramEnd:
		return b.ram.read(address)
	case address < ppuEnd:
		return b.ppuRegs[address%ppuWindowSize]
	case address < apuEnd:
		return b.apuRegs[address-ppuEnd]
	case address < disabledEnd:
		return b.disabled[address-apuEnd]
	default:
		if b.cartridge == nil {
			return 0
		}
		return b.cartridge.read(address)
	}
}

// write dispatches a CPU-initiated write. Writes into the cartridge
// region are rejected by the cartridge backend itself and the bus just
// propagates whatever error comes back; with no cartridge attached the
// bus rejects them with the same error.
func (b *bus) write(address uint16, value byte) error {
	switch {
	case address < ramEnd:
		b.ram.write(address, value)
	case address < ppuEnd:
		b.ppuRegs[address%ppuWindowSize] = value
	case address < apuEnd:
		b.apuRegs[address-ppuEnd] = value
	case address < disabledEnd:
		b.disabled[address-apuEnd] = value
	default:
		if b.cartridge == nil {
			return wrapWriteAttempt(address)
		}
		return b.cartridge.write(address, value)
	}
	return nil
}
