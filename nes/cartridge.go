package nes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
)

var inesMagic = [4]byte{'N', 'E', 'S', 0x1A}

// inesHeader is the 16-byte iNES 1.0 header. Bytes 6-7 are kept but not
// interpreted by the core; mapper selection beyond NROM is out of scope.
type inesHeader struct {
	Magic      [4]byte
	PRGBanks   byte
	CHRBanks   byte
	Flags6     byte
	Flags7     byte
	PRGRAMSize byte
	_          [7]byte
}

// cartridge is an NROM (mapper 0) PRG-ROM backend. Reads from
// [0x8000,0xC000) return PRG[0:16KiB); reads from [0xC000,0x10000)
// return PRG[16KiB:32KiB) on a 2-bank image, or mirror back to
// PRG[0:16KiB) on a 1-bank image. All addresses here are already
// bus-relative (i.e. the full 16-bit CPU address, not offset from
// 0x4020); see bus.go for where the cartridge window starts.
type cartridge struct {
	prg []byte
	chr []byte

	flags6 byte
	flags7 byte
}

// loadINES parses an iNES 1.0 ROM image. It fails fatally if the magic
// bytes don't match; this is the one load-time condition with no
// meaningful recovery.
func loadINES(r io.Reader) (*cartridge, error) {
	var h inesHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("nes: unable to read iNES header: %w", err)
	}

	if !bytes.Equal(h.Magic[:], inesMagic[:]) {
		return nil, ErrInvalidROMMagic
	}

	prgBanks := int(h.PRGBanks)
	if prgBanks != 1 && prgBanks != 2 {
		return nil, fmt.Errorf("nes: unsupported NROM PRG bank count %d (want 1 or 2)", prgBanks)
	}

	prg := make([]byte, prgBanks*prgBankSize)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("nes: short PRG-ROM read: %w", err)
	}

	chrBanks := int(h.CHRBanks)
	var chr []byte
	if chrBanks > 0 {
		chr = make([]byte, chrBanks*chrBankSize)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, fmt.Errorf("nes: short CHR-ROM read: %w", err)
		}
	}

	return &cartridge{
		prg:    prg,
		chr:    chr,
		flags6: h.Flags6,
		flags7: h.Flags7,
	}, nil
}

// newCartridgeFromPRG builds a cartridge directly from a raw PRG image,
// bypassing the iNES container. Used by tests that want to place exact
// bytes at known addresses without constructing a header.
func newCartridgeFromPRG(prg []byte) *cartridge {
	img := make([]byte, prgBankSize)
	copy(img, prg)
	return &cartridge{prg: img}
}

// read returns the PRG byte mapped to the given full 16-bit CPU
// address. Addresses below 0x8000 in the cartridge's own window
// (expansion ROM / SRAM) are unmapped here and read as zero.
func (c *cartridge) read(address uint16) byte {
	switch {
	case address < 0x8000:
		return 0
	case len(c.prg) == prgBankSize:
		return c.prg[int(address-0x8000)%prgBankSize]
	default:
		return c.prg[address-0x8000]
	}
}

// write always fails: NROM PRG is read-only.
func (c *cartridge) write(address uint16, _ byte) error {
	return wrapWriteAttempt(address)
}
