package nes

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three fatal conditions the core can raise.
// Wrap these with fmt.Errorf("...: %w", err) so callers can still
// errors.Is against the sentinel while getting the offending address
// or opcode in the message.
var (
	// ErrCartridgeWriteAttempted is returned when something writes to
	// the cartridge-mapped region of the address space. NROM PRG is
	// read-only; the hardware has no path for this to succeed.
	ErrCartridgeWriteAttempted = errors.New("nes: write attempted against read-only cartridge region")

	// ErrInvalidROMMagic is returned at load time when the first four
	// header bytes are not the iNES magic "NES\x1A".
	ErrInvalidROMMagic = errors.New("nes: invalid iNES magic")

	// ErrUnknownOpcode is returned when the opcode fetched at PC has no
	// entry in the instruction table. The source this was distilled
	// from ignores this case; the core surfaces it instead of silently
	// treating the byte as a NOP.
	ErrUnknownOpcode = errors.New("nes: unknown opcode")
)

func wrapWriteAttempt(addr uint16) error {
	return fmt.Errorf("%w: address $%04X", ErrCartridgeWriteAttempted, addr)
}

func wrapUnknownOpcode(pc uint16, opcode byte) error {
	return fmt.Errorf("%w: $%02X at $%04X", ErrUnknownOpcode, opcode, pc)
}
