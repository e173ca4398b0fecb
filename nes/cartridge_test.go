package nes

import (
	"bytes"
	"errors"
	"testing"
)

func inesImage(prgBanks, chrBanks byte, prg, chr []byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, prgBanks, chrBanks, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	buf := append([]byte{}, header...)
	buf = append(buf, prg...)
	buf = append(buf, chr...)
	return buf
}

func TestLoadINESRejectsBadMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"too short", []byte{'N', 'E', 'S', 0x1A, 1, 0}},
		{"wrong letters", []byte{'N', 'O', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"wrong terminator", []byte{'N', 'E', 'S', ' ', 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadINES(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("want error, got nil")
			}
		})
	}
}

func TestLoadINESValidMagicBadShortBody(t *testing.T) {
	data := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := loadINES(bytes.NewReader(data))
	if err == nil {
		t.Fatal("want error for short PRG body, got nil")
	}
}

func TestCartridgeTwoBankMapping(t *testing.T) {
	prg := make([]byte, 2*prgBankSize)
	prg[0] = 0xAA                // start of bank 0
	prg[prgBankSize] = 0xBB      // start of bank 1
	prg[2*prgBankSize-1] = 0xCC  // end of bank 1

	data := inesImage(2, 0, prg, nil)
	cart, err := loadINES(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("loadINES: %v", err)
	}

	if got := cart.read(0x8000); got != 0xAA {
		t.Errorf("read(0x8000) = %#02x, want 0xAA", got)
	}
	if got := cart.read(0xC000); got != 0xBB {
		t.Errorf("read(0xC000) = %#02x, want 0xBB", got)
	}
	if got := cart.read(0xFFFF); got != 0xCC {
		t.Errorf("read(0xFFFF) = %#02x, want 0xCC", got)
	}
}

func TestCartridgeOneBankMirrors(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0x42
	prg[prgBankSize-1] = 0x99

	data := inesImage(1, 0, prg, nil)
	cart, err := loadINES(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("loadINES: %v", err)
	}

	if got := cart.read(0x8000); got != 0x42 {
		t.Errorf("read(0x8000) = %#02x, want 0x42", got)
	}
	if got := cart.read(0xC000); got != 0x42 {
		t.Errorf("read(0xC000) = %#02x (mirrored), want 0x42", got)
	}
	if got := cart.read(0xBFFF); got != 0x99 {
		t.Errorf("read(0xBFFF) = %#02x, want 0x99", got)
	}
	if got := cart.read(0xFFFF); got != 0x99 {
		t.Errorf("read(0xFFFF) = %#02x (mirrored), want 0x99", got)
	}
}

func TestCartridgeUnmappedBelow8000ReadsZero(t *testing.T) {
	cart := newCartridgeFromPRG(make([]byte, prgBankSize))
	if got := cart.read(0x4020); got != 0 {
		t.Errorf("read(0x4020) = %#02x, want 0", got)
	}
}

func TestCartridgeWriteIsRejected(t *testing.T) {
	cart := newCartridgeFromPRG(make([]byte, prgBankSize))
	err := cart.write(0x8000, 0xFF)
	if !errors.Is(err, ErrCartridgeWriteAttempted) {
		t.Fatalf("write error = %v, want wrapping ErrCartridgeWriteAttempted", err)
	}
}

func TestBusRejectsCartridgeWriteWithNoCartridge(t *testing.T) {
	b := newBus(nil)
	err := b.write(0x8000, 1)
	if !errors.Is(err, ErrCartridgeWriteAttempted) {
		t.Fatalf("write error = %v, want wrapping ErrCartridgeWriteAttempted", err)
	}
}

func TestRAMMirroring(t *testing.T) {
	b := newBus(nil)
	if err := b.write(0x0000, 0x7E); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := b.read(mirror); got != 0x7E {
			t.Errorf("read(%#04x) = %#02x, want 0x7E (RAM mirror)", mirror, got)
		}
	}
}
