package nes

// addressingMode names the thirteen ways the 6502 can derive an
// operand's effective address (or its absence) from the bytes
// following the opcode. See resolveAddress in cpu.go for the actual
// derivation rule per mode.
type addressingMode byte

const (
	immediate addressingMode = iota
	zeroPage
	absolute
	relative
	implied
	accumulator
	indexedX
	indexedY
	zeroPageIndexedX
	zeroPageIndexedY
	indirect
	preIndexedIndirect
	postIndexedIndirect
)

func (m addressingMode) String() string {
	switch m {
	case immediate:
		return "Immediate"
	case zeroPage:
		return "ZeroPage"
	case absolute:
		return "Absolute"
	case relative:
		return "Relative"
	case implied:
		return "Implied"
	case accumulator:
		return "Accumulator"
	case indexedX:
		return "IndexedX"
	case indexedY:
		return "IndexedY"
	case zeroPageIndexedX:
		return "ZeroPageIndexedX"
	case zeroPageIndexedY:
		return "ZeroPageIndexedY"
	case indirect:
		return "Indirect"
	case preIndexedIndirect:
		return "PreIndexedIndirect"
	case postIndexedIndirect:
		return "PostIndexedIndirect"
	default:
		return "Unknown"
	}
}

// instructionKind distinguishes how an instruction uses its resolved
// operand, which in turn decides whether IndexedX/IndexedY/
// PostIndexedIndirect pay the page-crossing "oops" cycle: read-class
// instructions pay it conditionally, write and read-modify-write
// instructions always pay the fixed cost instead (see step in cpu.go).
type instructionKind byte

const (
	instrNone instructionKind = iota
	instrRead
	instrWrite
	instrReadModWrite
)

// instruction is one row of the dense 256-entry opcode table: the
// mnemonic driving execute's dispatch, the addressing mode driving
// resolveAddress, the kind deciding in step whether a page cross costs
// pageCycles, and the declared length/cycle cost used to both advance
// PC and seed the per-instruction cycle budget.
type instruction struct {
	opcode     byte
	mnemonic   string
	mode       addressingMode
	kind       instructionKind
	length     byte
	cycles     byte
	pageCycles byte
	illegal    bool
}

// instructions is the static opcode -> instruction mapping covering
// all 256 byte values: the 151 documented opcodes plus the commonly
// observed undocumented aliases (composites of two documented
// semantics, plus a handful of electrically unstable ones kept for
// table completeness: AHX, SHX, SHY, TAS, LAS, XAA, AXS, KIL).
var instructions = [256]instruction{
	// BRK's declared length is 2, not 1: real hardware reads and discards
	// a signature byte after the opcode, and the return address pushed
	// by brk() is PC after that byte (PC+2 from the opcode), which only
	// falls out correctly if PC has already been advanced by 2 before
	// brk() runs.
	{opcode: 0x00, mnemonic: "BRK", mode: implied, kind: instrNone, length: 2, cycles: 7, pageCycles: 0, illegal: false},
	{opcode: 0x01, mnemonic: "ORA", mode: preIndexedIndirect, kind: instrRead, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x02, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x03, mnemonic: "SLO", mode: preIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0x04, mnemonic: "NOP", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: true},
	{opcode: 0x05, mnemonic: "ORA", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x06, mnemonic: "ASL", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: false},
	{opcode: 0x07, mnemonic: "SLO", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0x08, mnemonic: "PHP", mode: implied, kind: instrNone, length: 1, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x09, mnemonic: "ORA", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x0A, mnemonic: "ASL", mode: accumulator, kind: instrReadModWrite, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x0B, mnemonic: "ANC", mode: immediate, kind: instrNone, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x0C, mnemonic: "NOP", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0x0D, mnemonic: "ORA", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x0E, mnemonic: "ASL", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x0F, mnemonic: "SLO", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x10, mnemonic: "BPL", mode: relative, kind: instrNone, length: 2, cycles: 2, pageCycles: 1, illegal: false},
	{opcode: 0x11, mnemonic: "ORA", mode: postIndexedIndirect, kind: instrRead, length: 2, cycles: 5, pageCycles: 1, illegal: false},
	{opcode: 0x12, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x13, mnemonic: "SLO", mode: postIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0x14, mnemonic: "NOP", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0x15, mnemonic: "ORA", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x16, mnemonic: "ASL", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x17, mnemonic: "SLO", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x18, mnemonic: "CLC", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x19, mnemonic: "ORA", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0x1A, mnemonic: "NOP", mode: implied, kind: instrRead, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x1B, mnemonic: "SLO", mode: indexedY, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0x1C, mnemonic: "NOP", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: true},
	{opcode: 0x1D, mnemonic: "ORA", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0x1E, mnemonic: "ASL", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: false},
	{opcode: 0x1F, mnemonic: "SLO", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0x20, mnemonic: "JSR", mode: absolute, kind: instrNone, length: 3, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x21, mnemonic: "AND", mode: preIndexedIndirect, kind: instrRead, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x22, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x23, mnemonic: "RLA", mode: preIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0x24, mnemonic: "BIT", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x25, mnemonic: "AND", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x26, mnemonic: "ROL", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: false},
	{opcode: 0x27, mnemonic: "RLA", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0x28, mnemonic: "PLP", mode: implied, kind: instrNone, length: 1, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x29, mnemonic: "AND", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x2A, mnemonic: "ROL", mode: accumulator, kind: instrReadModWrite, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x2B, mnemonic: "ANC", mode: immediate, kind: instrNone, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x2C, mnemonic: "BIT", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x2D, mnemonic: "AND", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x2E, mnemonic: "ROL", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x2F, mnemonic: "RLA", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x30, mnemonic: "BMI", mode: relative, kind: instrNone, length: 2, cycles: 2, pageCycles: 1, illegal: false},
	{opcode: 0x31, mnemonic: "AND", mode: postIndexedIndirect, kind: instrRead, length: 2, cycles: 5, pageCycles: 1, illegal: false},
	{opcode: 0x32, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x33, mnemonic: "RLA", mode: postIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0x34, mnemonic: "NOP", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0x35, mnemonic: "AND", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x36, mnemonic: "ROL", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x37, mnemonic: "RLA", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x38, mnemonic: "SEC", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x39, mnemonic: "AND", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0x3A, mnemonic: "NOP", mode: implied, kind: instrRead, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x3B, mnemonic: "RLA", mode: indexedY, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0x3C, mnemonic: "NOP", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: true},
	{opcode: 0x3D, mnemonic: "AND", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0x3E, mnemonic: "ROL", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: false},
	{opcode: 0x3F, mnemonic: "RLA", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0x40, mnemonic: "RTI", mode: implied, kind: instrNone, length: 1, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x41, mnemonic: "EOR", mode: preIndexedIndirect, kind: instrRead, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x42, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x43, mnemonic: "SRE", mode: preIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0x44, mnemonic: "NOP", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: true},
	{opcode: 0x45, mnemonic: "EOR", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x46, mnemonic: "LSR", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: false},
	{opcode: 0x47, mnemonic: "SRE", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0x48, mnemonic: "PHA", mode: implied, kind: instrNone, length: 1, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x49, mnemonic: "EOR", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x4A, mnemonic: "LSR", mode: accumulator, kind: instrReadModWrite, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x4B, mnemonic: "ALR", mode: immediate, kind: instrNone, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x4C, mnemonic: "JMP", mode: absolute, kind: instrNone, length: 3, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x4D, mnemonic: "EOR", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x4E, mnemonic: "LSR", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x4F, mnemonic: "SRE", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x50, mnemonic: "BVC", mode: relative, kind: instrNone, length: 2, cycles: 2, pageCycles: 1, illegal: false},
	{opcode: 0x51, mnemonic: "EOR", mode: postIndexedIndirect, kind: instrRead, length: 2, cycles: 5, pageCycles: 1, illegal: false},
	{opcode: 0x52, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x53, mnemonic: "SRE", mode: postIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0x54, mnemonic: "NOP", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0x55, mnemonic: "EOR", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x56, mnemonic: "LSR", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x57, mnemonic: "SRE", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x58, mnemonic: "CLI", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x59, mnemonic: "EOR", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0x5A, mnemonic: "NOP", mode: implied, kind: instrRead, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x5B, mnemonic: "SRE", mode: indexedY, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0x5C, mnemonic: "NOP", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: true},
	{opcode: 0x5D, mnemonic: "EOR", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0x5E, mnemonic: "LSR", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: false},
	{opcode: 0x5F, mnemonic: "SRE", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0x60, mnemonic: "RTS", mode: implied, kind: instrNone, length: 1, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x61, mnemonic: "ADC", mode: preIndexedIndirect, kind: instrRead, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x62, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x63, mnemonic: "RRA", mode: preIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0x64, mnemonic: "NOP", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: true},
	{opcode: 0x65, mnemonic: "ADC", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x66, mnemonic: "ROR", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: false},
	{opcode: 0x67, mnemonic: "RRA", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0x68, mnemonic: "PLA", mode: implied, kind: instrNone, length: 1, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x69, mnemonic: "ADC", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x6A, mnemonic: "ROR", mode: accumulator, kind: instrReadModWrite, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x6B, mnemonic: "ARR", mode: immediate, kind: instrNone, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x6C, mnemonic: "JMP", mode: indirect, kind: instrNone, length: 3, cycles: 5, pageCycles: 0, illegal: false},
	{opcode: 0x6D, mnemonic: "ADC", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x6E, mnemonic: "ROR", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x6F, mnemonic: "RRA", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x70, mnemonic: "BVS", mode: relative, kind: instrNone, length: 2, cycles: 2, pageCycles: 1, illegal: false},
	{opcode: 0x71, mnemonic: "ADC", mode: postIndexedIndirect, kind: instrRead, length: 2, cycles: 5, pageCycles: 1, illegal: false},
	{opcode: 0x72, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x73, mnemonic: "RRA", mode: postIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0x74, mnemonic: "NOP", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0x75, mnemonic: "ADC", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x76, mnemonic: "ROR", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x77, mnemonic: "RRA", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x78, mnemonic: "SEI", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x79, mnemonic: "ADC", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0x7A, mnemonic: "NOP", mode: implied, kind: instrRead, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x7B, mnemonic: "RRA", mode: indexedY, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0x7C, mnemonic: "NOP", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: true},
	{opcode: 0x7D, mnemonic: "ADC", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0x7E, mnemonic: "ROR", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: false},
	{opcode: 0x7F, mnemonic: "RRA", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0x80, mnemonic: "NOP", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x81, mnemonic: "STA", mode: preIndexedIndirect, kind: instrWrite, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x82, mnemonic: "NOP", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x83, mnemonic: "SAX", mode: preIndexedIndirect, kind: instrWrite, length: 2, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x84, mnemonic: "STY", mode: zeroPage, kind: instrWrite, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x85, mnemonic: "STA", mode: zeroPage, kind: instrWrite, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x86, mnemonic: "STX", mode: zeroPage, kind: instrWrite, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0x87, mnemonic: "SAX", mode: zeroPage, kind: instrWrite, length: 2, cycles: 3, pageCycles: 0, illegal: true},
	{opcode: 0x88, mnemonic: "DEY", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x89, mnemonic: "NOP", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x8A, mnemonic: "TXA", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x8B, mnemonic: "XAA", mode: immediate, kind: instrNone, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x8C, mnemonic: "STY", mode: absolute, kind: instrWrite, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x8D, mnemonic: "STA", mode: absolute, kind: instrWrite, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x8E, mnemonic: "STX", mode: absolute, kind: instrWrite, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x8F, mnemonic: "SAX", mode: absolute, kind: instrWrite, length: 3, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0x90, mnemonic: "BCC", mode: relative, kind: instrNone, length: 2, cycles: 2, pageCycles: 1, illegal: false},
	{opcode: 0x91, mnemonic: "STA", mode: postIndexedIndirect, kind: instrWrite, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0x92, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0x93, mnemonic: "AHX", mode: postIndexedIndirect, kind: instrNone, length: 2, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0x94, mnemonic: "STY", mode: zeroPageIndexedX, kind: instrWrite, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x95, mnemonic: "STA", mode: zeroPageIndexedX, kind: instrWrite, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x96, mnemonic: "STX", mode: zeroPageIndexedY, kind: instrWrite, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0x97, mnemonic: "SAX", mode: zeroPageIndexedY, kind: instrWrite, length: 2, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0x98, mnemonic: "TYA", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x99, mnemonic: "STA", mode: indexedY, kind: instrWrite, length: 3, cycles: 5, pageCycles: 0, illegal: false},
	{opcode: 0x9A, mnemonic: "TXS", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0x9B, mnemonic: "TAS", mode: indexedY, kind: instrNone, length: 3, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0x9C, mnemonic: "SHY", mode: indexedX, kind: instrWrite, length: 3, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0x9D, mnemonic: "STA", mode: indexedX, kind: instrWrite, length: 3, cycles: 5, pageCycles: 0, illegal: false},
	{opcode: 0x9E, mnemonic: "SHX", mode: indexedY, kind: instrWrite, length: 3, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0x9F, mnemonic: "AHX", mode: indexedY, kind: instrNone, length: 3, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0xA0, mnemonic: "LDY", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xA1, mnemonic: "LDA", mode: preIndexedIndirect, kind: instrRead, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0xA2, mnemonic: "LDX", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xA3, mnemonic: "LAX", mode: preIndexedIndirect, kind: instrRead, length: 2, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0xA4, mnemonic: "LDY", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0xA5, mnemonic: "LDA", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0xA6, mnemonic: "LDX", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0xA7, mnemonic: "LAX", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: true},
	{opcode: 0xA8, mnemonic: "TAY", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xA9, mnemonic: "LDA", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xAA, mnemonic: "TAX", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xAB, mnemonic: "LAX", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xAC, mnemonic: "LDY", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xAD, mnemonic: "LDA", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xAE, mnemonic: "LDX", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xAF, mnemonic: "LAX", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0xB0, mnemonic: "BCS", mode: relative, kind: instrNone, length: 2, cycles: 2, pageCycles: 1, illegal: false},
	{opcode: 0xB1, mnemonic: "LDA", mode: postIndexedIndirect, kind: instrRead, length: 2, cycles: 5, pageCycles: 1, illegal: false},
	{opcode: 0xB2, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xB3, mnemonic: "LAX", mode: postIndexedIndirect, kind: instrRead, length: 2, cycles: 5, pageCycles: 1, illegal: true},
	{opcode: 0xB4, mnemonic: "LDY", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xB5, mnemonic: "LDA", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xB6, mnemonic: "LDX", mode: zeroPageIndexedY, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xB7, mnemonic: "LAX", mode: zeroPageIndexedY, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0xB8, mnemonic: "CLV", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xB9, mnemonic: "LDA", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0xBA, mnemonic: "TSX", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xBB, mnemonic: "LAS", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: true},
	{opcode: 0xBC, mnemonic: "LDY", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0xBD, mnemonic: "LDA", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0xBE, mnemonic: "LDX", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0xBF, mnemonic: "LAX", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: true},
	{opcode: 0xC0, mnemonic: "CPY", mode: immediate, kind: instrNone, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xC1, mnemonic: "CMP", mode: preIndexedIndirect, kind: instrRead, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0xC2, mnemonic: "NOP", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xC3, mnemonic: "DCP", mode: preIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0xC4, mnemonic: "CPY", mode: zeroPage, kind: instrNone, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0xC5, mnemonic: "CMP", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0xC6, mnemonic: "DEC", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: false},
	{opcode: 0xC7, mnemonic: "DCP", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0xC8, mnemonic: "INY", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xC9, mnemonic: "CMP", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xCA, mnemonic: "DEX", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xCB, mnemonic: "AXS", mode: immediate, kind: instrNone, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xCC, mnemonic: "CPY", mode: absolute, kind: instrNone, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xCD, mnemonic: "CMP", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xCE, mnemonic: "DEC", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0xCF, mnemonic: "DCP", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0xD0, mnemonic: "BNE", mode: relative, kind: instrNone, length: 2, cycles: 2, pageCycles: 1, illegal: false},
	{opcode: 0xD1, mnemonic: "CMP", mode: postIndexedIndirect, kind: instrRead, length: 2, cycles: 5, pageCycles: 1, illegal: false},
	{opcode: 0xD2, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xD3, mnemonic: "DCP", mode: postIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0xD4, mnemonic: "NOP", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0xD5, mnemonic: "CMP", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xD6, mnemonic: "DEC", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0xD7, mnemonic: "DCP", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0xD8, mnemonic: "CLD", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xD9, mnemonic: "CMP", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0xDA, mnemonic: "NOP", mode: implied, kind: instrRead, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xDB, mnemonic: "DCP", mode: indexedY, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0xDC, mnemonic: "NOP", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: true},
	{opcode: 0xDD, mnemonic: "CMP", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0xDE, mnemonic: "DEC", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: false},
	{opcode: 0xDF, mnemonic: "DCP", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0xE0, mnemonic: "CPX", mode: immediate, kind: instrNone, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xE1, mnemonic: "SBC", mode: preIndexedIndirect, kind: instrRead, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0xE2, mnemonic: "NOP", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xE3, mnemonic: "ISB", mode: preIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0xE4, mnemonic: "CPX", mode: zeroPage, kind: instrNone, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0xE5, mnemonic: "SBC", mode: zeroPage, kind: instrRead, length: 2, cycles: 3, pageCycles: 0, illegal: false},
	{opcode: 0xE6, mnemonic: "INC", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: false},
	{opcode: 0xE7, mnemonic: "ISB", mode: zeroPage, kind: instrReadModWrite, length: 2, cycles: 5, pageCycles: 0, illegal: true},
	{opcode: 0xE8, mnemonic: "INX", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xE9, mnemonic: "SBC", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xEA, mnemonic: "NOP", mode: implied, kind: instrRead, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xEB, mnemonic: "SBC", mode: immediate, kind: instrRead, length: 2, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xEC, mnemonic: "CPX", mode: absolute, kind: instrNone, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xED, mnemonic: "SBC", mode: absolute, kind: instrRead, length: 3, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xEE, mnemonic: "INC", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0xEF, mnemonic: "ISB", mode: absolute, kind: instrReadModWrite, length: 3, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0xF0, mnemonic: "BEQ", mode: relative, kind: instrNone, length: 2, cycles: 2, pageCycles: 1, illegal: false},
	{opcode: 0xF1, mnemonic: "SBC", mode: postIndexedIndirect, kind: instrRead, length: 2, cycles: 5, pageCycles: 1, illegal: false},
	{opcode: 0xF2, mnemonic: "KIL", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xF3, mnemonic: "ISB", mode: postIndexedIndirect, kind: instrReadModWrite, length: 2, cycles: 8, pageCycles: 0, illegal: true},
	{opcode: 0xF4, mnemonic: "NOP", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: true},
	{opcode: 0xF5, mnemonic: "SBC", mode: zeroPageIndexedX, kind: instrRead, length: 2, cycles: 4, pageCycles: 0, illegal: false},
	{opcode: 0xF6, mnemonic: "INC", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: false},
	{opcode: 0xF7, mnemonic: "ISB", mode: zeroPageIndexedX, kind: instrReadModWrite, length: 2, cycles: 6, pageCycles: 0, illegal: true},
	{opcode: 0xF8, mnemonic: "SED", mode: implied, kind: instrNone, length: 1, cycles: 2, pageCycles: 0, illegal: false},
	{opcode: 0xF9, mnemonic: "SBC", mode: indexedY, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0xFA, mnemonic: "NOP", mode: implied, kind: instrRead, length: 1, cycles: 2, pageCycles: 0, illegal: true},
	{opcode: 0xFB, mnemonic: "ISB", mode: indexedY, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
	{opcode: 0xFC, mnemonic: "NOP", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: true},
	{opcode: 0xFD, mnemonic: "SBC", mode: indexedX, kind: instrRead, length: 3, cycles: 4, pageCycles: 1, illegal: false},
	{opcode: 0xFE, mnemonic: "INC", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: false},
	{opcode: 0xFF, mnemonic: "ISB", mode: indexedX, kind: instrReadModWrite, length: 3, cycles: 7, pageCycles: 0, illegal: true},
}
