package nes

import (
	"fmt"
	"io"
	"os"
)

// Machine is the public scheduler façade: a bus, a cartridge, and a
// CPU wired together, grounded on flga-vnes/nes/console.go's Console
// but scoped down to exactly what this core models — no PPU, APU,
// controllers, or audio plumbing, since those are opaque register
// windows here, not emulated devices.
type Machine struct {
	bus   *bus
	cpu   *cpu
	trace io.Writer
}

// Config carries the small set of construction-time overrides the
// core needs: an entry-point PC for harnesses like nestest that don't
// want the documented post-power-up default, and where trace output
// from DebugStep goes. There is no interrupt-flag override; the
// post-power-up state already has I=1, which is what nestest wants.
type Config struct {
	// EntryPC overrides the CPU's program counter after construction.
	// Zero means "leave the documented power-on default (0x0034)".
	EntryPC uint16

	// Trace receives DebugStep's per-instruction trace lines. Nil
	// disables tracing; Step never writes to it.
	Trace io.Writer
}

// NewMachine builds a Machine with no cartridge loaded yet; Load or
// LoadPath must run before Step will see any PRG-mapped memory.
func NewMachine(cfg Config) *Machine {
	b := newBus(nil)
	c := newCPU(b)

	if cfg.EntryPC != 0 {
		c.setPC(cfg.EntryPC)
	}

	return &Machine{bus: b, cpu: c, trace: cfg.Trace}
}

// Load parses an iNES image from r and wires it onto the bus.
func (m *Machine) Load(r io.Reader) error {
	cart, err := loadINES(r)
	if err != nil {
		return err
	}
	m.bus.cartridge = cart
	return nil
}

// LoadPath opens path and calls Load.
func (m *Machine) LoadPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("nes: unable to open rom: %w", err)
	}
	defer f.Close()
	return m.Load(f)
}

// Reset reads the cartridge's reset vector and jumps the CPU there,
// as real hardware does on every power cycle after the first.
func (m *Machine) Reset() {
	m.cpu.reset()
}

// Step advances the machine by exactly one instruction and returns
// the number of cycles it cost.
func (m *Machine) Step() (byte, error) {
	return m.cpu.step()
}

// Tick advances the machine by exactly one CPU clock cycle.
func (m *Machine) Tick() error {
	return m.cpu.tick()
}

// DebugStep advances by one instruction, first writing a trace line
// to w (falling back to the Config's Trace writer if w is nil, and
// discarding the line entirely if neither is set).
func (m *Machine) DebugStep(w io.Writer) (byte, error) {
	if w == nil {
		w = m.trace
	}
	if w == nil {
		w = io.Discard
	}
	return m.cpu.debugStep(w)
}

// Read and Write expose the bus directly, for callers (and tests)
// that want to inspect or seed memory without going through the CPU.
func (m *Machine) Read(addr uint16) byte {
	return m.bus.read(addr)
}

func (m *Machine) Write(addr uint16, v byte) error {
	return m.bus.write(addr, v)
}

// PC, A, X, Y, S, and P expose the live register file read-only, for
// tests and trace tooling that need to assert on CPU state directly.
func (m *Machine) PC() uint16 { return m.cpu.pc }
func (m *Machine) A() byte    { return m.cpu.a }
func (m *Machine) X() byte    { return m.cpu.x }
func (m *Machine) Y() byte    { return m.cpu.y }
func (m *Machine) S() byte    { return m.cpu.s }
func (m *Machine) P() byte    { return byte(m.cpu.p) }

// SetPC overrides the program counter directly.
func (m *Machine) SetPC(pc uint16) {
	m.cpu.setPC(pc)
}

// TotalCycles returns the monotonic cycle counter.
func (m *Machine) TotalCycles() uint64 {
	return m.cpu.total
}
