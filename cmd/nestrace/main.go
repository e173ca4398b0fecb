// Command nestrace runs a 6502 program from an iNES ROM and streams
// (or diffs) its per-instruction execution trace, the conformance
// workflow spec.md describes as an integration test, made available
// here as a standalone tool.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/burnhamup/nes/nes"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		romPath string
		pc      uint16
		logPath string
		steps   int
	)

	cmd := &cobra.Command{
		Use:   "nestrace",
		Short: "Run a 6502 program from an iNES ROM and emit or diff its execution trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(romPath, pc, logPath, steps)
		},
	}

	cmd.Flags().StringVar(&romPath, "rom", "", "path to an iNES ROM file (required)")
	cmd.Flags().Uint16Var(&pc, "pc", 0, "entry PC override (default: cartridge reset vector)")
	cmd.Flags().StringVar(&logPath, "log", "", "reference trace log to diff against (nestest-style)")
	cmd.Flags().IntVar(&steps, "steps", 1000, "instruction count cap when no --log is given")
	cmd.MarkFlagRequired("rom")

	return cmd
}

func run(romPath string, pc uint16, logPath string, steps int) error {
	m := nes.NewMachine(nes.Config{})
	if err := m.LoadPath(romPath); err != nil {
		return err
	}

	if pc != 0 {
		m.SetPC(pc)
	} else {
		m.Reset()
	}

	if logPath != "" {
		return diffAgainstLog(m, logPath)
	}
	return streamTrace(m, steps)
}

func streamTrace(m *nes.Machine, steps int) error {
	for i := 0; i < steps; i++ {
		if _, err := m.DebugStep(os.Stdout); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func diffAgainstLog(m *nes.Machine, logPath string) error {
	f, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("unable to open reference log: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		want := scanner.Text()

		var buf bytes.Buffer
		if _, err := m.DebugStep(&buf); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		got := string(bytes.TrimRight(buf.Bytes(), "\n"))
		if got != want {
			return fmt.Errorf("trace mismatch at line %d:\n got:  %s\n want: %s", line, got, want)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading reference log: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%d lines matched\n", line)
	return nil
}
