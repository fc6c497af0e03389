// Command run-console loads a ROM image, puts the host terminal into raw
// mode, and runs it against a RAM+ROM+VIA+ACIA machine bridging the guest's
// serial port to stdin/stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"sixfiveoh/internal/acia"
	"sixfiveoh/internal/machine"
	"sixfiveoh/internal/memory"
	"sixfiveoh/internal/terminal"
	"sixfiveoh/internal/via"
)

func main() {
	cmd := &cobra.Command{
		Use:   "run-console <rom> [clock_hz]",
		Short: "Run a ROM image against a VIA+ACIA machine bridged to the host terminal",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runConsole,
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sixfiveoh: "+err.Error())
		os.Exit(1)
	}
}

func runConsole(cmd *cobra.Command, args []string) error {
	romPath := args[0]
	clockHz, err := parseClockHz(args)
	if err != nil {
		return err
	}

	rom := &memory.ROM{}
	if err := loadROM(rom, romPath); err != nil {
		return err
	}

	guard, err := terminal.StdinGuard()
	if err != nil {
		return err
	}
	defer guard.Restore()

	a := acia.New(os.Stdin, stdoutSink{})
	m := machine.New(&memory.RAM{}, rom, via.New(), a, clockHz)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	return m.Run(ctx)
}

// stdoutSink writes each transmitted byte straight to the host's stdout,
// unbuffered, so the guest's output appears as soon as it's sent.
type stdoutSink struct{}

func (stdoutSink) WriteByte(b byte) error {
	_, err := os.Stdout.Write([]byte{b})
	return err
}

func parseClockHz(args []string) (uint64, error) {
	if len(args) < 2 {
		return 0, nil
	}
	hz, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid clock_hz %q: %w", args[1], err)
	}
	return hz, nil
}

func loadROM(rom *memory.ROM, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return rom.LoadFromDirectory(path)
	}
	return rom.LoadFromFile(path, memory.ROMBase)
}
