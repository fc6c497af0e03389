// Command run-led loads a ROM image, runs it against a RAM+ROM+VIA machine,
// and renders the VIA's two output ports as a live row of LEDs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sixfiveoh/internal/machine"
	"sixfiveoh/internal/memory"
	"sixfiveoh/internal/via"
)

var (
	litStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	unlitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func main() {
	cmd := &cobra.Command{
		Use:   "run-led <rom> [clock_hz]",
		Short: "Run a ROM image against a VIA-only machine with a live LED panel",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runLED,
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sixfiveoh: "+err.Error())
		os.Exit(1)
	}
}

func runLED(cmd *cobra.Command, args []string) error {
	romPath := args[0]
	clockHz, err := parseClockHz(args)
	if err != nil {
		return err
	}

	rom := &memory.ROM{}
	if err := loadROM(rom, romPath); err != nil {
		return err
	}

	v := via.New()
	m := machine.New(&memory.RAM{}, rom, v, nil, clockHz)

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	runErrCh := make(chan error, 1)
	go func() { runErrCh <- m.Run(ctx) }()

	p := tea.NewProgram(ledModel{via: v})
	if _, err := p.Run(); err != nil {
		cancel()
		return err
	}
	cancel()
	return <-runErrCh
}

// ledModel polls VIA.PortAOutput/PortBOutput on a fixed tick and redraws the
// two LED rows whenever either value changes.
type ledModel struct {
	via      *via.VIA
	portA    byte
	portB    byte
	quitting bool
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m ledModel) Init() tea.Cmd { return tick() }

func (m ledModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		m.portA = m.via.PortAOutput()
		m.portB = m.via.PortBOutput()
		return m, tick()
	}
	return m, nil
}

func (m ledModel) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render("Port A")+"  "+ledRow(m.portA),
		labelStyle.Render("Port B")+"  "+ledRow(m.portB),
		"",
		labelStyle.Render("q: quit"),
	)
}

// ledRow renders one byte as 8 lit/unlit cells, MSB first.
func ledRow(v byte) string {
	var cells []string
	for bit := 7; bit >= 0; bit-- {
		if v&(1<<uint(bit)) != 0 {
			cells = append(cells, litStyle.Render("●"))
		} else {
			cells = append(cells, unlitStyle.Render("○"))
		}
	}
	return strings.Join(cells, " ")
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
