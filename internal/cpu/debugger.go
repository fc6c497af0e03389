package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"sixfiveoh/internal/status"
)

// debugModel is the bubbletea model backing Debug: a single-step inspector
// over an already-constructed, already-loaded CPU. It owns no emulator
// state of its own; View renders from the CPU and its bus.
type debugModel struct {
	cpu    *CPU
	offset uint16 // not read by pageTable, which shows a fixed set of rows

	prevPC byte // byte at PC just before the most recent step; not rendered by View
	err    error
}

func (m debugModel) Init() tea.Cmd { return nil }

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.Bus.Read(m.cpu.PC)
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders 16 consecutive bus bytes as a line, highlighting PC.
func (m debugModel) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Bus.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m debugModel) statusPanel() string {
	var flags string
	for _, f := range []status.Flag{status.N, status.V, status.U, status.B, status.D, status.I, status.Z, status.C} {
		if m.cpu.Status.Get(f) {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V U B D I Z C
%s`, m.cpu.PC, m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP, flags)
}

func (m debugModel) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}
	pcPage := m.cpu.PC &^ 0x0F
	for _, base := range []uint16{0x0000, 0x0010, 0x0020, pcPage, 0xFFF0} {
		lines = append(lines, m.renderPage(base))
	}
	return strings.Join(lines, "\n")
}

func (m debugModel) View() string {
	opcodeByte := m.cpu.Bus.Read(m.cpu.PC)
	op, ok := opcodeTable[opcodeByte]
	detail := "no entry"
	if ok {
		detail = spew.Sdump(op)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.statusPanel()),
		"",
		detail,
		"space/j: step    q: quit",
	)
}

// Debug starts an interactive single-step TUI over an already-constructed,
// already-loaded CPU (ROM image in place, RESET already serviced or
// pending). Each space/j keypress advances exactly one Step.
func (c *CPU) Debug() error {
	p := tea.NewProgram(debugModel{cpu: c})
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(debugModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
