package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eppesuig/baan-utft/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	byteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// inspectModel is a small REPL: type UTF-T bytes as hex, see the decoded
// UTF-8 bytes and text live.
type inspectModel struct {
	err    error
	input  textinput.Model
	utf8   []byte
	mode   transcoder.Mode
	converted bool
}

func newInspectModel(mode transcoder.Mode) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "9B BC C1 AC"
	ti.Prompt = "utft> "
	ti.Width = 60
	ti.Focus()
	return &inspectModel{input: ti, mode: mode}
}

func runInteractive(mode transcoder.Mode) error {
	p := tea.NewProgram(newInspectModel(mode))
	_, err := p.Run()
	return err
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+t":
			if m.mode == transcoder.ModeStrict {
				m.mode = transcoder.ModeCompat
			} else {
				m.mode = transcoder.ModeStrict
			}
			m.convert()
			return m, nil

		case "enter":
			m.convert()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectModel) convert() {
	m.converted = true
	m.err = nil
	m.utf8 = nil

	raw, err := parseHex(m.input.Value())
	if err != nil {
		m.err = err
		return
	}

	out, err := transcoder.NewWithMode(m.mode).Transcode(raw)
	if err != nil {
		m.err = err
		return
	}
	m.utf8 = out
}

// parseHex accepts "9BBC81E7" as well as "9B BC 81 E7".
func parseHex(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == ',' {
			return -1
		}
		return r
	}, s)
	raw, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("not valid hex: %w", err)
	}
	return raw, nil
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF-T Inspector"))
	b.WriteString("  mode: ")
	b.WriteString(modeStyle.Render(m.mode.String()))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.converted {
		switch {
		case m.err != nil:
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		default:
			b.WriteString("UTF-8: ")
			b.WriteString(byteStyle.Render(fmt.Sprintf("% X", m.utf8)))
			b.WriteString("\n")
			b.WriteString("Text:  ")
			b.WriteString(resultStyle.Render(string(m.utf8)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter convert • ctrl+t toggle mode • esc quit"))
	b.WriteString("\n")
	return b.String()
}
