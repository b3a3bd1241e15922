package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zaynotley/eaxefx-go"
	"github.com/zaynotley/eaxefx-go/internal/alxfake"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("207"))
	rowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

type watchModel struct {
	backend *alxfake.Backend
	cursor  int
}

func newWatchModel() watchModel {
	return watchModel{backend: alxfake.New()}
}

func (m watchModel) Init() tea.Cmd { return nil }

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			calls := m.backend.Calls()
			if m.cursor < len(calls)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	calls := m.backend.Calls()
	s := titleStyle.Render("eaxefxctl — EFX call trace") + "\n\n"
	if len(calls) == 0 {
		s += dimStyle.Render("(no calls recorded yet)") + "\n"
	}
	for i, c := range calls {
		line := fmt.Sprintf("%-28s handle=%-4d param=%#06x value=%v", c.Method, c.Handle, c.Param, c.Value)
		if i == m.cursor {
			s += rowStyle.Bold(true).Render("> "+line) + "\n"
		} else {
			s += rowStyle.Render("  "+line) + "\n"
		}
	}
	s += "\n" + dimStyle.Render("↑/↓ to scroll, q to quit")
	return s
}

func runWatchTUI() error {
	m := newWatchModel()

	eng := eaxefx.NewEngine(m.backend, m.backend, nil)
	h, err := eng.CreateContext()
	if err != nil {
		return err
	}
	if err := eng.MakeCurrent(h); err != nil {
		return err
	}

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
