package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if !m.checking {
				m.checking = true
				m.err = nil
				return m, tea.Batch(m.sp.Tick, runChecksCmd(m.configPath))
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case reportMsg:
		m.checking = false
		m.rep = msg.rep
		m.err = msg.err
		m.updatedAt = time.Now()
	case spinner.TickMsg:
		if m.checking {
			var cmd tea.Cmd
			m.sp, cmd = m.sp.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}
