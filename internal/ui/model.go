package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"devcheck/internal/config"
	"devcheck/internal/doctor"
)

// Start launches the results dashboard.
func Start(configPath string) error {
	p := tea.NewProgram(initialModel(configPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// reportMsg delivers a finished check run to the model.
type reportMsg struct {
	rep doctor.Report
	err error
}

type model struct {
	configPath string
	sp         spinner.Model
	checking   bool
	rep        doctor.Report
	err        error
	updatedAt  time.Time
	width      int
	height     int
	quitting   bool
}

func initialModel(configPath string) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	return model{configPath: configPath, sp: sp, checking: true}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.sp.Tick, runChecksCmd(m.configPath))
}

// runChecksCmd probes the whole catalog off the update loop.
func runChecksCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cat, err := config.Load(path)
		if err != nil {
			return reportMsg{err: err}
		}
		results := doctor.Run(cat.Tools)
		return reportMsg{rep: doctor.BuildReport(results, cat.SystemRequirements)}
	}
}
