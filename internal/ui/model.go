// Package ui provides the Bubbletea progress display shown while the engine
// runs. It is purely presentational: quitting it never interrupts the engine.
package ui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubbletea model for a single processing run.
type Model struct {
	FileName   string
	OutputName string

	// Duration is the input length when the prober could measure it.
	// Zero means unknown, which switches the bar to an indeterminate
	// spinner.
	Duration time.Duration

	// OutTime is how far the engine has encoded.
	OutTime time.Duration

	StartTime time.Time
	Done      bool
	Err       error

	spinnerIndex int

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates the processing UI model.
func NewModel(inputPath, outputPath string, duration time.Duration) Model {
	return Model{
		FileName:   filepath.Base(inputPath),
		OutputName: filepath.Base(outputPath),
		Duration:   duration,
		StartTime:  time.Now(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd returns a command that sends a tick message every 100ms
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// Drops the display only; the engine keeps running and the
			// caller still collects its result.
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tickMsg:
		if !m.Done {
			m.spinnerIndex = (m.spinnerIndex + 1) % len(spinnerFrames)
			return m, tickCmd()
		}
		return m, nil

	case ProgressMsg:
		m.OutTime = msg.OutTime
		return m, nil

	case CompleteMsg:
		m.Err = msg.Err
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// Fraction returns processing progress in [0, 1], or -1 when the input
// duration is unknown.
func (m Model) Fraction() float64 {
	if m.Duration <= 0 {
		return -1
	}
	f := float64(m.OutTime) / float64(m.Duration)
	if f > 1 {
		f = 1
	}
	return f
}

// View renders the UI
func (m Model) View() string {
	if m.Done {
		// The caller prints the outcome; leave the screen clean.
		return ""
	}
	if m.Width == 0 {
		return "Initializing..."
	}
	return renderProcessingView(m)
}
