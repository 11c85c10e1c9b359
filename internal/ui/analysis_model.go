package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AnalysisModel is the Bubbletea model for analysis-only mode. The detector
// gives no usable progress stream, so the display is a spinner with an
// elapsed clock; the report itself is printed by the caller once the run
// finishes.
type AnalysisModel struct {
	FileName  string
	StartTime time.Time

	spinnerIndex int

	Done bool
	Err  error

	// Terminal dimensions
	Width  int
	Height int
}

// AnalysisCompleteMsg signals the detector pass has finished. As with
// CompleteMsg, the report travels over a channel rather than through the UI.
type AnalysisCompleteMsg struct {
	Err error
}

// NewAnalysisModel creates the analysis UI model.
func NewAnalysisModel(inputPath string) AnalysisModel {
	return AnalysisModel{
		FileName:  filepath.Base(inputPath),
		StartTime: time.Now(),
	}
}

// Init initializes the model
func (m AnalysisModel) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model
func (m AnalysisModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
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

	case AnalysisCompleteMsg:
		m.Err = msg.Err
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m AnalysisModel) View() string {
	if m.Done {
		return ""
	}
	if m.Width == 0 {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Sweettalking"))
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Analysis Mode"))
	b.WriteString("\n\n")

	b.WriteString("Analysing: ")
	b.WriteString(fileStyle.Render(m.FileName))
	b.WriteString("\n\n")

	spinner := spinnerStyle.Render(spinnerFrames[m.spinnerIndex])
	b.WriteString(spinner)
	b.WriteString(" Listening for silence...")
	b.WriteString(fmt.Sprintf(" [%s]", formatElapsed(time.Since(m.StartTime))))
	b.WriteString("\n")

	return b.String()
}
