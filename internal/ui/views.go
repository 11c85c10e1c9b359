package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Spinner frames for indeterminate progress
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D78700"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D78700"))

	barFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D78700"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))
)

// renderProcessingView renders the live view for an active engine run.
func renderProcessingView(m Model) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Sweettalking"))
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Voice Cleanup"))
	b.WriteString("\n\n")

	b.WriteString("Processing: ")
	b.WriteString(fileStyle.Render(m.FileName))
	b.WriteString(" → ")
	b.WriteString(fileStyle.Render(m.OutputName))
	b.WriteString("\n\n")

	elapsed := time.Since(m.StartTime)
	spinner := spinnerStyle.Render(spinnerFrames[m.spinnerIndex])

	if f := m.Fraction(); f >= 0 {
		b.WriteString(spinner)
		b.WriteString(" ")
		b.WriteString(renderProgressBar(f, 40, elapsed))
	} else {
		// Input length unknown; show what the engine has encoded so far.
		b.WriteString(spinner)
		b.WriteString(" Processing...")
		if m.OutTime > 0 {
			b.WriteString(fmt.Sprintf(" %s encoded", formatElapsed(m.OutTime)))
		}
		b.WriteString(fmt.Sprintf(" [%s]", formatElapsed(elapsed)))
	}
	b.WriteString("\n")

	return b.String()
}

// renderProgressBar renders a progress bar with percentage and elapsed time
func renderProgressBar(progress float64, width int, elapsed time.Duration) string {
	filled := int(progress * float64(width))
	empty := width - filled

	bar := barFilledStyle.Render(strings.Repeat("━", filled)) +
		barEmptyStyle.Render(strings.Repeat("━", empty))

	percentage := int(progress * 100)

	return fmt.Sprintf("%s %3d%% [%s]", bar, percentage, formatElapsed(elapsed))
}

// formatElapsed formats elapsed time as MM:SS or HH:MM:SS
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
