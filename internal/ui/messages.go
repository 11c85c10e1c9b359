package ui

import "time"

// ProgressMsg carries the engine's encoded-so-far position.
type ProgressMsg struct {
	OutTime time.Duration
}

// CompleteMsg signals that the engine has exited. The processing result
// itself travels over a separate channel so a display failure can never
// swallow it; the message only closes the UI.
type CompleteMsg struct {
	Err error
}

// tickMsg drives the spinner and elapsed clock.
type tickMsg time.Time
