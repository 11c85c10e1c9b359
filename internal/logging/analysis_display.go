// Package logging handles report generation for processed recordings.
// This file provides console display for analysis-only mode.

package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/linuxmatters/sweettalking/internal/audio"
	"github.com/linuxmatters/sweettalking/internal/processor"
)

// DisplaySilenceReport prints a silence analysis to the console.
// meta may be nil when the prober is unavailable; the file info block is
// skipped then. The detector's diagnostic lines are shown exactly as the
// engine produced them.
func DisplaySilenceReport(w io.Writer, report *processor.SilenceReport, meta *audio.Metadata, tips []RecordingTip) {
	// Header
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "SILENCE ANALYSIS: %s\n", filepath.Base(report.InputPath))
	fmt.Fprintln(w, strings.Repeat("=", 70))

	// File info
	if meta != nil {
		fmt.Fprintf(w, "Duration:    %s\n", formatDurationHMS(meta.Duration))
		fmt.Fprintf(w, "Sample Rate: %d Hz\n", meta.SampleRate)
		fmt.Fprintf(w, "Channels:    %s\n", channelName(meta.Channels))
	}
	fmt.Fprintf(w, "Threshold:   %s\n", report.Threshold)
	fmt.Fprintf(w, "Min Length:  %ss\n", report.MinLength)
	fmt.Fprintln(w)

	// Detector output, verbatim
	if len(report.Lines) > 0 {
		fmt.Fprintln(w, "DETECTOR OUTPUT")
		for _, line := range report.Lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
	} else {
		fmt.Fprintln(w, "No silence periods found.")
	}

	fmt.Fprintf(w, "\nTotal silence periods detected: %d\n", report.Count)

	// Summary statistics
	if report.Count > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "SUMMARY")
		fmt.Fprintf(w, "  Total Silence: %.1fs\n", report.TotalSilence())
		fmt.Fprintf(w, "  Longest Pause: %.1fs\n", report.LongestPause())
		fmt.Fprintf(w, "  Mean Pause:    %.1fs\n", report.MeanPause())
		if meta != nil && meta.Duration > 0 {
			share := report.TotalSilence() / meta.Duration * 100
			fmt.Fprintf(w, "  Silence Share: %.1f%% of the recording\n", share)
		}
	}

	// Tips
	if len(tips) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "RECORDING TIPS")
		for i, tip := range tips {
			prefix := fmt.Sprintf("  %d. ", i+1)
			indent := strings.Repeat(" ", len(prefix))
			fmt.Fprintf(w, "%s%s\n", prefix, wrapText(tip.Message, 66-len(prefix), indent))
		}
	}
}

// formatDurationHMS formats duration as "Xh Ym Zs" or "Ym Zs" or "Z.Xs".
func formatDurationHMS(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}

	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%dm %ds", minutes, secs)
}

// channelName returns a human-readable channel name
func channelName(channels int) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d channels", channels)
	}
}
