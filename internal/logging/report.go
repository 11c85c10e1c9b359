// Package logging handles generation of processing reports for cleaned recordings.

package logging

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/linuxmatters/sweettalking/internal/audio"
	"github.com/linuxmatters/sweettalking/internal/processor"
)

func writeSection(f *os.File, title string) {
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("-", len(title)))
}

// ReportData contains all the information needed to generate a processing report
type ReportData struct {
	Version   string
	StartTime time.Time
	EndTime   time.Time
	Result    *processor.ProcessingResult
	Config    *processor.FilterChainConfig
	Before    *audio.Metadata // nil when the prober was unavailable
	After     *audio.Metadata // nil when the prober was unavailable
}

// GenerateReport creates a processing report and saves it alongside the
// output file. The report filename will be <output>.log with the audio
// extension replaced.
//
// Report structure:
// 1. Header - file info and timestamp
// 2. Processing Summary - timings
// 3. Filter Chain Applied - per-stage parameters
// 4. Result comparison - Before/After table
func GenerateReport(data ReportData) error {
	// talk_processed.mp3 → talk_processed.log
	outputPath := data.Result.OutputPath
	logPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".log"

	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	writeReportHeader(f, data)
	writeProcessingSummary(f, data)

	if data.Config != nil {
		formatFilterChain(f, data.Config)
		fmt.Fprintf(f, "\nRaw chain: %s\n", data.Result.FilterSpec)
		fmt.Fprintln(f, "")
	}

	writeComparisonTable(f, data)

	return nil
}

func writeReportHeader(f *os.File, data ReportData) {
	fmt.Fprintln(f, "Sweettalking Processing Report")
	fmt.Fprintln(f, "==============================")
	fmt.Fprintf(f, "Input:     %s\n", filepath.Base(data.Result.InputPath))
	fmt.Fprintf(f, "Output:    %s\n", filepath.Base(data.Result.OutputPath))
	fmt.Fprintf(f, "Processed: %s\n", data.EndTime.Format("2006-01-02 15:04:05 MST"))
	if data.Version != "" {
		fmt.Fprintf(f, "Version:   %s\n", data.Version)
	}
	fmt.Fprintln(f, "")
}

// writeProcessingSummary outputs engine and wall-clock timings.
func writeProcessingSummary(f *os.File, data ReportData) {
	writeSection(f, "Processing Summary")

	fmt.Fprintf(f, "Engine Time: %s", formatDuration(data.Result.Elapsed))
	if data.Before != nil && data.Before.Duration > 0 && data.Result.Elapsed > 0 {
		audioDuration := time.Duration(data.Before.Duration * float64(time.Second))
		rtf := float64(audioDuration) / float64(data.Result.Elapsed)
		fmt.Fprintf(f, " (%.0fx real-time)", rtf)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintf(f, "Total:       %s\n", formatDuration(data.EndTime.Sub(data.StartTime)))
	fmt.Fprintln(f, "")
}

// formatFilterChain generates the filter chain section of the report.
// Iterates over filters in chain order, showing enabled/disabled status
// and key parameters for each stage.
func formatFilterChain(f *os.File, cfg *processor.FilterChainConfig) {
	writeSection(f, "Filter Chain (in processing order)")

	order := cfg.FilterOrder
	if len(order) == 0 {
		order = processor.ChainOrder
	}
	for i, filterID := range order {
		prefix := fmt.Sprintf("%2d. ", i+1)
		formatFilter(f, filterID, cfg, prefix)
	}
}

// formatFilter outputs details for a single chain stage
func formatFilter(f *os.File, filterID processor.FilterID, cfg *processor.FilterChainConfig, prefix string) {
	switch filterID {
	case processor.FilterNoiseReduction:
		formatNoiseReductionFilter(f, cfg, prefix)
	case processor.FilterSilenceRemove:
		formatSilenceRemoveFilter(f, cfg, prefix)
	case processor.FilterEqualizer:
		formatEqualizerFilter(f, cfg, prefix)
	case processor.FilterCompressor:
		formatCompressorFilter(f, cfg, prefix)
	case processor.FilterLoudnorm:
		formatLoudnormFilter(f, cfg, prefix)
	default:
		fmt.Fprintf(f, "%s%s: (unknown stage)\n", prefix, filterID)
	}
}

func formatNoiseReductionFilter(f *os.File, cfg *processor.FilterChainConfig, prefix string) {
	if !cfg.NoiseReductionEnabled {
		fmt.Fprintf(f, "%sNoise reduction: DISABLED\n", prefix)
		return
	}
	fmt.Fprintf(f, "%sNoise reduction: %s\n", prefix, cfg.NoiseReduction)
}

func formatSilenceRemoveFilter(f *os.File, cfg *processor.FilterChainConfig, prefix string) {
	if !cfg.SilenceRemoveEnabled {
		fmt.Fprintf(f, "%sSilence removal: DISABLED\n", prefix)
		return
	}
	fmt.Fprintf(f, "%sSilence removal: below %s for %ss\n", prefix, cfg.SilenceThreshold, cfg.SilenceDuration)
	fmt.Fprintf(f, "%s  trims pauses through the whole take (stop_periods=-1)\n", strings.Repeat(" ", len(prefix)-4))
}

func formatEqualizerFilter(f *os.File, cfg *processor.FilterChainConfig, prefix string) {
	if !cfg.EqualizerEnabled || len(cfg.EQStages) == 0 {
		fmt.Fprintf(f, "%sEqualizer: DISABLED\n", prefix)
		return
	}
	fmt.Fprintf(f, "%sEqualizer: %d stages\n", prefix, len(cfg.EQStages))
	indent := strings.Repeat(" ", len(prefix))
	for _, stage := range cfg.EQStages {
		fmt.Fprintf(f, "%s  %s\n", indent, stage)
	}
}

func formatCompressorFilter(f *os.File, cfg *processor.FilterChainConfig, prefix string) {
	if !cfg.CompressorEnabled {
		fmt.Fprintf(f, "%sCompressor: DISABLED\n", prefix)
		return
	}
	fmt.Fprintf(f, "%sCompressor: %s\n", prefix, cfg.Compressor)
}

func formatLoudnormFilter(f *os.File, cfg *processor.FilterChainConfig, prefix string) {
	if !cfg.LoudnormEnabled {
		fmt.Fprintf(f, "%sLoudness normalisation: DISABLED\n", prefix)
		return
	}
	fmt.Fprintf(f, "%sLoudness normalisation: %s LUFS target (TP %.1f, LRA %.0f)\n",
		prefix, cfg.TargetLoudness, cfg.LoudnormTruePeak, cfg.LoudnormRange)
}

// writeComparisonTable outputs a Before/After table for the run.
func writeComparisonTable(f *os.File, data ReportData) {
	writeSection(f, "Result")

	table := NewMetricTable()

	before := data.Before
	after := data.After

	durBefore, durAfter := "", ""
	if before != nil {
		durBefore = formatDurationHMS(before.Duration)
	}
	if after != nil {
		durAfter = formatDurationHMS(after.Duration)
	}
	table.AddRow("Duration", []string{durBefore, durAfter}, "", "")

	table.AddRow("File Size", []string{
		formatBytes(data.Result.InputSize),
		formatBytes(data.Result.OutputSize),
	}, "MB", "")

	brBefore, brAfter := "", ""
	if before != nil && before.BitRate > 0 {
		brBefore = fmt.Sprintf("%d", before.BitRate/1000)
	}
	if after != nil && after.BitRate > 0 {
		brAfter = fmt.Sprintf("%d", after.BitRate/1000)
	}
	table.AddRow("Bit Rate", []string{brBefore, brAfter}, "kb/s", "")

	srBefore, srAfter := "", ""
	if before != nil && before.SampleRate > 0 {
		srBefore = fmt.Sprintf("%d", before.SampleRate)
	}
	if after != nil && after.SampleRate > 0 {
		srAfter = fmt.Sprintf("%d", after.SampleRate)
	}
	table.AddRow("Sample Rate", []string{srBefore, srAfter}, "Hz", "")

	chBefore, chAfter := "", ""
	if before != nil && before.Channels > 0 {
		chBefore = channelName(before.Channels)
	}
	if after != nil && after.Channels > 0 {
		chAfter = channelName(after.Channels)
	}
	table.AddRow("Channels", []string{chBefore, chAfter}, "", "")

	fmt.Fprint(f, table.String())

	reduction := data.Result.ReductionPercent()
	if !math.IsNaN(reduction) {
		fmt.Fprintf(f, "\nSize change: %s%%\n", formatMetricSigned(-reduction, 1))
	}
}

// formatDuration formats a wall-clock duration for the summary lines.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
