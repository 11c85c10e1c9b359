package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/linuxmatters/sweettalking/internal/audio"
	"github.com/linuxmatters/sweettalking/internal/processor"
)

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "talk_processed.mp3")

	cfg := processor.DefaultFilterConfig()
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	data := ReportData{
		Version:   "1.2.0",
		StartTime: start,
		EndTime:   start.Add(95 * time.Second),
		Result: &processor.ProcessingResult{
			InputPath:  filepath.Join(dir, "talk.mp3"),
			OutputPath: outputPath,
			FilterSpec: cfg.BuildFilterSpec(),
			InputSize:  50 * 1024 * 1024,
			OutputSize: 30 * 1024 * 1024,
			Elapsed:    90 * time.Second,
		},
		Config: cfg,
		Before: &audio.Metadata{Duration: 3130, SampleRate: 44100, Channels: 2, BitRate: 128000},
		After:  &audio.Metadata{Duration: 2980, SampleRate: 44100, Channels: 1, BitRate: 96000},
	}

	if err := GenerateReport(data); err != nil {
		t.Fatalf("GenerateReport() failed: %v", err)
	}

	logPath := filepath.Join(dir, "talk_processed.log")
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	report := string(content)

	t.Run("names the files", func(t *testing.T) {
		for _, want := range []string{"talk.mp3", "talk_processed.mp3", "1.2.0"} {
			if !strings.Contains(report, want) {
				t.Errorf("report missing %q", want)
			}
		}
	})

	t.Run("lists every chain stage", func(t *testing.T) {
		for _, want := range []string{
			"Noise reduction: afftdn=nf=-25",
			"Silence removal: below -35dB for 0.4s",
			"Equalizer: 5 stages",
			"Compressor: acompressor",
			"Loudness normalisation: -16 LUFS target",
		} {
			if !strings.Contains(report, want) {
				t.Errorf("report missing %q", want)
			}
		}
	})

	t.Run("includes the raw chain", func(t *testing.T) {
		if !strings.Contains(report, "Raw chain: "+cfg.BuildFilterSpec()) {
			t.Error("raw chain line missing")
		}
	})

	t.Run("compares before and after", func(t *testing.T) {
		for _, want := range []string{"Before", "After", "50.00", "30.00", "stereo", "mono", "Size change: -40.0%"} {
			if !strings.Contains(report, want) {
				t.Errorf("report missing %q", want)
			}
		}
	})

	t.Run("summarises timings", func(t *testing.T) {
		if !strings.Contains(report, "Engine Time: 1m 30s") {
			t.Error("engine time missing")
		}
		if !strings.Contains(report, "(35x real-time)") {
			t.Errorf("real-time factor missing:\n%s", report)
		}
	})
}

func TestGenerateReportWithoutMetadata(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "clip_processed.mp3")

	data := ReportData{
		StartTime: time.Now(),
		EndTime:   time.Now(),
		Result: &processor.ProcessingResult{
			InputPath:  "clip.mp3",
			OutputPath: outputPath,
			InputSize:  1024,
			OutputSize: 512,
		},
		Config: processor.DefaultFilterConfig(),
	}

	if err := GenerateReport(data); err != nil {
		t.Fatalf("GenerateReport() failed without metadata: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "clip_processed.log"))
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(content), MissingValue) {
		t.Error("missing metadata should render as placeholders")
	}
}
