package processor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SilenceEvent is one silence period reported by the engine's detector.
// End and Duration are negative while a period is still open, which happens
// when the recording finishes mid-silence.
type SilenceEvent struct {
	Start    float64 // Seconds from stream start
	End      float64 // Seconds from stream start
	Duration float64 // Seconds
}

// SilenceReport is the outcome of a silence analysis run.
type SilenceReport struct {
	InputPath string
	Threshold string // Detection threshold as configured (e.g. "-35dB")
	MinLength string // Minimum pause length in seconds, as configured

	// Lines holds the detector's diagnostic lines verbatim, in order of
	// appearance.
	Lines []string

	Events []SilenceEvent

	// Count is the number of completed silence periods, one per
	// silence_duration diagnostic.
	Count int
}

// TotalSilence returns the summed length of all completed periods in seconds.
func (r *SilenceReport) TotalSilence() float64 {
	var total float64
	for _, ev := range r.Events {
		if ev.Duration > 0 {
			total += ev.Duration
		}
	}
	return total
}

// LongestPause returns the longest completed period in seconds.
func (r *SilenceReport) LongestPause() float64 {
	var longest float64
	for _, ev := range r.Events {
		if ev.Duration > longest {
			longest = ev.Duration
		}
	}
	return longest
}

// MeanPause returns the average completed period length in seconds.
func (r *SilenceReport) MeanPause() float64 {
	if r.Count == 0 {
		return 0
	}
	return r.TotalSilence() / float64(r.Count)
}

// AnalyzeSilence runs a silencedetect diagnostic pass over inputPath using
// the configured threshold and minimum duration. The engine decodes to the
// null muxer, so no output file is ever written; the detector's findings
// arrive on stderr and are parsed out of the captured output.
//
// The input path goes straight to the engine without an existence check:
// whatever the engine has to say about it lands in the diagnostics.
func (e *Engine) AnalyzeSilence(inputPath string, cfg *FilterChainConfig) (*SilenceReport, error) {
	detect := fmt.Sprintf("silencedetect=noise=%s:d=%s", cfg.SilenceThreshold, cfg.SilenceDuration)
	out, err := e.Run("-i", inputPath, "-af", detect, "-f", "null", "-")
	if err != nil {
		return nil, err
	}

	report := parseSilenceOutput(string(out))
	report.InputPath = inputPath
	report.Threshold = cfg.SilenceThreshold
	report.MinLength = cfg.SilenceDuration
	return report, nil
}

// silencedetect diagnostics look like:
//
//	[silencedetect @ 0x55d8a3e0] silence_start: 12.462
//	[silencedetect @ 0x55d8a3e0] silence_end: 13.286 | silence_duration: 0.824
var (
	silenceStartRe = regexp.MustCompile(`silence_start:\s*(-?[0-9.]+)`)
	silenceEndRe   = regexp.MustCompile(`silence_end:\s*(-?[0-9.]+)\s*\|\s*silence_duration:\s*([0-9.]+)`)
)

// parseSilenceOutput extracts the detector's findings from engine output.
// Only lines carrying both the detector tag and a silence_ key are kept,
// which skips the banner, stream info, and unrelated filter chatter.
func parseSilenceOutput(out string) *SilenceReport {
	report := &SilenceReport{}
	openIdx := -1 // index of a started period awaiting its end

	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "silencedetect") || !strings.Contains(line, "silence_") {
			continue
		}
		report.Lines = append(report.Lines, strings.TrimSpace(line))

		if m := silenceStartRe.FindStringSubmatch(line); m != nil {
			start, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			report.Events = append(report.Events, SilenceEvent{Start: start, End: -1, Duration: -1})
			openIdx = len(report.Events) - 1
			continue
		}

		if m := silenceEndRe.FindStringSubmatch(line); m != nil {
			end, errEnd := strconv.ParseFloat(m[1], 64)
			dur, errDur := strconv.ParseFloat(m[2], 64)
			if errEnd != nil || errDur != nil {
				continue
			}
			report.Count++
			if openIdx >= 0 {
				ev := &report.Events[openIdx]
				ev.End = end
				ev.Duration = dur
				openIdx = -1
			} else {
				// End without a matching start; reconstruct the period.
				report.Events = append(report.Events, SilenceEvent{Start: end - dur, End: end, Duration: dur})
			}
		}
	}

	return report
}
