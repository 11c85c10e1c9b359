package logging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/linuxmatters/sweettalking/internal/audio"
	"github.com/linuxmatters/sweettalking/internal/processor"
)

// RecordingTip represents a single piece of actionable recording advice
// derived from silence analysis.
type RecordingTip struct {
	Priority int    // Higher = more important (1-10)
	Message  string // Human-readable advice (1-2 sentences)
	RuleID   string // Identifier for testing/logging (e.g., "long_pauses")
}

// MaxRecordingTips is the maximum number of tips to return.
const MaxRecordingTips = 5

// GenerateSilenceTips inspects a silence report and returns prioritised
// delivery and setup suggestions. meta may be nil when the prober was
// unavailable; rules that need the recording length then stay quiet.
func GenerateSilenceTips(report *processor.SilenceReport, meta *audio.Metadata) []RecordingTip {
	if report == nil {
		return nil
	}

	var duration float64
	if meta != nil {
		duration = meta.Duration
	}

	var tips []RecordingTip
	firedRules := make(map[string]bool)

	rules := []func(*processor.SilenceReport, float64) *RecordingTip{
		tipMostlySilence,
		tipNoPauses,
		tipLongPauses,
		tipChoppyDelivery,
		tipTrailingSilence,
	}

	for _, rule := range rules {
		if tip := rule(report, duration); tip != nil {
			tips = append(tips, *tip)
			firedRules[tip.RuleID] = true
		}
	}

	tips = applyExclusions(tips, firedRules)

	// Sort by priority (descending)
	sort.Slice(tips, func(i, j int) bool {
		return tips[i].Priority > tips[j].Priority
	})

	if len(tips) > MaxRecordingTips {
		tips = tips[:MaxRecordingTips]
	}

	return tips
}

// applyExclusions removes tips that are redundant when a more specific tip
// has already fired. For example, "long_pauses" is suppressed when
// "mostly_silence" fires because the latter already implies the former.
func applyExclusions(tips []RecordingTip, fired map[string]bool) []RecordingTip {
	var result []RecordingTip
	for _, tip := range tips {
		switch tip.RuleID {
		case "long_pauses", "trailing_silence":
			if fired["mostly_silence"] {
				continue
			}
		}
		result = append(result, tip)
	}
	return result
}

// wrapText wraps text at word boundaries to fit within maxWidth columns.
// Continuation lines are prefixed with indent.
func wrapText(text string, maxWidth int, indent string) string {
	words := strings.Fields(text)
	var lines []string
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= maxWidth {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+indent)
}

// tipMostlySilence fires when over half of a measured recording is silence,
// which usually means the recorder ran unattended or the gain was far too
// low for the detector to see speech.
func tipMostlySilence(r *processor.SilenceReport, duration float64) *RecordingTip {
	if duration <= 0 {
		return nil
	}
	ratio := r.TotalSilence() / duration
	if ratio <= 0.5 {
		return nil
	}
	return &RecordingTip{
		Priority: 9,
		RuleID:   "mostly_silence",
		Message:  fmt.Sprintf("About %.0f%% of this recording is silence. Check that the take actually starts where you expect, or that your microphone gain is high enough for speech to register.", ratio*100),
	}
}

// tipNoPauses fires when a recording of at least a minute shows no
// detectable pauses at all. Either the speaker never breathes or the
// detection threshold sits above the room's noise floor.
func tipNoPauses(r *processor.SilenceReport, duration float64) *RecordingTip {
	if duration < 60 || r.Count > 0 {
		return nil
	}
	return &RecordingTip{
		Priority: 6,
		RuleID:   "no_pauses",
		Message:  fmt.Sprintf("No pauses longer than %ss were detected in the whole take. If you did pause, your background noise may be sitting above the %s detection threshold; try recording in a quieter spot.", r.MinLength, r.Threshold),
	}
}

// tipLongPauses fires when the longest gap exceeds 5 seconds. The trimmer
// will cut it, but gaps that long usually point at an interrupted take.
func tipLongPauses(r *processor.SilenceReport, _ float64) *RecordingTip {
	longest := r.LongestPause()
	if longest <= 5.0 {
		return nil
	}
	return &RecordingTip{
		Priority: 5,
		RuleID:   "long_pauses",
		Message:  fmt.Sprintf("Your longest pause runs %.1f seconds. Processing will trim it, but if something interrupted the take it may be worth reviewing that section before release.", longest),
	}
}

// tipChoppyDelivery fires when pauses arrive more than twelve times a
// minute and average under a second, which reads as hesitant delivery
// rather than natural phrasing.
func tipChoppyDelivery(r *processor.SilenceReport, duration float64) *RecordingTip {
	if duration < 60 || r.Count == 0 {
		return nil
	}
	perMinute := float64(r.Count) / (duration / 60)
	if perMinute <= 12 || r.MeanPause() >= 1.0 {
		return nil
	}
	return &RecordingTip{
		Priority: 4,
		RuleID:   "frequent_pauses",
		Message:  fmt.Sprintf("The detector found %.0f short pauses per minute. Frequent sub-second gaps can make delivery sound hesitant; a slower, steadier pace usually edits better.", perMinute),
	}
}

// tipTrailingSilence fires when the recording ends inside an open silence
// period, meaning the recorder kept running after the speaker finished.
func tipTrailingSilence(r *processor.SilenceReport, _ float64) *RecordingTip {
	if len(r.Events) == 0 {
		return nil
	}
	last := r.Events[len(r.Events)-1]
	if last.Duration >= 0 {
		return nil
	}
	return &RecordingTip{
		Priority: 3,
		RuleID:   "trailing_silence",
		Message:  fmt.Sprintf("The recording ends in silence that starts at %.1fs. Remember to stop the recorder when you finish speaking; the trimmer will remove the tail either way.", last.Start),
	}
}
