// Package processor handles audio analysis and processing
package processor

import (
	"fmt"
	"strings"
)

// FilterID identifies a filter in the processing chain
type FilterID string

// Filter identifiers for the audio processing chain
const (
	FilterNoiseReduction FilterID = "noise_reduction" // afftdn spectral denoiser
	FilterSilenceRemove  FilterID = "silence_remove"  // silenceremove pause trimming
	FilterEqualizer      FilterID = "equalizer"       // highpass/lowpass/equalizer voice EQ
	FilterCompressor     FilterID = "compressor"      // acompressor dynamics levelling
	FilterLoudnorm       FilterID = "loudnorm"        // EBU R128 loudness normalisation
)

// ChainOrder defines the filter chain for voice processing.
// Order rationale:
// - NoiseReduction first: a lower noise floor keeps silenceremove's peak detection honest
// - SilenceRemove: trims pauses before EQ and compression so they never shape dead air
// - Equalizer: frequency shaping on the trimmed signal, stages applied in listed order
// - Compressor: evens dynamics after EQ (which alters levels)
// - Loudnorm: sets the final programme loudness - MUST be last
var ChainOrder = []FilterID{
	FilterNoiseReduction,
	FilterSilenceRemove,
	FilterEqualizer,
	FilterCompressor,
	FilterLoudnorm,
}

// Mains hum notch parameters
const (
	// humHarmonics is the number of notches applied: the fundamental plus
	// three harmonics (e.g. 50, 100, 150, 200 Hz).
	humHarmonics = 4

	// humNotchQ is the notch Q factor. Higher = narrower notch, less impact
	// on voice content near the hum frequencies.
	humNotchQ = 30
)

// filterBuilderFunc is a function that builds a filter spec from config.
// Returns the FFmpeg filter specification string, or empty string if disabled.
type filterBuilderFunc func(*FilterChainConfig) string

// filterBuilders maps FilterID to its builder function.
// This registry centralises filter spec generation and avoids per-call map allocation.
var filterBuilders = map[FilterID]filterBuilderFunc{
	FilterNoiseReduction: (*FilterChainConfig).buildNoiseReductionFilter,
	FilterSilenceRemove:  (*FilterChainConfig).buildSilenceRemoveFilter,
	FilterEqualizer:      (*FilterChainConfig).buildEqualizerFilter,
	FilterCompressor:     (*FilterChainConfig).buildCompressorFilter,
	FilterLoudnorm:       (*FilterChainConfig).buildLoudnormFilter,
}

// FilterChainConfig holds configuration for the audio processing filter chain.
// Built once per run via DefaultFilterConfig, overridden from the CLI, then
// treated as immutable.
type FilterChainConfig struct {
	// Noise reduction (afftdn) - FFT denoiser, first stage in the chain
	NoiseReductionEnabled bool
	NoiseReduction        string // Complete filter descriptor

	// Silence removal (silenceremove) - trims the leading pause and every
	// interior pause longer than the configured duration.
	// Threshold and duration pass through to the engine verbatim, so CLI
	// overrides land in the chain exactly as typed.
	SilenceRemoveEnabled bool
	SilenceThreshold     string // Peak level treated as silence (e.g. "-35dB")
	SilenceDuration      string // Seconds a pause must last before removal
	MaxSilenceDuration   string // Seconds of pause to retain; no chain stage consumes this yet

	// Equalizer - EQ stage descriptors joined in listed order
	EqualizerEnabled bool
	EQStages         []string

	// Compressor (acompressor) - dynamics levelling after EQ
	CompressorEnabled bool
	Compressor        string // Complete filter descriptor

	// Loudnorm - EBU R128 loudness normalisation
	LoudnormEnabled  bool
	TargetLoudness   string  // LUFS integrated target, passed verbatim (e.g. "-16")
	LoudnormTruePeak float64 // dBTP, true peak ceiling
	LoudnormRange    float64 // LU, loudness range

	// Output encoding - fixed MP3 voice preset
	OutputSampleRate int    // Hz (default: 44100)
	OutputChannels   int    // Channel count (default: 1)
	OutputCodec      string // Encoder name (default: libmp3lame)
	OutputBitrate    string // Encoder bitrate (default: 96k)

	// Filter chain order - use ChainOrder or customise for experimentation
	FilterOrder []FilterID
}

// DefaultFilterConfig returns the default filter configuration for spoken
// word voice recordings.
func DefaultFilterConfig() *FilterChainConfig {
	return &FilterChainConfig{
		// Noise reduction - FFT denoiser with a -25dB noise floor
		NoiseReductionEnabled: true,
		NoiseReduction:        "afftdn=nf=-25",

		// Silence removal - peak detection against the calibrated threshold
		SilenceRemoveEnabled: true,
		SilenceThreshold:     "-35dB", // Quiet room with a dynamic mic sits below this
		SilenceDuration:      "0.4",   // Short enough to catch breath pauses
		MaxSilenceDuration:   "0.5",   // Recorded for compatibility; unused by any stage

		// Equalizer - voice-focused shaping
		EqualizerEnabled: true,
		EQStages: []string{
			"highpass=f=100",               // Remove rumble and handling noise
			"lowpass=f=10000",              // Remove hiss above the voice band
			"equalizer=f=150:t=q:w=1:g=-3", // Reduce boominess
			"equalizer=f=200:t=q:w=1:g=-2", // Reduce muddiness
			"equalizer=f=3000:t=q:w=2:g=3", // Presence boost for clarity
		},

		// Compressor - gentle 4:1 levelling for speech
		CompressorEnabled: true,
		Compressor:        "acompressor=threshold=-20dB:ratio=4:attack=5:release=50",

		// Loudnorm - podcast loudness target
		LoudnormEnabled:  true,
		TargetLoudness:   "-16", // LUFS podcast standard
		LoudnormTruePeak: -1.5,  // dBTP ceiling
		LoudnormRange:    11.0,  // LU (EBU R128 default)

		// Output - mono MP3 at 96k, plenty for speech
		OutputSampleRate: 44100,
		OutputChannels:   1,
		OutputCodec:      "libmp3lame",
		OutputBitrate:    "96k",

		// Filter chain order - use default order
		FilterOrder: ChainOrder,
	}
}

// HumNotchStages returns bandreject stage descriptors targeting mains hum at
// the given fundamental frequency (50 or 60 Hz) and its harmonics. Callers
// prepend these to EQStages so the standard voice EQ still applies after the
// notches.
func HumNotchStages(fundamental int) []string {
	stages := make([]string, 0, humHarmonics)
	for n := 1; n <= humHarmonics; n++ {
		stages = append(stages,
			fmt.Sprintf("bandreject=f=%d:width_type=q:w=%d", fundamental*n, humNotchQ))
	}
	return stages
}

// buildNoiseReductionFilter returns the afftdn noise reduction stage.
func (cfg *FilterChainConfig) buildNoiseReductionFilter() string {
	if !cfg.NoiseReductionEnabled {
		return ""
	}
	return cfg.NoiseReduction
}

// buildSilenceRemoveFilter builds the silenceremove filter specification.
//
// start_periods=1 trims the leading pause; stop_periods=-1 keeps trimming
// every interior pause for the rest of the recording. Peak detection matches
// the level the threshold was calibrated against.
func (cfg *FilterChainConfig) buildSilenceRemoveFilter() string {
	if !cfg.SilenceRemoveEnabled {
		return ""
	}
	return fmt.Sprintf(
		"silenceremove=start_periods=1:start_silence=%s:start_threshold=%s:"+
			"stop_periods=-1:stop_silence=%s:stop_threshold=%s:detection=peak",
		cfg.SilenceDuration, cfg.SilenceThreshold,
		cfg.SilenceDuration, cfg.SilenceThreshold,
	)
}

// buildEqualizerFilter joins the configured EQ stages in listed order.
func (cfg *FilterChainConfig) buildEqualizerFilter() string {
	if !cfg.EqualizerEnabled || len(cfg.EQStages) == 0 {
		return ""
	}
	return strings.Join(cfg.EQStages, ",")
}

// buildCompressorFilter returns the acompressor dynamics stage.
func (cfg *FilterChainConfig) buildCompressorFilter() string {
	if !cfg.CompressorEnabled {
		return ""
	}
	return cfg.Compressor
}

// buildLoudnormFilter builds the loudnorm stage specification.
// The integrated target is interpolated verbatim; true peak and range come
// from the tuned defaults.
func (cfg *FilterChainConfig) buildLoudnormFilter() string {
	if !cfg.LoudnormEnabled {
		return ""
	}
	return fmt.Sprintf("loudnorm=I=%s:TP=%.1f:LRA=%.0f",
		cfg.TargetLoudness, cfg.LoudnormTruePeak, cfg.LoudnormRange)
}

// BuildFilterSpec builds the FFmpeg filter specification string for processing.
// Filter order is determined by cfg.FilterOrder (or ChainOrder if empty).
// Each filter checks its Enabled flag and returns empty string if disabled.
// The same config always produces the same string.
func (cfg *FilterChainConfig) BuildFilterSpec() string {
	order := cfg.FilterOrder
	if len(order) == 0 {
		order = ChainOrder
	}

	var filters []string
	for _, id := range order {
		if builder, ok := filterBuilders[id]; ok {
			if spec := builder(cfg); spec != "" {
				filters = append(filters, spec)
			}
		}
	}

	return strings.Join(filters, ",")
}
