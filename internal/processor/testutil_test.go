package processor

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// TestAudioOptions describes the synthetic clip written by generateTestAudio.
type TestAudioOptions struct {
	DurationSecs float64
	ToneFreq     float64 // Hz, sine carrier
	ToneLevel    float64 // dBFS, negative
	SilenceStart float64 // seconds from clip start
	SilenceSecs  float64 // zero disables the gap
}

const testSampleRate = 44100

// generateTestAudio writes a mono 16-bit WAV tone with an optional silent
// gap and returns its path. The file lives under t.TempDir so it is removed
// when the test finishes.
func generateTestAudio(t *testing.T, opts TestAudioOptions) string {
	t.Helper()

	total := int(opts.DurationSecs * testSampleRate)
	samples := make([]int16, total)

	amp := math.Pow(10, opts.ToneLevel/20) * math.MaxInt16
	gapFrom := int(opts.SilenceStart * testSampleRate)
	gapTo := gapFrom + int(opts.SilenceSecs*testSampleRate)

	for i := range samples {
		if opts.SilenceSecs > 0 && i >= gapFrom && i < gapTo {
			continue // digital silence
		}
		phase := 2 * math.Pi * opts.ToneFreq * float64(i) / testSampleRate
		samples[i] = int16(amp * math.Sin(phase))
	}

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := writeWAV(path, samples); err != nil {
		t.Fatalf("writing test audio: %v", err)
	}
	return path
}

// writeWAV stores samples as a minimal mono 16-bit PCM RIFF file.
func writeWAV(path string, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dataSize := uint32(len(samples) * 2)
	header := struct {
		RIFF          [4]byte
		FileSize      uint32
		WAVE          [4]byte
		Fmt           [4]byte
		FmtSize       uint32
		Format        uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
		Data          [4]byte
		DataSize      uint32
	}{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		FileSize:      36 + dataSize,
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		Format:        1, // PCM
		Channels:      1,
		SampleRate:    testSampleRate,
		ByteRate:      testSampleRate * 2,
		BlockAlign:    2,
		BitsPerSample: 16,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}

	if err := binary.Write(f, binary.LittleEndian, header); err != nil {
		return err
	}
	return binary.Write(f, binary.LittleEndian, samples)
}
