// Package audio reads recording metadata through the ffprobe companion tool.
package audio

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

const proberBinary = "ffprobe"

// Prober inspects media files with ffprobe. ffprobe usually ships alongside
// ffmpeg but is packaged separately on some distros, so callers treat a
// missing prober as a reason to skip metadata display, not to abort.
type Prober struct {
	path string
}

// NewProber locates ffprobe on PATH.
func NewProber() (*Prober, error) {
	path, err := exec.LookPath(proberBinary)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH", proberBinary)
	}
	return &Prober{path: path}, nil
}

// Metadata describes a media file's container and first audio stream.
type Metadata struct {
	Duration   float64 // seconds
	SampleRate int
	Channels   int
	Codec      string
	BitRate    int64 // bits per second
	Format     string
	Size       int64 // bytes
}

// probeOutput mirrors the parts of ffprobe's JSON document we read.
// ffprobe encodes most numeric fields as strings.
type probeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
		Size       string `json:"size"`
		BitRate    string `json:"bit_rate"`
	} `json:"format"`
}

// Probe reads the container and stream description of path.
func (p *Prober) Probe(path string) (*Metadata, error) {
	cmd := exec.Command(p.path,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("probing %s: %w", path, err)
	}
	return parseProbeOutput(out)
}

func parseProbeOutput(out []byte) (*Metadata, error) {
	var doc probeOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		return nil, fmt.Errorf("decoding probe output: %w", err)
	}

	meta := &Metadata{Format: doc.Format.FormatName}
	meta.Duration, _ = strconv.ParseFloat(doc.Format.Duration, 64)
	meta.Size, _ = strconv.ParseInt(doc.Format.Size, 10, 64)
	meta.BitRate, _ = strconv.ParseInt(doc.Format.BitRate, 10, 64)

	for _, s := range doc.Streams {
		if s.CodecType != "audio" {
			continue
		}
		meta.Codec = s.CodecName
		meta.Channels = s.Channels
		meta.SampleRate, _ = strconv.Atoi(s.SampleRate)
		break
	}
	return meta, nil
}
