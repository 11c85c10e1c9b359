package processor

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ProcessOptions controls how a processing run is presented. Nothing here
// changes what the engine does to the audio.
type ProcessOptions struct {
	// Verbose streams engine diagnostics straight to the terminal instead
	// of capturing them.
	Verbose bool

	// Progress, when non-nil, enables the engine's machine-readable
	// progress stream and receives the reported output timestamp as
	// encoding advances. Ignored in verbose mode.
	Progress func(outTime time.Duration)
}

// ProcessingResult contains the results of a completed processing run.
// Sizes are read back from the filesystem after the engine has exited.
type ProcessingResult struct {
	InputPath  string
	OutputPath string
	FilterSpec string        // Chain the engine executed
	InputSize  int64         // Bytes
	OutputSize int64         // Bytes
	Elapsed    time.Duration // Engine wall time
}

// ReductionPercent reports how much smaller the output file is than the
// input, as a percentage of the input size.
func (r *ProcessingResult) ReductionPercent() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.InputSize-r.OutputSize) / float64(r.InputSize) * 100
}

// ProcessAudio cleans inputPath through the configured filter chain and
// encodes the result to outputPath.
//
// The run moves through fixed stages: input existence check, chain build,
// then a single blocking engine invocation. There is no timeout and no
// cancellation once the child has been spawned.
func (e *Engine) ProcessAudio(inputPath, outputPath string, cfg *FilterChainConfig, opts ProcessOptions) (*ProcessingResult, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	chain := cfg.BuildFilterSpec()

	start := time.Now()
	if err := e.runProcess(processArgs(inputPath, outputPath, chain, cfg, opts), opts); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	inputInfo, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("stat input after processing: %w", err)
	}
	outputInfo, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("stat output after processing: %w", err)
	}

	return &ProcessingResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
		FilterSpec: chain,
		InputSize:  inputInfo.Size(),
		OutputSize: outputInfo.Size(),
		Elapsed:    elapsed,
	}, nil
}

// processArgs assembles the engine argument list for a processing run.
func processArgs(inputPath, outputPath, chain string, cfg *FilterChainConfig, opts ProcessOptions) []string {
	var args []string
	if !opts.Verbose {
		// Quiet run: diagnostics are captured and surface only on failure.
		args = append(args, "-loglevel", "error")
		if opts.Progress != nil {
			args = append(args, "-progress", "pipe:1", "-nostats")
		}
	}
	return append(args,
		"-i", inputPath,
		"-af", chain,
		"-ar", strconv.Itoa(cfg.OutputSampleRate),
		"-ac", strconv.Itoa(cfg.OutputChannels),
		"-c:a", cfg.OutputCodec,
		"-b:a", cfg.OutputBitrate,
		"-y", outputPath,
	)
}

// runProcess starts the engine and blocks until the child exits.
func (e *Engine) runProcess(args []string, opts ProcessOptions) error {
	cmd := e.Command(args...)

	if opts.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			// Diagnostics already reached the terminal.
			return newInvocationError(err, nil)
		}
		return nil
	}

	if opts.Progress == nil {
		out, err := cmd.CombinedOutput()
		if err != nil {
			return newInvocationError(err, out)
		}
		return nil
	}

	// Progress run: stdout carries the progress stream, stderr the
	// diagnostics.
	var diag bytes.Buffer
	cmd.Stderr = &diag
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("attach progress pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", engineBinary, err)
	}
	scanProgress(stdout, opts.Progress)
	if err := cmd.Wait(); err != nil {
		return newInvocationError(err, diag.Bytes())
	}
	return nil
}

// scanProgress reads the engine's key=value progress stream and reports each
// new output timestamp until the stream ends.
func scanProgress(r io.Reader, report func(time.Duration)) {
	last := time.Duration(-1)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		switch key {
		case "out_time_us", "out_time_ms":
			// Both keys carry microseconds; out_time_ms is a
			// historical misnomer in the engine.
			us, err := strconv.ParseInt(value, 10, 64)
			if err != nil || us < 0 {
				continue
			}
			if d := time.Duration(us) * time.Microsecond; d != last {
				last = d
				report(d)
			}
		case "progress":
			if value == "end" {
				return
			}
		}
	}
}

// DefaultOutputPath derives the output filename from the input filename.
// Example: /path/to/talk.mp3 → /path/to/talk_processed.mp3
func DefaultOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	filename := filepath.Base(inputPath)
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	return filepath.Join(dir, stem+"_processed"+ext)
}
