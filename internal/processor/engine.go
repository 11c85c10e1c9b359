package processor

import (
	"fmt"
	"os/exec"
	"strings"
)

// engineBinary is the external processing engine resolved from PATH.
const engineBinary = "ffmpeg"

// Engine invokes the external FFmpeg binary. The availability check runs
// once in NewEngine; every later invocation reuses the resolved path.
type Engine struct {
	path    string
	version string
}

// NewEngine resolves the engine binary from PATH and verifies it runs.
// It must succeed before any input file is touched; callers treat a failure
// as fatal for the whole run.
func NewEngine() (*Engine, error) {
	path, err := exec.LookPath(engineBinary)
	if err != nil {
		return nil, fmt.Errorf("%w: not found in PATH", ErrEngineNotAvailable)
	}
	// LookPath can resolve a binary that still fails to execute.
	out, err := exec.Command(path, "-version").Output()
	if err != nil {
		return nil, fmt.Errorf("%w: '%s -version' failed: %v", ErrEngineNotAvailable, engineBinary, err)
	}
	return &Engine{path: path, version: parseEngineVersion(out)}, nil
}

// Path returns the resolved engine binary path.
func (e *Engine) Path() string { return e.path }

// Version returns the engine version reported by -version, or "" when the
// banner was not in the expected form.
func (e *Engine) Version() string { return e.version }

// Command returns an exec.Cmd for the engine with the given arguments.
func (e *Engine) Command(args ...string) *exec.Cmd {
	return exec.Command(e.path, args...)
}

// Run executes the engine with the given arguments and blocks until the
// child exits, returning its combined output. A non-zero exit becomes an
// InvocationError carrying that output.
func (e *Engine) Run(args ...string) ([]byte, error) {
	out, err := e.Command(args...).CombinedOutput()
	if err != nil {
		return out, newInvocationError(err, out)
	}
	return out, nil
}

// parseEngineVersion extracts the version token from the -version banner,
// e.g. "ffmpeg version 6.1.1 Copyright ..." yields "6.1.1".
func parseEngineVersion(out []byte) string {
	line, _, _ := strings.Cut(string(out), "\n")
	fields := strings.Fields(line)
	if len(fields) >= 3 && fields[0] == engineBinary && fields[1] == "version" {
		return fields[2]
	}
	return ""
}
