package processor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors for the two failures that abort a run before the engine
// does any real work. Both are matched with errors.Is at the CLI boundary.
var (
	// ErrEngineNotAvailable means ffmpeg could not be resolved or executed.
	// Nothing else happens after this: no file is touched.
	ErrEngineNotAvailable = errors.New("ffmpeg not available")

	// ErrInputNotFound means the input path failed its existence check.
	// The engine is never invoked for a missing input.
	ErrInputNotFound = errors.New("input file not found")
)

// InvocationError reports an engine child process that exited non-zero.
// Output carries the engine's captured diagnostics verbatim so the actual
// cause reaches the user unaltered.
type InvocationError struct {
	ExitCode int    // Child exit code, -1 if the process never ran
	Output   string // Captured diagnostics, empty when they were streamed
	Err      error  // Underlying exec error
}

func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("ffmpeg failed with exit code %d", e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *InvocationError) Unwrap() error { return e.Err }

// newInvocationError wraps an exec failure, pulling the exit code out of the
// exec.ExitError when there is one.
func newInvocationError(err error, output []byte) *InvocationError {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &InvocationError{ExitCode: code, Output: string(output), Err: err}
}
