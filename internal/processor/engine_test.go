package processor

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestParseEngineVersion(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			name: "distro build banner",
			out:  "ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg developers\nbuilt with gcc 13 (GCC)\n",
			want: "6.1.1",
		},
		{
			name: "git snapshot banner",
			out:  "ffmpeg version n7.0-git-2024 Copyright (c) 2000-2024 the FFmpeg developers\n",
			want: "n7.0-git-2024",
		},
		{
			name: "unexpected banner",
			out:  "something else entirely\n",
			want: "",
		},
		{
			name: "empty output",
			out:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseEngineVersion([]byte(tt.out)); got != tt.want {
				t.Errorf("parseEngineVersion(%q) = %q, want %q", tt.out, got, tt.want)
			}
		})
	}
}

func TestNewEngineMissing(t *testing.T) {
	// An empty-dir PATH guarantees the lookup fails regardless of what is
	// installed on the machine running the tests.
	t.Setenv("PATH", t.TempDir())

	engine, err := NewEngine()

	if engine != nil {
		t.Errorf("NewEngine() = %+v, want nil", engine)
	}
	if !errors.Is(err, ErrEngineNotAvailable) {
		t.Errorf("NewEngine() error = %v, want ErrEngineNotAvailable", err)
	}
}

func TestNewEngineFound(t *testing.T) {
	if _, err := exec.LookPath(engineBinary); err != nil {
		t.Skipf("engine not installed: %v", err)
	}

	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	if engine.Path() == "" {
		t.Error("Path() is empty")
	}
	if engine.Version() == "" {
		t.Error("Version() is empty")
	}
}

func TestInvocationError(t *testing.T) {
	t.Run("carries exit code and diagnostics", func(t *testing.T) {
		invErr := &InvocationError{
			ExitCode: 234,
			Output:   "talk.mp3: No such file or directory",
		}

		msg := invErr.Error()
		if !strings.Contains(msg, "exit code 234") {
			t.Errorf("Error() = %q, want exit code mentioned", msg)
		}
		if !strings.Contains(msg, "No such file or directory") {
			t.Errorf("Error() = %q, want diagnostics included verbatim", msg)
		}
	})

	t.Run("omits the diagnostics block when empty", func(t *testing.T) {
		invErr := &InvocationError{ExitCode: 1}

		if got := invErr.Error(); strings.Contains(got, "\n") {
			t.Errorf("Error() = %q, want single line", got)
		}
	})

	t.Run("unwraps the underlying error", func(t *testing.T) {
		base := errors.New("boom")
		invErr := newInvocationError(base, []byte("output"))

		if !errors.Is(invErr, base) {
			t.Error("errors.Is() cannot reach the wrapped error")
		}
		if invErr.ExitCode != -1 {
			t.Errorf("ExitCode = %d, want -1 for non-exit errors", invErr.ExitCode)
		}
	})

	t.Run("discriminable with errors.As", func(t *testing.T) {
		var target *InvocationError
		err := error(&InvocationError{ExitCode: 1})

		if !errors.As(err, &target) {
			t.Error("errors.As() failed to match")
		}
	})
}
