package hooks

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestProcessRunnerRealCommands(t *testing.T) {
	requireShell(t)
	ctx := context.Background()
	runner := NewProcessRunner(0, nil)

	t.Run("success captures output", func(t *testing.T) {
		res, err := runner.Run(ctx, &Command{Name: "sh", Args: []string{"-c", "echo hello"}})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if res.ExitCode != 0 {
			t.Errorf("Expected exit code 0, got %d", res.ExitCode)
		}
		if strings.TrimSpace(res.Output) != "hello" {
			t.Errorf("Expected output 'hello', got %q", res.Output)
		}
	})

	t.Run("stdout and stderr are merged", func(t *testing.T) {
		res, err := runner.Run(ctx, &Command{Name: "sh", Args: []string{"-c", "echo out; echo err >&2"}})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !strings.Contains(res.Output, "out") || !strings.Contains(res.Output, "err") {
			t.Errorf("Expected both streams, got %q", res.Output)
		}
	})

	t.Run("non-zero exit is a subprocess error", func(t *testing.T) {
		res, err := runner.Run(ctx, &Command{Name: "sh", Args: []string{"-c", "echo broken; exit 3"}})
		var subErr *SubprocessError
		if !errors.As(err, &subErr) {
			t.Fatalf("Expected *SubprocessError, got %v", err)
		}
		if subErr.ExitCode != 3 || res.ExitCode != 3 {
			t.Errorf("Expected exit code 3, got %d / %d", subErr.ExitCode, res.ExitCode)
		}
		if !strings.Contains(subErr.Output, "broken") {
			t.Errorf("Expected captured output, got %q", subErr.Output)
		}
	})

	t.Run("working directory is honoured", func(t *testing.T) {
		dir := t.TempDir()
		res, err := runner.Run(ctx, &Command{Name: "sh", Args: []string{"-c", "pwd"}, WorkingDir: dir})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want, _ := filepath.EvalSymlinks(dir)
		got, _ := filepath.EvalSymlinks(strings.TrimSpace(res.Output))
		if got != want {
			t.Errorf("Expected to run in %s, got %q", dir, res.Output)
		}
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := runner.Run(ctx, &Command{Name: "push-hooks-no-such-binary"})
		var subErr *SubprocessError
		if !errors.As(err, &subErr) {
			t.Fatalf("Expected *SubprocessError, got %v", err)
		}
		if subErr.ExitCode != -1 {
			t.Errorf("Expected exit code -1, got %d", subErr.ExitCode)
		}
		if !errors.Is(err, exec.ErrNotFound) {
			t.Errorf("Expected exec.ErrNotFound in chain, got %v", err)
		}
	})
}

func TestProcessRunnerTimeout(t *testing.T) {
	requireShell(t)

	runner := NewProcessRunner(1, nil)
	_, err := runner.Run(context.Background(), &Command{Name: "sh", Args: []string{"-c", "exec sleep 5"}})

	var subErr *SubprocessError
	if !errors.As(err, &subErr) {
		t.Fatalf("Expected *SubprocessError, got %v", err)
	}
	if !subErr.TimedOut {
		t.Error("Expected the command to be reported as timed out")
	}
	if !strings.Contains(subErr.Error(), "timed out") {
		t.Errorf("Expected timeout in message, got %q", subErr.Error())
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  *Command
		want string
	}{
		{cmd: nil, want: ""},
		{cmd: &Command{Name: "cargo"}, want: "cargo"},
		{cmd: &Command{Name: "cargo", Args: []string{"clippy", "--", "-D", "warnings"}}, want: "cargo clippy -- -D warnings"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStatusCode(t *testing.T) {
	if StatusSuccess.Int() != 0 || StatusFailure.Int() != 1 {
		t.Fatalf("Unexpected exit codes %d / %d", StatusSuccess.Int(), StatusFailure.Int())
	}
	if StatusSuccess.String() != "success" || StatusFailure.String() != "failure" {
		t.Errorf("Unexpected names %q / %q", StatusSuccess, StatusFailure)
	}
}

func TestProcessRunnerOutput(t *testing.T) {
	requireShell(t)
	ctx := context.Background()
	runner := NewProcessRunner(0, nil)

	t.Run("stderr is left out", func(t *testing.T) {
		res, err := runner.Output(ctx, &Command{Name: "sh", Args: []string{"-c", "echo noise >&2; echo out"}})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if res.Output != "out\n" {
			t.Errorf("Expected stdout only, got %q", res.Output)
		}
	})

	t.Run("stderr is reported on failure", func(t *testing.T) {
		_, err := runner.Output(ctx, &Command{Name: "sh", Args: []string{"-c", "echo fatal >&2; exit 3"}})
		var subErr *SubprocessError
		if !errors.As(err, &subErr) {
			t.Fatalf("Expected *SubprocessError, got %v", err)
		}
		if subErr.ExitCode != 3 {
			t.Errorf("Expected exit code 3, got %d", subErr.ExitCode)
		}
		if !strings.Contains(subErr.Output, "fatal") {
			t.Errorf("Expected stderr in output, got %q", subErr.Output)
		}
	})
}
