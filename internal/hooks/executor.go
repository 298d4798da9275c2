package hooks

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// Command describes one external tool invocation.
type Command struct {
	Name       string
	Args       []string
	WorkingDir string
}

// String returns the command line as it would be typed.
func (c *Command) String() string {
	if c == nil {
		return ""
	}
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// ExecutionResult represents the result of executing a command.
type ExecutionResult struct {
	Command  *Command
	ExitCode int
	Output   string
	Duration time.Duration
}

// ProcessRunner runs external commands one at a time.
type ProcessRunner struct {
	timeout time.Duration
	deps    *Dependencies
}

// NewProcessRunner creates a process runner. A zero timeout waits for the
// command indefinitely.
func NewProcessRunner(timeoutSecs int, deps *Dependencies) *ProcessRunner {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	return &ProcessRunner{
		timeout: time.Duration(timeoutSecs) * time.Second,
		deps:    deps,
	}
}

// Run executes cmd and blocks until it exits. Any exit other than zero is
// returned as a *SubprocessError carrying the merged output; the result is
// populated in both cases.
func (pr *ProcessRunner) Run(ctx context.Context, cmd *Command) (*ExecutionResult, error) {
	return pr.execute(ctx, cmd, pr.deps.Runner.RunContext)
}

// Output is like Run but the result holds stdout only. Stderr is still
// included in the *SubprocessError output when the command fails.
func (pr *ProcessRunner) Output(ctx context.Context, cmd *Command) (*ExecutionResult, error) {
	return pr.execute(ctx, cmd, pr.deps.Runner.OutputContext)
}

type runFunc func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

func (pr *ProcessRunner) execute(ctx context.Context, cmd *Command, run runFunc) (*ExecutionResult, error) {
	if pr.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pr.timeout)
		defer cancel()
	}

	log := pr.deps.Logger.With().Str("cmd", cmd.String()).Str("dir", cmd.WorkingDir).Logger()
	log.Debug().Msg("running command")

	start := time.Now()
	output, err := run(ctx, cmd.WorkingDir, cmd.Name, cmd.Args...)
	result := &ExecutionResult{
		Command:  cmd,
		Output:   string(output),
		Duration: time.Since(start),
	}

	if err == nil {
		log.Debug().Dur("took", result.Duration).Msg("command succeeded")
		return result, nil
	}

	subErr := &SubprocessError{
		Command: cmd,
		Output:  result.Output,
		Err:     err,
	}

	// Check if context timed out
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		subErr.TimedOut = true
		subErr.ExitCode = -1
	} else {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			subErr.ExitCode = exitErr.ExitCode()
			if len(exitErr.Stderr) > 0 {
				subErr.Output += string(exitErr.Stderr)
			}
		} else {
			// Binary missing or not startable
			subErr.ExitCode = -1
		}
	}
	result.ExitCode = subErr.ExitCode

	log.Debug().Int("exit_code", subErr.ExitCode).Dur("took", result.Duration).Msg("command failed")
	return result, subErr
}
