// Package hooks implements the checks run by the git pre-push hooks.
package hooks

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Veraticus/push-hooks/internal/shared"
)

// RunRustHook is the main entry point for the Rust pre-push check.
func RunRustHook(ctx context.Context, opts RustOptions, timeoutSecs int, deps *Dependencies) StatusCode {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	runner := NewProcessRunner(timeoutSecs, deps)

	var dir string
	if filepath.IsAbs(opts.Dir) {
		dir = filepath.Clean(opts.Dir)
	} else {
		repoRoot, err := NewRepoLocator(runner, deps).Locate(ctx)
		if err != nil {
			reportEnvironmentError(deps, err)
			return StatusFailure
		}
		dir = ResolveDir(repoRoot, opts.Dir)
	}

	deps.Logger.Debug().Str("dir", dir).Msg("rust check target")
	return NewRustCheck(runner, deps).Execute(ctx, dir, opts)
}

// RunTypeCheckHook is the main entry point for the mypy pre-push check.
func RunTypeCheckHook(ctx context.Context, opts TypeCheckOptions, timeoutSecs int, deps *Dependencies) StatusCode {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	runner := NewProcessRunner(timeoutSecs, deps)
	check := NewTypeCheck(runner, deps)

	// Nothing requested; the repository is not needed
	if len(opts.Modules) == 0 {
		return check.Execute(ctx, "", opts)
	}

	repoRoot, err := NewRepoLocator(runner, deps).Locate(ctx)
	if err != nil {
		reportEnvironmentError(deps, err)
		return StatusFailure
	}
	return check.Execute(ctx, repoRoot, opts)
}

func reportEnvironmentError(deps *Dependencies, err error) {
	deps.Logger.Error().Err(err).Msg("cannot locate repository")
	_, _ = fmt.Fprintln(deps.Stdout, shared.RawErrorStyle.Render(fmt.Sprintf("Failure! %v", err)))
}
