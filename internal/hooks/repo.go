package hooks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// RepoLocator finds the top-level directory of the enclosing git working tree.
type RepoLocator struct {
	runner *ProcessRunner
	deps   *Dependencies
}

// NewRepoLocator creates a locator that shells out through runner.
func NewRepoLocator(runner *ProcessRunner, deps *Dependencies) *RepoLocator {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	if runner == nil {
		runner = NewProcessRunner(0, deps)
	}
	return &RepoLocator{runner: runner, deps: deps}
}

// Locate returns the working tree root for the current directory, searching
// parent directories. git itself answers when installed; otherwise the
// repository is discovered on disk.
func (rl *RepoLocator) Locate(ctx context.Context) (string, error) {
	cwd, err := rl.deps.FS.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEnvironment, err)
	}

	if _, lookErr := rl.deps.Runner.LookPath("git"); lookErr != nil {
		rl.deps.Logger.Debug().Err(lookErr).Msg("git not on PATH, discovering repository on disk")
		return discoverRepoRoot(cwd)
	}

	res, err := rl.runner.Output(ctx, &Command{
		Name:       "git",
		Args:       []string{"rev-parse", "--show-toplevel"},
		WorkingDir: cwd,
	})
	if err != nil {
		return "", fmt.Errorf("%w: no git repository at %s: %w", ErrEnvironment, cwd, err)
	}

	return parseTopLevel(res.Output)
}

// parseTopLevel takes the last non-empty line of rev-parse output, which
// must be an absolute path.
func parseTopLevel(output string) (string, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	root := strings.TrimSpace(lines[len(lines)-1])
	if root == "" {
		return "", fmt.Errorf("%w: git reported an empty top-level directory", ErrEnvironment)
	}
	if !filepath.IsAbs(root) {
		return "", fmt.Errorf("%w: git reported %q as the top-level directory", ErrEnvironment, root)
	}
	return filepath.Clean(root), nil
}

// discoverRepoRoot opens the repository containing dir with go-git.
func discoverRepoRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("%w: open repository from %s: %w", ErrEnvironment, dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: repository at %s has no working tree: %w", ErrEnvironment, dir, err)
	}
	return wt.Filesystem.Root(), nil
}
