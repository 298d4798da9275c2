package hooks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Veraticus/push-hooks/internal/shared"
)

const (
	// CargoManifest marks a directory as a Rust project.
	CargoManifest = "Cargo.toml"

	// DefaultBootstrapURL points at a script that installs rustup and cargo.
	DefaultBootstrapURL = "https://raw.githubusercontent.com/MatthewRizzo/mattrizzo_devops/main/bootstrap.sh"

	rustProgressLine = "Running Rust linters..................................................."
)

// RustOptions configures a single Rust check.
type RustOptions struct {
	// Dir is the directory holding Cargo.toml. Relative paths are resolved
	// against the repository root; empty means the root itself.
	Dir          string
	Verbose      bool
	FmtCheck     bool
	ClippyArgs   []string
	BootstrapURL string
}

// cargoManifest is the subset of Cargo.toml reported in verbose output.
type cargoManifest struct {
	Package *struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Workspace *struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
}

// RustCheck runs cargo fmt and cargo clippy against a crate.
type RustCheck struct {
	runner *ProcessRunner
	deps   *Dependencies
}

// NewRustCheck creates a Rust check.
func NewRustCheck(runner *ProcessRunner, deps *Dependencies) *RustCheck {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	if runner == nil {
		runner = NewProcessRunner(0, deps)
	}
	return &RustCheck{runner: runner, deps: deps}
}

// ResolveDir returns the directory the check runs in.
func ResolveDir(repoRoot, dir string) string {
	switch {
	case dir == "":
		return repoRoot
	case filepath.IsAbs(dir):
		return filepath.Clean(dir)
	default:
		return filepath.Join(repoRoot, dir)
	}
}

// ToolchainInstalled reports whether cargo is on PATH and runs cleanly.
func (rc *RustCheck) ToolchainInstalled(ctx context.Context, verbose bool) bool {
	if _, err := rc.deps.Runner.LookPath("cargo"); err != nil {
		if verbose {
			_, _ = fmt.Fprintf(rc.deps.Stdout, "Running cargo failed with:\n%v\n", err)
		}
		return false
	}

	_, err := rc.runner.Run(ctx, &Command{Name: "cargo", Args: []string{"--version"}})
	if err != nil {
		if verbose {
			_, _ = fmt.Fprintf(rc.deps.Stdout, "Running cargo failed with:\n%v\n", err)
		}
		return false
	}
	return true
}

// Execute runs the Rust check in dir, which must already be resolved.
func (rc *RustCheck) Execute(ctx context.Context, dir string, opts RustOptions) StatusCode {
	manifestPath := filepath.Join(dir, CargoManifest)
	if _, err := rc.deps.FS.Stat(manifestPath); err != nil {
		if opts.Verbose {
			_, _ = fmt.Fprintln(rc.deps.Stdout, shared.InfoStyle.Render("Rust - Skipped! No Cargo.toml file here."))
		}
		return StatusSuccess
	}
	rc.describeManifest(manifestPath)

	if !rc.ToolchainInstalled(ctx, opts.Verbose) {
		for _, line := range remediationLines(opts.BootstrapURL) {
			_, _ = fmt.Fprintln(rc.deps.Stdout, shared.ErrorStyle.Render(line))
		}
		return StatusFailure
	}

	if opts.Verbose {
		_, _ = fmt.Fprint(rc.deps.Stdout, rustProgressLine)
	}

	fmtArgs := []string{"fmt"}
	if opts.FmtCheck {
		fmtArgs = append(fmtArgs, "--check")
	}
	if _, err := rc.runner.Run(ctx, &Command{Name: "cargo", Args: fmtArgs, WorkingDir: dir}); err != nil {
		rc.reportFailure(err)
		return StatusFailure
	}

	clippyArgs := append([]string{"clippy"}, opts.ClippyArgs...)
	if _, err := rc.runner.Run(ctx, &Command{Name: "cargo", Args: clippyArgs, WorkingDir: dir}); err != nil {
		rc.reportFailure(err)
		return StatusFailure
	}

	if opts.Verbose {
		_, _ = fmt.Fprintln(rc.deps.Stdout, shared.RawSuccessStyle.Render("Success!"))
	}
	return StatusSuccess
}

// reportFailure prints the verdict and whatever the tool said.
func (rc *RustCheck) reportFailure(err error) {
	_, _ = fmt.Fprintln(rc.deps.Stdout, shared.RawErrorStyle.Render("Failure!"))

	var subErr *SubprocessError
	if errors.As(err, &subErr) {
		if subErr.Output != "" {
			_, _ = fmt.Fprintln(rc.deps.Stdout, subErr.Output)
			return
		}
	}
	_, _ = fmt.Fprintln(rc.deps.Stdout, err.Error())
}

// describeManifest logs what kind of crate is about to be checked.
func (rc *RustCheck) describeManifest(path string) {
	data, err := rc.deps.FS.ReadFile(path)
	if err != nil {
		rc.deps.Logger.Warn().Err(err).Msg("cannot read manifest")
		return
	}

	var manifest cargoManifest
	if _, err := toml.Decode(string(data), &manifest); err != nil {
		// cargo will report this properly
		rc.deps.Logger.Warn().Err(err).Str("manifest", path).Msg("cannot decode manifest")
		return
	}

	switch {
	case manifest.Package != nil:
		rc.deps.Logger.Info().
			Str("crate", manifest.Package.Name).
			Str("version", manifest.Package.Version).
			Msg("checking crate")
	case manifest.Workspace != nil:
		rc.deps.Logger.Info().
			Strs("members", manifest.Workspace.Members).
			Msg("checking workspace")
	}
}

// remediationLines are styled one at a time; lipgloss pads a multi-line
// block to its widest line.
func remediationLines(url string) []string {
	if url == "" {
		url = DefaultBootstrapURL
	}
	return []string{
		"Rustup and cargo must be installed to run this hook.",
		"Please run:",
		fmt.Sprintf("curl -SL %s | sudo bash", url),
	}
}
