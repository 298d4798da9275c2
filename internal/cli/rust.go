package cli

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/push-hooks/internal/hooks"
)

// NewRustCommand creates the command that runs cargo fmt and cargo clippy.
func NewRustCommand(deps *hooks.Dependencies) *cobra.Command {
	var (
		cwd     string
		verbose bool
	)

	cmd := checkCommand(&cobra.Command{
		Use:   "rust",
		Short: "Check formatting and lints of the Rust crate being pushed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, cfg := prepare(deps)

			opts := hooks.RustOptions{
				Dir:          cfg.Rust.Cwd,
				Verbose:      verbose || cfg.Verbose,
				FmtCheck:     cfg.Rust.FmtCheck,
				ClippyArgs:   cfg.Rust.ClippyArgs,
				BootstrapURL: cfg.Rust.BootstrapURL,
			}
			if cmd.Flags().Changed("cwd") {
				opts.Dir = cwd
			}

			return statusError(hooks.RunRustHook(cmd.Context(), opts, cfg.TimeoutSeconds, d))
		},
	})

	cmd.Flags().StringVarP(&cwd, "cwd", "d", "", "Path to dir with Cargo.toml, relative to the repository root")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Set to make verbose")

	return cmd
}
