// Package cli builds the cobra commands behind the push-hooks executables.
//
// Git invokes pre-push hooks with the remote name and URL as positional
// arguments, and wrapper scripts may forward flags meant for other hooks, so
// every check command accepts and ignores arguments it does not know.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/push-hooks/internal/config"
	"github.com/Veraticus/push-hooks/internal/hooks"
	"github.com/Veraticus/push-hooks/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// errCheckFailed is returned by a check that ran and failed. Its output has
// already been printed.
var errCheckFailed = errors.New("check failed")

// loadConfig is replaced in tests.
var loadConfig = config.Load

// NewRootCommand creates the push-hooks command with every check as a
// subcommand.
func NewRootCommand(deps *hooks.Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "push-hooks",
		Short:         "Git pre-push checks for Rust and Python projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewRustCommand(deps))
	rootCmd.AddCommand(NewMypyCommand(deps))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "push-hooks %s\n", Version)
		},
	})

	return rootCmd
}

// Execute runs cmd and returns the process exit code, which is always
// hooks.StatusSuccess or hooks.StatusFailure.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return hooks.StatusSuccess.Int()
	}
	if !errors.Is(err, errCheckFailed) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return hooks.StatusFailure.Int()
}

// checkCommand applies the settings every check command shares.
func checkCommand(cmd *cobra.Command) *cobra.Command {
	cmd.Args = cobra.ArbitraryArgs
	cmd.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

// prepare loads configuration and returns dependencies with a diagnostics
// logger.
func prepare(base *hooks.Dependencies) (*hooks.Dependencies, *config.Config) {
	if base == nil {
		base = hooks.NewDefaultDependencies()
	}
	deps := *base

	cfg, err := loadConfig()
	if err != nil || cfg == nil {
		deps.Logger = logging.New(deps.Stderr, logging.DefaultOptions())
		if err != nil {
			deps.Logger.Warn().Err(err).Msg("ignoring configuration")
		}
		return &deps, &config.Config{}
	}

	deps.Logger = logging.New(deps.Stderr, logging.DefaultOptions())
	for _, src := range cfg.Sources {
		deps.Logger.Debug().Str("file", src).Msg("loaded configuration")
	}
	return &deps, cfg
}

func statusError(status hooks.StatusCode) error {
	if status == hooks.StatusSuccess {
		return nil
	}
	return errCheckFailed
}
