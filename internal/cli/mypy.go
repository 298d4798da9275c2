package cli

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/push-hooks/internal/hooks"
)

// NewMypyCommand creates the command that type checks Python packages.
func NewMypyCommand(deps *hooks.Dependencies) *cobra.Command {
	var (
		modules []string
		verbose bool
	)

	cmd := checkCommand(&cobra.Command{
		Use:   "mypy",
		Short: "Type check the given Python packages with mypy",
		Example: `  check-mypy -m hooks
  check-mypy -m pkg_a,pkg_b -v
  check-mypy -m "pkg_a pkg_b"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, cfg := prepare(deps)

			selected := cfg.Mypy.Modules
			if cmd.Flags().Changed("modules") {
				selected = modules
			}

			opts := hooks.TypeCheckOptions{
				Modules: hooks.NormalizeModules(selected),
				Verbose: verbose || cfg.Verbose,
			}
			return statusError(hooks.RunTypeCheckHook(cmd.Context(), opts, cfg.TimeoutSeconds, d))
		},
	})

	cmd.Flags().StringSliceVarP(&modules, "modules", "m", nil, "Packages to run through mypy (repeatable, comma or space separated)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Set to make verbose")

	return cmd
}
