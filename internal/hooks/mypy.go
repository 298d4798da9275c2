package hooks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Veraticus/push-hooks/internal/output"
	"github.com/Veraticus/push-hooks/internal/shared"
)

// TypeCheckOptions configures a mypy run.
type TypeCheckOptions struct {
	Modules []string
	Verbose bool
}

// TypeCheck runs mypy against Python packages.
type TypeCheck struct {
	runner *ProcessRunner
	deps   *Dependencies
}

// NewTypeCheck creates a type check.
func NewTypeCheck(runner *ProcessRunner, deps *Dependencies) *TypeCheck {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	if runner == nil {
		runner = NewProcessRunner(0, deps)
	}
	return &TypeCheck{runner: runner, deps: deps}
}

// NormalizeModules flattens module arguments, splitting on commas and
// whitespace and dropping empties while keeping declaration order.
func NormalizeModules(raw []string) []string {
	var modules []string
	for _, value := range raw {
		fields := strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		modules = append(modules, fields...)
	}
	return modules
}

// RunModule type checks a single package from repoRoot.
func (tc *TypeCheck) RunModule(ctx context.Context, module, repoRoot string, verbose bool) StatusCode {
	res, err := tc.runner.Run(ctx, &Command{
		Name:       "mypy",
		Args:       []string{"-p", module},
		WorkingDir: repoRoot,
	})
	if err != nil {
		_, _ = fmt.Fprintln(tc.deps.Stdout, shared.RawErrorStyle.Render("Mypy Failure!"))
		var subErr *SubprocessError
		if errors.As(err, &subErr) && subErr.Output != "" {
			_, _ = fmt.Fprintln(tc.deps.Stdout, subErr.Output)
		} else {
			_, _ = fmt.Fprintln(tc.deps.Stdout, err.Error())
		}
		return StatusFailure
	}

	_, _ = fmt.Fprint(tc.deps.Stdout, res.Output)
	if verbose {
		_, _ = fmt.Fprintln(tc.deps.Stdout, shared.SuccessStyle.Render(fmt.Sprintf("mypy passed for %s", module)))
	}
	return StatusSuccess
}

// Execute checks every module in order. All modules are checked even after a
// failure so that each one reports.
func (tc *TypeCheck) Execute(ctx context.Context, repoRoot string, opts TypeCheckOptions) StatusCode {
	if len(opts.Modules) == 0 {
		if opts.Verbose {
			_, _ = fmt.Fprintln(tc.deps.Stdout,
				shared.InfoStyle.Render("No modules given with '-m | --modules'. Skipping this check"))
		}
		return StatusSuccess
	}

	overall := StatusSuccess
	rows := make([]output.Row, 0, len(opts.Modules))
	for _, module := range opts.Modules {
		status := tc.RunModule(ctx, module, repoRoot, opts.Verbose)
		rows = append(rows, output.Row{Name: module, Status: status.String(), OK: status == StatusSuccess})
		if status != StatusSuccess {
			overall = StatusFailure
		}
	}

	if opts.Verbose {
		_, _ = fmt.Fprint(tc.deps.Stdout, output.NewListRenderer().RenderStatus("Type check results", rows))
	}
	return overall
}
