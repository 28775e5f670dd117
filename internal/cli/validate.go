package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fitrank/internal/catalog"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool            `json:"valid"`
	Exercises int             `json:"exercises"`
	Issues    []catalog.Issue `json:"issues,omitempty"`
}

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Watch bool // re-validate whenever the catalog changes
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Check a catalog for records the filter would drop",
		Long: `Load a catalog and report data problems.

The filter silently drops records missing an id, name, primary muscle,
strength level or complexity level, and never admits a record with an
unknown level label. validate reports both as errors, and unknown
fatigue profiles as warnings.

With --watch the catalog is re-validated on every change until
interrupted; failures are reported but do not stop the watch.

Exit codes:
  0 - Catalog valid (warnings allowed)
  1 - One or more records have errors
  2 - Command error (catalog unreadable or malformed)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Watch {
				return runValidateWatch(cmd.Context(), opts, args[0], cmd)
			}
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "re-validate when the catalog changes")

	return cmd
}

func runValidateWatch(ctx context.Context, opts *ValidateOptions, catalogPath string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	validate := func() {
		if err := runValidate(opts.RootOptions, catalogPath, cmd); err != nil {
			formatter.VerboseLog("validate: %v", err)
		}
	}

	validate()
	formatter.Textf("Watching %s for changes...", catalogPath)
	if err := watchCatalog(ctx, catalogPath, watchDebounce, validate); err != nil {
		return WrapExitError(ExitCommandError, "watch failed", err)
	}
	return nil
}

func runValidate(opts *RootOptions, catalogPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	pool, err := catalog.Load(catalogPath)
	if err != nil {
		code := catalog.ErrorCode(err)
		if code == "" {
			code = catalog.ErrCodeLoadFailed
		}
		return formatter.Fail(ExitCommandError, code, "failed to load catalog", err)
	}

	formatter.VerboseLog("Loaded %d exercise(s) from %s", len(pool), catalogPath)

	issues := catalog.Lint(pool)
	result := ValidationResult{
		Valid:     !catalog.HasErrors(issues),
		Exercises: len(pool),
		Issues:    issues,
	}

	if formatter.JSON() {
		resp := CLIResponse{Status: "ok", Data: result}
		if !result.Valid {
			resp.Status = "error"
			resp.Error = &CLIError{Code: "E_INVALID", Message: firstError(issues)}
		}
		if err := formatter.Encode(resp); err != nil {
			return err
		}
	} else {
		outputValidateText(formatter, result)
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", countErrors(issues)))
	}
	return nil
}

func outputValidateText(f *OutputFormatter, result ValidationResult) {
	if result.Valid {
		f.Textf("✓ %d exercise(s) valid", result.Exercises)
	} else {
		f.Textf("✗ Validation failed")
	}
	for _, issue := range result.Issues {
		f.Textf("  %s", issue)
	}
}

func firstError(issues []catalog.Issue) string {
	for _, issue := range issues {
		if issue.Severity == catalog.SeverityError {
			return issue.String()
		}
	}
	return ""
}

func countErrors(issues []catalog.Issue) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == catalog.SeverityError {
			n++
		}
	}
	return n
}
