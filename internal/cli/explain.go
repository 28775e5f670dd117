package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/fitrank/internal/attribution"
	"github.com/roach88/fitrank/internal/store"
)

// ExplainOptions holds flags for the explain command.
type ExplainOptions struct {
	*RootOptions
	DBPath   string // SQLite file written by select --record-db
	Exercise string // restrict output to one exercise name
}

// ExerciseExplanation is the attribution trail of one exercise in a run.
type ExerciseExplanation struct {
	Name      string                 `json:"name"`
	Excluded  []attribution.Reason   `json:"excluded,omitempty"`
	Breakdown *attribution.Breakdown `json:"breakdown,omitempty"`

	// History counts exclusions of this exercise across every recorded run.
	History int `json:"history"`
}

// ExplainResult is the explain command's output payload.
type ExplainResult struct {
	Run      store.Run            `json:"run"`
	Report   *attribution.Report  `json:"report,omitempty"`
	Exercise *ExerciseExplanation `json:"exercise,omitempty"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExplainOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "explain [run-id]",
		Short: "Show why exercises were excluded or how they scored",
		Long: `Read a recorded run's attribution report.

Without a run ID the most recent run is shown. With --exercise only
that exercise's exclusion reasons and score breakdown are shown.

Exit codes:
  0 - Report shown
  1 - Run or exercise not found
  2 - Command error (missing or unreadable database)

Examples:
  fitrank explain --db runs.db
  fitrank explain --db runs.db 0192f1c4-...
  fitrank explain --db runs.db --exercise "Barbell Snatch"`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := ""
			if len(args) == 1 {
				runID = args[0]
			}
			return runExplain(cmd.Context(), opts, runID, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "attribution database (required)")
	cmd.Flags().StringVar(&opts.Exercise, "exercise", "", "explain a single exercise by name")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runExplain(ctx context.Context, opts *ExplainOptions, runID string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	// Open creates missing files; a typo in --db should not.
	if _, err := os.Stat(opts.DBPath); err != nil {
		return formatter.Fail(ExitCommandError, "E_DB", "database not found", err)
	}

	st, err := store.OpenContext(ctx, opts.DBPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, "E_DB", "failed to open database", err)
	}
	defer st.Close()

	var run store.Run
	if runID == "" {
		run, err = st.LatestRun(ctx)
	} else {
		run, err = st.ReadRun(ctx, runID)
	}
	if errors.Is(err, store.ErrRunNotFound) {
		return formatter.Fail(ExitFailure, "E_NOT_FOUND", "run not found", err)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, "E_DB", "failed to read run", err)
	}

	report, err := st.ReadReport(ctx, run.ID)
	if err != nil {
		return formatter.Fail(ExitCommandError, "E_DB", "failed to read report", err)
	}

	result := ExplainResult{Run: run}
	if opts.Exercise == "" {
		result.Report = &report
	} else {
		explanation := explainExercise(report, opts.Exercise)
		if len(explanation.Excluded) == 0 && explanation.Breakdown == nil {
			msg := fmt.Sprintf("exercise %q not in run %s", opts.Exercise, run.ID)
			return formatter.Fail(ExitFailure, "E_NOT_FOUND", msg, nil)
		}
		history, err := st.ReadExclusionsByName(ctx, opts.Exercise)
		if err != nil {
			return formatter.Fail(ExitCommandError, "E_DB", "failed to read exclusion history", err)
		}
		explanation.History = len(history)
		result.Exercise = &explanation
	}

	if formatter.JSON() {
		return formatter.OK(result, run.ID)
	}
	outputExplainText(formatter, result)
	return nil
}

func explainExercise(report attribution.Report, name string) ExerciseExplanation {
	e := ExerciseExplanation{Name: name, Excluded: report.ExclusionsFor(name)}
	if b, ok := report.ScoreFor(name); ok {
		e.Breakdown = &b
	}
	return e
}

func outputExplainText(f *OutputFormatter, result ExplainResult) {
	f.Textf("Run %s: %d of %d exercise(s) eligible", result.Run.ID, result.Run.Eligible, result.Run.Candidates)

	if result.Exercise != nil {
		f.Textf("")
		outputExerciseText(f, *result.Exercise)
		return
	}

	report := result.Report
	if len(report.Exclusions) > 0 {
		f.Textf("")
		f.Textf("Excluded:")
		for _, ex := range report.Exclusions {
			f.Textf("  %-32s %s", ex.ExerciseName, ex.Reason)
		}
	}
	if len(report.Scores) > 0 {
		f.Textf("")
		f.Textf("Ranked:")
		for i, s := range report.Scores {
			f.Textf("%3d. %-32s %6.2f", i+1, s.ExerciseName, s.Breakdown.Total)
		}
	}
}

func outputExerciseText(f *OutputFormatter, e ExerciseExplanation) {
	f.Textf("%s", e.Name)
	for _, reason := range e.Excluded {
		f.Textf("  excluded: %s", reason)
	}
	if b := e.Breakdown; b != nil {
		f.Textf("  %-16s %+7.2f", "base", b.Base)
		for _, t := range b.Bonuses() {
			f.Textf("  %-16s %+7.2f", t.Label, t.Value)
		}
		for _, t := range b.Penalties() {
			f.Textf("  %-16s %+7.2f", t.Label, -t.Value)
		}
		f.Textf("  %-16s %7.2f", "total", b.Total)
	}
	if e.History > 0 {
		f.Textf("  excluded %d time(s) across recorded runs", e.History)
	}
}
