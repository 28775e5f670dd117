package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fitrank/internal/catalog"
	"github.com/roach88/fitrank/internal/config"
	"github.com/roach88/fitrank/internal/engine"
	"github.com/roach88/fitrank/internal/scoring"
	"github.com/roach88/fitrank/internal/store"
)

// SelectOptions holds flags for the select command.
type SelectOptions struct {
	*RootOptions
	ConfigPath string // YAML config file
	Top        int    // keep only the first N ranked exercises (0 = all)
	RecordDB   string // SQLite file for the attribution report
}

// RankedExercise is one line of select output.
type RankedExercise struct {
	Rank  int     `json:"rank"`
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// SelectResult is the select command's output payload.
type SelectResult struct {
	RunID      string           `json:"run_id"`
	Candidates int              `json:"candidates"`
	Eligible   int              `json:"eligible"`
	Ranked     []RankedExercise `json:"ranked"`
	Excluded   int              `json:"excluded"`
	Recorded   string           `json:"recorded,omitempty"`
}

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SelectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "select <catalog> <request>",
		Short: "Filter and rank a catalog for one request",
		Long: `Filter a catalog by the request's eligibility criteria and rank the
survivors by suitability.

The catalog is a CUE package directory, a .cue file, or a YAML/JSON file.
The request is a YAML file with eligibility and scoring sections.

With --record-db (or attribution.database in the config) the run's
exclusion reasons and score breakdowns are written to SQLite for
later inspection with "fitrank explain".

Exit codes:
  0 - Ranking produced
  2 - Command error (bad catalog, request or config)

Examples:
  fitrank select ./catalog ./request.yaml
  fitrank select catalog.yaml request.yaml --top 5
  fitrank select ./catalog request.yaml --record-db runs.db --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd.Context(), opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (YAML)")
	cmd.Flags().IntVar(&opts.Top, "top", 0, "show only the top N exercises")
	cmd.Flags().StringVar(&opts.RecordDB, "record-db", "", "write the attribution report to this SQLite file")

	return cmd
}

func runSelect(ctx context.Context, opts *SelectOptions, catalogPath, requestPath string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Top < 0 {
		return formatter.Fail(ExitCommandError, "E_FLAG", fmt.Sprintf("--top must be >= 0, got %d", opts.Top), nil)
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return formatter.Fail(ExitCommandError, "E_CONFIG", "failed to load config", err)
		}
		cfg = loaded
	}

	logger := newLogger(opts.RootOptions, formatter.GetErrWriter(), cfg.SlogLevel())

	pool, err := catalog.Load(catalogPath)
	if err != nil {
		code := catalog.ErrorCode(err)
		if code == "" {
			code = catalog.ErrCodeLoadFailed
		}
		return formatter.Fail(ExitCommandError, code, "failed to load catalog", err)
	}
	formatter.VerboseLog("Loaded %d exercise(s) from %s", len(pool), catalogPath)

	req, err := catalog.LoadRequest(requestPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, "E_REQUEST", "failed to load request", err)
	}

	dbPath := opts.RecordDB
	if dbPath == "" && cfg.Attribution.Enabled {
		dbPath = cfg.Attribution.Database
	}

	eng := engine.New(
		engine.WithWeights(cfg.Scoring.Weights),
		engine.WithIntensityTable(cfg.Scoring.Intensity),
		engine.WithLogger(logger),
		engine.WithRecording(true),
	)

	res, err := eng.Select(ctx, engine.Request{
		Pool:        pool,
		Eligibility: req.Eligibility,
		Scoring:     req.Scoring,
	})
	if err != nil {
		return formatter.Fail(ExitCommandError, "E_SELECT", fmt.Sprintf("selection failed at %s stage", engine.FailedStage(err)), err)
	}

	out := buildSelectResult(res, opts.Top)

	if dbPath != "" {
		if err := recordRun(ctx, dbPath, res, req); err != nil {
			return formatter.Fail(ExitCommandError, "E_RECORD", "failed to record run", err)
		}
		out.Recorded = dbPath
		formatter.VerboseLog("Recorded run %s to %s", res.RunID, dbPath)
	}

	if formatter.JSON() {
		return formatter.OK(out, res.RunID)
	}
	outputSelectText(formatter, out)
	return nil
}

func buildSelectResult(res *engine.Result, top int) SelectResult {
	ranked := res.Ranked
	if top > 0 {
		ranked = res.Top(top)
	}
	return SelectResult{
		RunID:      res.RunID,
		Candidates: res.Candidates,
		Eligible:   len(res.Ranked),
		Ranked:     rankedExercises(ranked),
		Excluded:   len(res.Report.Exclusions),
	}
}

func rankedExercises(scored []scoring.ScoredExercise) []RankedExercise {
	out := make([]RankedExercise, len(scored))
	for i, s := range scored {
		out[i] = RankedExercise{Rank: i + 1, ID: s.Exercise.ID, Name: s.Exercise.Name, Score: s.Score}
	}
	return out
}

// recordRun persists the run's attribution report together with the
// request that produced it.
func recordRun(ctx context.Context, dbPath string, res *engine.Result, req *catalog.Request) error {
	st, err := store.OpenContext(ctx, dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	return st.WriteReport(ctx, store.Run{
		ID:         res.RunID,
		Candidates: res.Candidates,
		Eligible:   len(res.Ranked),
		Request:    string(reqJSON),
	}, res.Report)
}

func outputSelectText(f *OutputFormatter, out SelectResult) {
	f.Textf("Run %s: %d of %d exercise(s) eligible", out.RunID, out.Eligible, out.Candidates)
	if len(out.Ranked) == 0 {
		f.Textf("No eligible exercises.")
		return
	}
	f.Textf("")
	for _, r := range out.Ranked {
		f.Textf("%3d. %-32s %6.2f", r.Rank, r.Name, r.Score)
	}
	if out.Recorded != "" {
		f.Textf("")
		f.Textf("Recorded to %s (fitrank explain --db %s %s)", out.Recorded, out.Recorded, out.RunID)
	}
}
