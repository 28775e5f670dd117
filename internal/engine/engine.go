package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/roach88/fitrank/internal/attribution"
	"github.com/roach88/fitrank/internal/exercise"
	"github.com/roach88/fitrank/internal/filter"
	"github.com/roach88/fitrank/internal/scoring"
)

// Request is one client's selection request.
type Request struct {
	// Pool is the candidate catalog, already scoped to the client's business.
	// nil is a contract violation; an empty slice is valid.
	Pool []exercise.Exercise

	Eligibility filter.Criteria
	Scoring     scoring.Criteria

	// Sink optionally receives attribution events in addition to the
	// engine's own Recorder.
	Sink attribution.Sink
}

// Result is the outcome of a selection run.
type Result struct {
	RunID string `json:"run_id"`

	// Ranked is the eligible pool sorted by descending score.
	Ranked []scoring.ScoredExercise `json:"ranked"`

	// Candidates is the size of the input pool.
	Candidates int `json:"candidates"`

	// Report holds attribution when recording is enabled.
	Report attribution.Report `json:"report"`
}

// Top returns at most n ranked exercises. n <= 0 returns all of them.
func (r *Result) Top(n int) []scoring.ScoredExercise {
	if n <= 0 || n >= len(r.Ranked) {
		return r.Ranked
	}
	return r.Ranked[:n]
}

// Engine runs selection requests with fixed scoring configuration.
//
// Thread-safety: Engine is immutable after New and safe for concurrent use.
type Engine struct {
	weights   scoring.Weights
	intensity scoring.IntensityTable
	logger    *slog.Logger
	runIDs    RunIDGenerator
	record    bool
}

// EngineOption allows configuration of engine parameters.
type EngineOption func(*Engine)

// WithWeights sets the scoring weights.
func WithWeights(w scoring.Weights) EngineOption {
	return func(e *Engine) { e.weights = w }
}

// WithIntensityTable sets the intensity adjustment table.
func WithIntensityTable(t scoring.IntensityTable) EngineOption {
	return func(e *Engine) { e.intensity = t }
}

// WithLogger sets the logger. Defaults to discarding.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRunIDGenerator sets the run ID generator. Defaults to UUIDv7Generator.
func WithRunIDGenerator(gen RunIDGenerator) EngineOption {
	return func(e *Engine) {
		if gen != nil {
			e.runIDs = gen
		}
	}
}

// WithRecording enables a fresh attribution Recorder per request, whose
// snapshot is returned in Result.Report.
func WithRecording(enabled bool) EngineOption {
	return func(e *Engine) { e.record = enabled }
}

// New creates an Engine with default weights, the zeroed intensity table,
// UUIDv7 run IDs and recording disabled.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		weights:   scoring.DefaultWeights(),
		intensity: scoring.DefaultIntensityTable(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		runIDs:    UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Select filters and scores req.Pool.
//
// Returns a *SelectError wrapping filter.ErrInvalidInput when req.Pool is
// nil, or the context error when ctx is already done.
func (e *Engine) Select(ctx context.Context, req Request) (*Result, error) {
	runID := e.runIDs.Generate()
	if err := ctx.Err(); err != nil {
		return nil, &SelectError{RunID: runID, Stage: StageContext, Err: err}
	}

	logger := e.logger.With("run_id", runID)

	var rec *attribution.Recorder
	if e.record {
		rec = attribution.NewRecorder()
	}
	var sink attribution.Sink
	if rec != nil {
		sink = attribution.Tee(rec, req.Sink)
	} else {
		sink = attribution.Tee(req.Sink)
	}

	eligible, err := filter.Filter(req.Pool, req.Eligibility,
		filter.WithLogger(logger),
		filter.WithSink(sink),
	)
	if err != nil {
		return nil, &SelectError{RunID: runID, Stage: StageFilter, Err: err}
	}

	ranked, err := scoring.Score(eligible, req.Scoring,
		scoring.WithWeights(e.weights),
		scoring.WithIntensityTable(e.intensity),
		scoring.WithLogger(logger),
		scoring.WithSink(sink),
	)
	if err != nil {
		return nil, &SelectError{RunID: runID, Stage: StageScore, Err: err}
	}

	result := &Result{
		RunID:      runID,
		Ranked:     ranked,
		Candidates: len(req.Pool),
	}
	if rec != nil {
		result.Report = rec.Snapshot()
	}

	logger.Info("selection complete",
		"candidates", result.Candidates,
		"eligible", len(ranked),
	)
	return result, nil
}
