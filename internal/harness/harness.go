package harness

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/fitrank/internal/attribution"
	"github.com/roach88/fitrank/internal/catalog"
	"github.com/roach88/fitrank/internal/engine"
	"github.com/roach88/fitrank/internal/exercise"
	"github.com/roach88/fitrank/internal/scoring"
	"github.com/roach88/fitrank/internal/store"
	"github.com/roach88/fitrank/internal/testutil"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every assertion held.
	Pass bool `json:"pass"`

	// Errors contains assertion failure messages.
	Errors []string `json:"errors,omitempty"`

	RunID  string                   `json:"run_id"`
	Ranked []scoring.ScoredExercise `json:"ranked"`

	// Report is the attribution report as read back from the store.
	Report attribution.Report `json:"report"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// RankedNames returns the ranked exercise names in order.
func (r *Result) RankedNames() []string {
	names := make([]string, len(r.Ranked))
	for i, s := range r.Ranked {
		names[i] = s.Name
	}
	return names
}

// Run executes a scenario and evaluates its assertions.
//
// Each scenario runs in a fresh in-memory database for isolation. A
// returned error means the scenario could not run; assertion failures are
// reported through Result.Pass and Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	pool, err := scenarioPool(scenario)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	opts := []engine.EngineOption{
		engine.WithRecording(true),
		engine.WithRunIDGenerator(testutil.NewFixedRunIDGenerator(scenario.RunID)),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	if scenario.Weights != nil {
		opts = append(opts, engine.WithWeights(*scenario.Weights))
	}
	eng := engine.New(opts...)

	ctx := context.Background()
	sel, err := eng.Select(ctx, engine.Request{
		Pool:        pool,
		Eligibility: scenario.Eligibility,
		Scoring:     scenario.Scoring,
	})
	if err != nil {
		return nil, fmt.Errorf("selection failed: %w", err)
	}

	request, err := json.Marshal(map[string]any{
		"eligibility": scenario.Eligibility,
		"scoring":     scenario.Scoring,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	run := store.Run{
		ID:         sel.RunID,
		Candidates: sel.Candidates,
		Eligible:   len(sel.Ranked),
		Request:    string(request),
	}
	if err := st.WriteReport(ctx, run, sel.Report); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}
	report, err := st.ReadReport(ctx, sel.RunID)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	result := NewResult()
	result.RunID = sel.RunID
	result.Ranked = sel.Ranked
	result.Report = report

	for i, assertion := range scenario.Assertions {
		if err := evaluate(result, assertion); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	return result, nil
}

// scenarioPool returns the inline pool or loads the catalog.
func scenarioPool(scenario *Scenario) ([]exercise.Exercise, error) {
	if scenario.Catalog == "" {
		if scenario.Exercises == nil {
			return []exercise.Exercise{}, nil
		}
		return scenario.Exercises, nil
	}
	pool, err := catalog.Load(scenario.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return pool, nil
}
