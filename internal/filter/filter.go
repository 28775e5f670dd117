package filter

import (
	"io"
	"log/slog"

	"github.com/roach88/fitrank/internal/attribution"
	"github.com/roach88/fitrank/internal/exercise"
)

// ErrInvalidInput matches errors for malformed requests (a nil pool).
var ErrInvalidInput = exercise.ErrInvalidInput

// Option configures a single Filter call.
type Option func(*config)

type config struct {
	logger *slog.Logger
	sink   attribution.Sink
}

// WithLogger sets the logger for debug output. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSink reports each removal to sink.
func WithSink(sink attribution.Sink) Option {
	return func(c *config) {
		c.sink = attribution.OrDiscard(sink)
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		sink:   attribution.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Filter returns the exercises from pool that criteria permits.
//
// A nil pool is a contract violation and returns an error matching
// ErrInvalidInput. An empty pool returns an empty, non-nil slice.
// The input slice and its records are never modified; the result is a new
// slice that shares record contents with the input.
func Filter(pool []exercise.Exercise, criteria Criteria, opts ...Option) ([]exercise.Exercise, error) {
	if pool == nil {
		return nil, exercise.NewMissingPoolError("filter")
	}
	c := newConfig(opts)

	valid := dropIncomplete(pool)
	if dropped := len(pool) - len(valid); dropped > 0 {
		c.logger.Debug("dropped incomplete exercises", "count", dropped)
	}

	include := exercise.NewNameSet(criteria.Include)
	avoid := exercise.NewNameSet(criteria.Avoid)
	avoidJoints := exercise.NewNameSet(criteria.AvoidJoints)

	// 1. Include bypass
	included, remaining := partitionIncluded(valid, include)

	// 2. Cascading ceilings, remainder only
	cascaded := applyCeiling(remaining, criteria.StrengthCeiling, strengthOf, attribution.ReasonStrengthCeiling, c.sink)
	cascaded = applyCeiling(cascaded, criteria.ComplexityCeiling, complexityOf, attribution.ReasonComplexityCeiling, c.sink)

	// 3. Joint safety overrides the include bypass
	included = applyJointSafety(included, avoidJoints, c.sink)
	cascaded = applyJointSafety(cascaded, avoidJoints, c.sink)

	// 4. Merge
	merged := make([]exercise.Exercise, 0, len(included)+len(cascaded))
	merged = append(merged, included...)
	merged = append(merged, cascaded...)

	// 5. Exclude override, highest priority
	result := applyExclude(merged, avoid, c.sink)

	c.logger.Debug("filter complete",
		"pool", len(pool),
		"valid", len(valid),
		"included", len(included),
		"cascaded", len(cascaded),
		"result", len(result),
	)

	return result, nil
}

func dropIncomplete(pool []exercise.Exercise) []exercise.Exercise {
	out := make([]exercise.Exercise, 0, len(pool))
	for _, ex := range pool {
		if ex.IsComplete() {
			out = append(out, ex)
		}
	}
	return out
}

func partitionIncluded(pool []exercise.Exercise, include exercise.NameSet) (included, remaining []exercise.Exercise) {
	included = make([]exercise.Exercise, 0)
	remaining = make([]exercise.Exercise, 0, len(pool))
	for _, ex := range pool {
		if include.Has(ex.Name) {
			included = append(included, ex)
		} else {
			remaining = append(remaining, ex)
		}
	}
	return included, remaining
}

func strengthOf(ex exercise.Exercise) exercise.Level   { return ex.Strength }
func complexityOf(ex exercise.Exercise) exercise.Level { return ex.Complexity }

// applyCeiling keeps exercises whose level on one axis is within the cascade
// of ceiling.
func applyCeiling(
	pool []exercise.Exercise,
	ceiling exercise.Level,
	levelOf func(exercise.Exercise) exercise.Level,
	reason attribution.Reason,
	sink attribution.Sink,
) []exercise.Exercise {
	out := make([]exercise.Exercise, 0, len(pool))
	for _, ex := range pool {
		if exercise.Allows(ceiling, levelOf(ex)) {
			out = append(out, ex)
			continue
		}
		sink.RecordExclusion(ex, reason)
	}
	return out
}

// applyJointSafety removes exercises loading any avoided joint.
// Exercises with no loaded joints always pass.
func applyJointSafety(pool []exercise.Exercise, avoidJoints exercise.NameSet, sink attribution.Sink) []exercise.Exercise {
	if avoidJoints.Len() == 0 {
		return pool
	}
	out := make([]exercise.Exercise, 0, len(pool))
	for _, ex := range pool {
		if avoidJoints.HasAny(ex.LoadedJoints) {
			sink.RecordExclusion(ex, attribution.ReasonAvoidedJoint)
			continue
		}
		out = append(out, ex)
	}
	return out
}

func applyExclude(pool []exercise.Exercise, avoid exercise.NameSet, sink attribution.Sink) []exercise.Exercise {
	if avoid.Len() == 0 {
		return pool
	}
	out := make([]exercise.Exercise, 0, len(pool))
	for _, ex := range pool {
		if avoid.Has(ex.Name) {
			sink.RecordExclusion(ex, attribution.ReasonExcludedByRequest)
			continue
		}
		out = append(out, ex)
	}
	return out
}
