package scoring

import (
	"io"
	"log/slog"
	"sort"

	"github.com/roach88/fitrank/internal/attribution"
	"github.com/roach88/fitrank/internal/exercise"
)

// ErrInvalidInput matches errors for malformed requests (a nil pool).
var ErrInvalidInput = exercise.ErrInvalidInput

// Option configures a single Score call.
type Option func(*config)

type config struct {
	weights   Weights
	intensity IntensityTable
	logger    *slog.Logger
	sink      attribution.Sink
}

// WithWeights overrides the default weights.
func WithWeights(w Weights) Option {
	return func(c *config) { c.weights = w }
}

// WithIntensityTable overrides the default (all-zero) intensity table.
func WithIntensityTable(t IntensityTable) Option {
	return func(c *config) {
		if t != nil {
			c.intensity = t
		}
	}
}

// WithLogger sets the logger for debug output. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSink reports each final breakdown to sink.
func WithSink(sink attribution.Sink) Option {
	return func(c *config) { c.sink = attribution.OrDiscard(sink) }
}

func newConfig(opts []Option) *config {
	c := &config{
		weights:   DefaultWeights(),
		intensity: DefaultIntensityTable(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		sink:      attribution.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score scores every exercise in pool and returns them sorted descending.
//
// A nil pool returns an error matching ErrInvalidInput. An empty pool
// returns an empty, non-nil slice. Ties keep their input order, so the
// result is deterministic for a given input order.
func Score(pool []exercise.Exercise, criteria Criteria, opts ...Option) ([]ScoredExercise, error) {
	if pool == nil {
		return nil, exercise.NewMissingPoolError("score")
	}
	c := newConfig(opts)

	s := &scorer{
		weights:   c.weights,
		intensity: c.intensity,
		targets:   exercise.NewNameSet(criteria.TargetMuscles),
		lessen:    exercise.NewNameSet(criteria.LessenMuscles),
		level:     criteria.Intensity,
		goal:      criteria.Goal,
	}

	// Pass 1
	scored := make([]ScoredExercise, len(pool))
	poolMax := 0.0
	for i, ex := range pool {
		b := s.breakdown(ex, 0)
		scored[i] = ScoredExercise{Exercise: ex, Score: b.Total, Breakdown: b}
		if b.Total > poolMax {
			poolMax = b.Total
		}
	}
	c.logger.Debug("scoring pass 1 complete", "pool", len(pool), "max", poolMax)

	// Pass 2
	include := exercise.NewNameSet(criteria.Include)
	if include.Len() > 0 {
		ceiling := poolMax + c.weights.IncludePriority
		boosted := 0
		for i := range scored {
			if !include.Has(scored[i].Name) {
				continue
			}
			b := s.breakdown(scored[i].Exercise, ceiling-scored[i].Breakdown.Raw)
			// Pinned: raw+boost may round away from the ceiling.
			b.Total = ceiling
			scored[i].Breakdown = b
			scored[i].Score = ceiling
			boosted++
		}
		c.logger.Debug("scoring pass 2 complete", "boosted", boosted, "ceiling", ceiling)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	for _, se := range scored {
		c.sink.RecordScore(se.Exercise, se.Breakdown)
	}

	return scored, nil
}

// scorer holds the per-call lookup sets.
type scorer struct {
	weights   Weights
	intensity IntensityTable
	targets   exercise.NameSet
	lessen    exercise.NameSet
	level     Intensity
	goal      Goal
}

// breakdown computes one exercise's score with the given include boost.
func (s *scorer) breakdown(ex exercise.Exercise, boost float64) attribution.Breakdown {
	b := attribution.Breakdown{Base: s.weights.Base}

	b.TargetMatch = matchMuscles(ex, s.targets)
	switch b.TargetMatch {
	case attribution.MatchPrimary:
		b.TargetBonus = s.weights.TargetPrimary
	case attribution.MatchSecondary:
		b.TargetBonus = s.weights.TargetSecondary
	}

	b.LessenMatch = matchMuscles(ex, s.lessen)
	switch b.LessenMatch {
	case attribution.MatchPrimary:
		b.LessenPenalty = s.weights.LessenPrimary
	case attribution.MatchSecondary:
		b.LessenPenalty = s.weights.LessenSecondary
	}

	b.IntensityAdjustment = s.intensity.Lookup(s.level, ex.FatigueProfile)
	b.GoalAdjustment = goalAdjustment(ex, s.goal)

	b.Raw = b.Base + b.TargetBonus - b.LessenPenalty + b.IntensityAdjustment + b.GoalAdjustment
	b.IncludeBoost = boost

	total := b.Raw + boost
	if total < 0 {
		total = 0
	}
	b.Total = total
	return b
}

// matchMuscles applies the non-stacking rule: a primary match wins and
// secondary muscles are only consulted when the primary does not match.
func matchMuscles(ex exercise.Exercise, set exercise.NameSet) attribution.MatchKind {
	if set.Len() == 0 {
		return attribution.MatchNone
	}
	if set.Has(ex.PrimaryMuscle) {
		return attribution.MatchPrimary
	}
	if set.HasAny(ex.SecondaryMuscles) {
		return attribution.MatchSecondary
	}
	return attribution.MatchNone
}

// goalAdjustment is the hook for goal-driven weighting by movement pattern
// and function tags. No goal currently changes a score.
func goalAdjustment(_ exercise.Exercise, _ Goal) float64 {
	return 0
}
