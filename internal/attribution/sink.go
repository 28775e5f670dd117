package attribution

import "github.com/roach88/fitrank/internal/exercise"

// Reason identifies the rule that removed an exercise from the pool.
type Reason string

const (
	// ReasonStrengthCeiling: strength level above the client's ceiling,
	// or absent/unknown.
	ReasonStrengthCeiling Reason = "strength_ceiling"

	// ReasonComplexityCeiling: complexity level above the client's ceiling,
	// or absent/unknown.
	ReasonComplexityCeiling Reason = "complexity_ceiling"

	// ReasonAvoidedJoint: loads a joint the client must avoid.
	ReasonAvoidedJoint Reason = "avoided_joint"

	// ReasonExcludedByRequest: named in the avoid list.
	ReasonExcludedByRequest Reason = "excluded_by_request"
)

// Sink receives attribution events from the pipelines.
//
// Implementations must not panic and must not retain the Exercise's slices
// for mutation.
type Sink interface {
	// RecordExclusion is called once per exercise removed by a rule.
	RecordExclusion(ex exercise.Exercise, reason Reason)

	// RecordScore is called once per scored exercise with its final breakdown.
	RecordScore(ex exercise.Exercise, b Breakdown)
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) RecordExclusion(exercise.Exercise, Reason) {}
func (discard) RecordScore(exercise.Exercise, Breakdown) {}

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}
	return s
}
