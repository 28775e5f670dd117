package scoring

import (
	"github.com/roach88/fitrank/internal/attribution"
	"github.com/roach88/fitrank/internal/exercise"
)

// Goal is the client's primary training goal.
type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalHypertrophy Goal = "hypertrophy"
	GoalEndurance   Goal = "endurance"
	GoalMobility    Goal = "mobility"
	GoalGeneral     Goal = "general_fitness"
)

// Criteria is the per-request scoring value object. All fields are optional.
// Muscle and include names match the way filter.Criteria names do:
// trimmed, NFC-normalized, case-sensitive.
type Criteria struct {
	// TargetMuscles earn a bonus.
	TargetMuscles []string `json:"target_muscles,omitempty" yaml:"target_muscles,omitempty"`

	// LessenMuscles incur a penalty.
	LessenMuscles []string `json:"lessen_muscles,omitempty" yaml:"lessen_muscles,omitempty"`

	Intensity Intensity `json:"intensity,omitempty" yaml:"intensity,omitempty"`

	// Include names receive the priority boost in pass 2.
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`

	// Goal is reserved for movement-pattern and function-tag weighting.
	Goal Goal `json:"goal,omitempty" yaml:"goal,omitempty"`
}

// ScoredExercise pairs an exercise with its score and breakdown.
type ScoredExercise struct {
	exercise.Exercise
	Score     float64               `json:"score"`
	Breakdown attribution.Breakdown `json:"breakdown"`
}
