package filter

import "github.com/roach88/fitrank/internal/exercise"

// Criteria is the per-request eligibility value object.
//
// Only the two ceilings are expected to be set. A ceiling that does not
// resolve to a known level admits nothing on its axis. Empty lists are
// no-ops for their rule.
//
// Names and joints match after trimming surrounding whitespace and NFC
// normalization on both sides, so " Squat" matches "Squat". Matching is
// case-sensitive.
type Criteria struct {
	StrengthCeiling   exercise.Level `json:"strength_ceiling" yaml:"strength_ceiling"`
	ComplexityCeiling exercise.Level `json:"complexity_ceiling" yaml:"complexity_ceiling"`

	// Include names bypass the cascading ceilings.
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`

	// Avoid names are removed unconditionally.
	Avoid []string `json:"avoid,omitempty" yaml:"avoid,omitempty"`

	// AvoidJoints removes any exercise loading one of these joints.
	AvoidJoints []string `json:"avoid_joints,omitempty" yaml:"avoid_joints,omitempty"`
}
