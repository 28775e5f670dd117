package testutil

import (
	"strings"

	"github.com/roach88/fitrank/internal/exercise"
)

// ExerciseOption customizes a fixture built by NewExercise.
type ExerciseOption func(*exercise.Exercise)

// NewExercise builds a complete exercise fixture.
//
// Defaults: ID "ex-<slug>", primary muscle "core", strength and complexity
// "low", no secondary muscles, no loaded joints.
func NewExercise(name string, opts ...ExerciseOption) exercise.Exercise {
	ex := exercise.Exercise{
		ID:            "ex-" + slug(name),
		Name:          name,
		PrimaryMuscle: "core",
		Strength:      exercise.LevelLow,
		Complexity:    exercise.LevelLow,
	}
	for _, opt := range opts {
		opt(&ex)
	}
	return ex
}

// WithID overrides the identifier.
func WithID(id string) ExerciseOption {
	return func(e *exercise.Exercise) { e.ID = id }
}

// WithPrimary sets the primary muscle.
func WithPrimary(muscle string) ExerciseOption {
	return func(e *exercise.Exercise) { e.PrimaryMuscle = muscle }
}

// WithSecondary sets the secondary muscles.
func WithSecondary(muscles ...string) ExerciseOption {
	return func(e *exercise.Exercise) { e.SecondaryMuscles = muscles }
}

// WithStrength sets the strength level.
func WithStrength(l exercise.Level) ExerciseOption {
	return func(e *exercise.Exercise) { e.Strength = l }
}

// WithComplexity sets the complexity level.
func WithComplexity(l exercise.Level) ExerciseOption {
	return func(e *exercise.Exercise) { e.Complexity = l }
}

// WithJoints sets the loaded joints.
func WithJoints(joints ...string) ExerciseOption {
	return func(e *exercise.Exercise) { e.LoadedJoints = joints }
}

// WithFatigue sets the fatigue profile tag.
func WithFatigue(profile string) ExerciseOption {
	return func(e *exercise.Exercise) { e.FatigueProfile = profile }
}

// Names returns the exercise names in order.
func Names(pool []exercise.Exercise) []string {
	names := make([]string, len(pool))
	for i, ex := range pool {
		names[i] = ex.Name
	}
	return names
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
