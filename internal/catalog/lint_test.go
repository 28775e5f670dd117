package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fitrank/internal/exercise"
	"github.com/roach88/fitrank/internal/testutil"
)

func TestLint_CleanPool(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Squat", testutil.WithFatigue(exercise.FatigueHighSystemic)),
	}
	assert.Empty(t, Lint(pool))
	assert.False(t, HasErrors(Lint(pool)))
}

func TestLint_Findings(t *testing.T) {
	pool := []exercise.Exercise{
		{ID: "a", Name: "A", PrimaryMuscle: "core", Strength: "extreme", Complexity: exercise.LevelLow},
		{Name: "B", PrimaryMuscle: "core", Strength: exercise.LevelLow},
		testutil.NewExercise("C", testutil.WithFatigue("sleepy")),
	}

	issues := Lint(pool)
	require.Len(t, issues, 4)

	assert.Equal(t, Issue{Index: 0, ID: "a", Name: "A", Field: "strength_level",
		Severity: SeverityError, Message: `unknown level "extreme"`}, issues[0])
	assert.Equal(t, "id", issues[1].Field)
	assert.Equal(t, "complexity_level", issues[2].Field)
	assert.Equal(t, SeverityWarning, issues[3].Severity)
	assert.True(t, HasErrors(issues))

	assert.Equal(t, "error #1: id: required field is empty", issues[1].String())
}

func TestLint_WarningsOnly(t *testing.T) {
	issues := Lint([]exercise.Exercise{testutil.NewExercise("C", testutil.WithFatigue("sleepy"))})
	require.Len(t, issues, 1)
	assert.False(t, HasErrors(issues))
}
