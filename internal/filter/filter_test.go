package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fitrank/internal/attribution"
	"github.com/roach88/fitrank/internal/exercise"
	"github.com/roach88/fitrank/internal/testutil"
)

func openCriteria() Criteria {
	return Criteria{
		StrengthCeiling:   exercise.LevelHigh,
		ComplexityCeiling: exercise.LevelHigh,
	}
}

func TestFilter_NilPoolIsInvalidInput(t *testing.T) {
	out, err := Filter(nil, openCriteria())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, exercise.IsMissingPool(err))
}

func TestFilter_EmptyPool(t *testing.T) {
	out, err := Filter([]exercise.Exercise{}, openCriteria())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// Scenario A: strength ordinals [very_low, low, moderate, high], ceiling low.
func TestFilter_ScenarioA_StrengthCascade(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("E1", testutil.WithStrength(exercise.LevelVeryLow)),
		testutil.NewExercise("E2", testutil.WithStrength(exercise.LevelLow)),
		testutil.NewExercise("E3", testutil.WithStrength(exercise.LevelModerate)),
		testutil.NewExercise("E4", testutil.WithStrength(exercise.LevelHigh)),
	}
	criteria := Criteria{StrengthCeiling: exercise.LevelLow, ComplexityCeiling: exercise.LevelHigh}

	out, err := Filter(pool, criteria)
	require.NoError(t, err)
	if diff := cmp.Diff([]exercise.Exercise{pool[0], pool[1]}, out); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_ComplexityCascadeIndependentOfStrength(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Easy", testutil.WithStrength(exercise.LevelHigh), testutil.WithComplexity(exercise.LevelVeryLow)),
		testutil.NewExercise("Technical", testutil.WithStrength(exercise.LevelVeryLow), testutil.WithComplexity(exercise.LevelHigh)),
	}
	criteria := Criteria{StrengthCeiling: exercise.LevelHigh, ComplexityCeiling: exercise.LevelModerate}

	out, err := Filter(pool, criteria)
	require.NoError(t, err)
	assert.Equal(t, []string{"Easy"}, testutil.Names(out))
}

func TestFilter_CascadingMonotonicity(t *testing.T) {
	var pool []exercise.Exercise
	for _, s := range exercise.Levels {
		for _, c := range exercise.Levels {
			pool = append(pool, testutil.NewExercise(string(s)+"/"+string(c),
				testutil.WithStrength(s), testutil.WithComplexity(c)))
		}
	}

	var previous map[string]bool
	for _, ceiling := range exercise.Levels {
		out, err := Filter(pool, Criteria{StrengthCeiling: ceiling, ComplexityCeiling: exercise.LevelHigh})
		require.NoError(t, err)

		got := make(map[string]bool)
		for _, ex := range out {
			got[ex.Name] = true
			assert.LessOrEqual(t, ex.Strength.Index(), ceiling.Index())
		}
		for name := range previous {
			assert.True(t, got[name], "raising ceiling to %s removed %s", ceiling, name)
		}
		previous = got
	}
}

func TestFilter_UnknownCeilingAdmitsNothing(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("A", testutil.WithStrength(exercise.LevelVeryLow)),
	}
	out, err := Filter(pool, Criteria{StrengthCeiling: "elite", ComplexityCeiling: exercise.LevelHigh})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = Filter(pool, Criteria{})
	require.NoError(t, err)
	assert.Empty(t, out, "zero-value ceilings admit nothing")
}

func TestFilter_CorruptLevelRejected(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Corrupt", testutil.WithStrength("extreme")),
	}
	rec := attribution.NewRecorder()
	out, err := Filter(pool, openCriteria(), WithSink(rec))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, []attribution.Reason{attribution.ReasonStrengthCeiling}, rec.Snapshot().ExclusionsFor("Corrupt"))
}

func TestFilter_DropsIncompleteSilently(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Good"),
		testutil.NewExercise("No ID", testutil.WithID("")),
		testutil.NewExercise("No Primary", testutil.WithPrimary("")),
		testutil.NewExercise("No Strength", testutil.WithStrength("")),
		testutil.NewExercise("No Complexity", testutil.WithComplexity("")),
		testutil.NewExercise(""),
	}
	rec := attribution.NewRecorder()

	out, err := Filter(pool, Criteria{
		StrengthCeiling:   exercise.LevelHigh,
		ComplexityCeiling: exercise.LevelHigh,
		Include:           []string{"No Strength", "No Complexity"},
	}, WithSink(rec))
	require.NoError(t, err)
	assert.Equal(t, []string{"Good"}, testutil.Names(out))
	assert.Empty(t, rec.Snapshot().Exclusions, "malformed records are not exclusions")
}

func TestFilter_IncludeBypassesCascade(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Easy", testutil.WithStrength(exercise.LevelVeryLow)),
		testutil.NewExercise("Snatch", testutil.WithStrength(exercise.LevelHigh), testutil.WithComplexity(exercise.LevelHigh)),
	}
	criteria := Criteria{
		StrengthCeiling:   exercise.LevelLow,
		ComplexityCeiling: exercise.LevelLow,
		Include:           []string{"Snatch"},
	}

	out, err := Filter(pool, criteria)
	require.NoError(t, err)
	assert.Equal(t, []string{"Snatch", "Easy"}, testutil.Names(out), "included first, then cascaded")
}

// Scenario B: included exercise loading an avoided joint is removed.
func TestFilter_ScenarioB_JointSafetyOverridesInclude(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Jump Squat", testutil.WithJoints("knees", "ankles")),
	}
	criteria := Criteria{
		StrengthCeiling:   exercise.LevelHigh,
		ComplexityCeiling: exercise.LevelHigh,
		Include:           []string{"Jump Squat"},
		AvoidJoints:       []string{"knees"},
	}
	rec := attribution.NewRecorder()

	out, err := Filter(pool, criteria, WithSink(rec))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, []attribution.Reason{attribution.ReasonAvoidedJoint}, rec.Snapshot().ExclusionsFor("Jump Squat"))
}

func TestFilter_JointSafetyOnCascadedSet(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Lunge", testutil.WithJoints("knees")),
		testutil.NewExercise("Plank"),
		testutil.NewExercise("Row", testutil.WithJoints()),
		testutil.NewExercise("Press", testutil.WithJoints("shoulders")),
	}
	criteria := openCriteria()
	criteria.AvoidJoints = []string{"knees", "hips"}

	out, err := Filter(pool, criteria)
	require.NoError(t, err)
	assert.Equal(t, []string{"Plank", "Row", "Press"}, testutil.Names(out))
}

func TestFilter_ExcludeOverridesInclude(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Squat"),
		testutil.NewExercise("Lunge"),
	}
	criteria := openCriteria()
	criteria.Include = []string{"Squat"}
	criteria.Avoid = []string{"Squat"}
	rec := attribution.NewRecorder()

	out, err := Filter(pool, criteria, WithSink(rec))
	require.NoError(t, err)
	assert.Equal(t, []string{"Lunge"}, testutil.Names(out))
	assert.Equal(t, []attribution.Reason{attribution.ReasonExcludedByRequest}, rec.Snapshot().ExclusionsFor("Squat"))
}

func TestFilter_ExclusionReasons(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Heavy", testutil.WithStrength(exercise.LevelHigh)),
		testutil.NewExercise("Tricky", testutil.WithComplexity(exercise.LevelHigh)),
		testutil.NewExercise("Knee Loader", testutil.WithJoints("knees")),
		testutil.NewExercise("Hated"),
		testutil.NewExercise("Fine"),
	}
	criteria := Criteria{
		StrengthCeiling:   exercise.LevelModerate,
		ComplexityCeiling: exercise.LevelModerate,
		Avoid:             []string{"Hated"},
		AvoidJoints:       []string{"knees"},
	}
	rec := attribution.NewRecorder()

	out, err := Filter(pool, criteria, WithSink(rec))
	require.NoError(t, err)
	assert.Equal(t, []string{"Fine"}, testutil.Names(out))

	report := rec.Snapshot()
	assert.Equal(t, []attribution.Exclusion{
		{ExerciseID: "ex-heavy", ExerciseName: "Heavy", Reason: attribution.ReasonStrengthCeiling},
		{ExerciseID: "ex-tricky", ExerciseName: "Tricky", Reason: attribution.ReasonComplexityCeiling},
		{ExerciseID: "ex-knee-loader", ExerciseName: "Knee Loader", Reason: attribution.ReasonAvoidedJoint},
		{ExerciseID: "ex-hated", ExerciseName: "Hated", Reason: attribution.ReasonExcludedByRequest},
	}, report.Exclusions)
}

func TestFilter_SinkDoesNotChangeResult(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("A", testutil.WithStrength(exercise.LevelHigh)),
		testutil.NewExercise("B", testutil.WithJoints("wrists")),
		testutil.NewExercise("C"),
	}
	criteria := Criteria{
		StrengthCeiling:   exercise.LevelModerate,
		ComplexityCeiling: exercise.LevelHigh,
		AvoidJoints:       []string{"wrists"},
	}

	without, err := Filter(pool, criteria)
	require.NoError(t, err)
	with, err := Filter(pool, criteria, WithSink(attribution.NewRecorder()))
	require.NoError(t, err)
	assert.Equal(t, without, with)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("A", testutil.WithJoints("knees")),
		testutil.NewExercise("B", testutil.WithStrength(exercise.LevelHigh)),
		testutil.NewExercise("C"),
	}
	snapshot := make([]exercise.Exercise, len(pool))
	copy(snapshot, pool)

	_, err := Filter(pool, Criteria{
		StrengthCeiling:   exercise.LevelLow,
		ComplexityCeiling: exercise.LevelLow,
		Include:           []string{"B"},
		AvoidJoints:       []string{"knees"},
	})
	require.NoError(t, err)
	assert.Equal(t, snapshot, pool)
}

func TestFilter_Idempotent(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("A", testutil.WithStrength(exercise.LevelModerate)),
		testutil.NewExercise("B", testutil.WithJoints("knees")),
		testutil.NewExercise("C", testutil.WithComplexity(exercise.LevelHigh)),
		testutil.NewExercise("D"),
	}
	criteria := Criteria{
		StrengthCeiling:   exercise.LevelModerate,
		ComplexityCeiling: exercise.LevelModerate,
		Include:           []string{"C"},
		AvoidJoints:       []string{"knees"},
	}

	first, err := Filter(pool, criteria)
	require.NoError(t, err)
	second, err := Filter(pool, criteria)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFilter_NamesMatchTrimmedAndNFC(t *testing.T) {
	pool := []exercise.Exercise{
		testutil.NewExercise("Squat", testutil.WithStrength(exercise.LevelHigh)),
		testutil.NewExercise("Pli\u00e9 Squat"),
		testutil.NewExercise("Row", testutil.WithJoints("elbow")),
		testutil.NewExercise("Plank"),
	}
	criteria := Criteria{
		StrengthCeiling:   exercise.LevelLow,
		ComplexityCeiling: exercise.LevelHigh,
		Include:           []string{" Squat "},
		Avoid:             []string{"Plie\u0301 Squat"},
		AvoidJoints:       []string{"elbow\t"},
	}

	out, err := Filter(pool, criteria)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Squat", "Plank"}, testutil.Names(out)); diff != "" {
		t.Errorf("Filter() names mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_NamesMatchCaseSensitive(t *testing.T) {
	pool := []exercise.Exercise{testutil.NewExercise("Plank")}
	out, err := Filter(pool, Criteria{
		StrengthCeiling:   exercise.LevelHigh,
		ComplexityCeiling: exercise.LevelHigh,
		Avoid:             []string{"plank"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Plank"}, testutil.Names(out))
}
