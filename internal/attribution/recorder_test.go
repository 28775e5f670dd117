package attribution

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fitrank/internal/exercise"
)

func squat() exercise.Exercise {
	return exercise.Exercise{ID: "ex-squat", Name: "Squat", PrimaryMuscle: "quads"}
}

func TestRecorder_RecordsWhileEnabled(t *testing.T) {
	r := NewRecorder()
	require.True(t, r.Enabled())

	r.RecordExclusion(squat(), ReasonAvoidedJoint)
	r.RecordScore(squat(), Breakdown{Base: 5, Total: 5, Raw: 5})

	report := r.Snapshot()
	require.Len(t, report.Exclusions, 1)
	require.Len(t, report.Scores, 1)
	assert.Equal(t, Exclusion{ExerciseID: "ex-squat", ExerciseName: "Squat", Reason: ReasonAvoidedJoint}, report.Exclusions[0])
	assert.Equal(t, []Reason{ReasonAvoidedJoint}, report.ExclusionsFor("Squat"))

	b, ok := report.ScoreFor("Squat")
	require.True(t, ok)
	assert.Equal(t, 5.0, b.Total)
}

func TestRecorder_DisableDropsEntries(t *testing.T) {
	r := NewRecorder()
	r.Disable()
	r.RecordExclusion(squat(), ReasonExcludedByRequest)
	assert.Empty(t, r.Snapshot().Exclusions)

	r.Enable()
	r.RecordExclusion(squat(), ReasonExcludedByRequest)
	assert.Len(t, r.Snapshot().Exclusions, 1)
}

func TestRecorder_ClearBetweenRequests(t *testing.T) {
	r := NewRecorder()
	r.RecordExclusion(squat(), ReasonStrengthCeiling)
	r.Clear()

	assert.True(t, r.Enabled(), "Clear must not change enabled state")
	report := r.Snapshot()
	assert.Empty(t, report.Exclusions)
	assert.Empty(t, report.Scores)
}

func TestRecorder_SnapshotIsCopy(t *testing.T) {
	r := NewRecorder()
	r.RecordExclusion(squat(), ReasonStrengthCeiling)
	snap := r.Snapshot()
	r.RecordExclusion(squat(), ReasonComplexityCeiling)

	assert.Len(t, snap.Exclusions, 1)
	assert.Len(t, r.Snapshot().Exclusions, 2)
}

func TestRecorder_ConcurrentUse(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.RecordExclusion(squat(), ReasonAvoidedJoint)
		}()
	}
	wg.Wait()
	assert.Len(t, r.Snapshot().Exclusions, 50)
}

func TestOrDiscard(t *testing.T) {
	assert.Equal(t, Discard, OrDiscard(nil))
	r := NewRecorder()
	assert.Same(t, r, OrDiscard(r))

	// Discard accepts calls without effect.
	Discard.RecordExclusion(squat(), ReasonAvoidedJoint)
	Discard.RecordScore(squat(), Breakdown{})
}

func TestReport_ScoreForMissing(t *testing.T) {
	_, ok := Report{}.ScoreFor("Squat")
	assert.False(t, ok)
	assert.Empty(t, Report{}.ExclusionsFor("Squat"))
}
