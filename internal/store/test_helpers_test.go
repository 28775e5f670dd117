package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/fitrank/internal/attribution"
)

// createTestStore creates a new store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// sampleReport returns a report with two exclusions and two scores.
func sampleReport() attribution.Report {
	return attribution.Report{
		Exclusions: []attribution.Exclusion{
			{ExerciseID: "ex-deadlift", ExerciseName: "Deadlift", Reason: attribution.ReasonStrengthCeiling},
			{ExerciseID: "ex-dip", ExerciseName: "Dip", Reason: attribution.ReasonAvoidedJoint},
		},
		Scores: []attribution.ScoreEntry{
			{
				ExerciseID:   "ex-curl",
				ExerciseName: "Curl",
				Breakdown: attribution.Breakdown{
					Base: 5, Raw: 5, IncludeBoost: 4, Total: 9,
				},
			},
			{
				ExerciseID:   "ex-bench",
				ExerciseName: "Bench",
				Breakdown: attribution.Breakdown{
					Base:          5,
					TargetBonus:   3,
					TargetMatch:   attribution.MatchPrimary,
					LessenPenalty: 1.5,
					LessenMatch:   attribution.MatchSecondary,
					Raw:           6.5,
					Total:         6.5,
				},
			},
		},
	}
}
