package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fitrank/internal/exercise"
	"github.com/roach88/fitrank/internal/filter"
	"github.com/roach88/fitrank/internal/scoring"
)

func TestLoadRequest(t *testing.T) {
	path := writeFile(t, t.TempDir(), "request.yaml", `
eligibility:
  strength_ceiling: moderate
  complexity_ceiling: low
  include: [Deadlift]
  avoid: [Burpee]
  avoid_joints: [shoulder]
scoring:
  target_muscles: [chest]
  lessen_muscles: [triceps]
  intensity: high
  include: [Deadlift]
  goal: strength
`)

	req, err := LoadRequest(path)
	require.NoError(t, err)

	assert.Equal(t, filter.Criteria{
		StrengthCeiling:   exercise.LevelModerate,
		ComplexityCeiling: exercise.LevelLow,
		Include:           []string{"Deadlift"},
		Avoid:             []string{"Burpee"},
		AvoidJoints:       []string{"shoulder"},
	}, req.Eligibility)
	assert.Equal(t, scoring.Criteria{
		TargetMuscles: []string{"chest"},
		LessenMuscles: []string{"triceps"},
		Intensity:     scoring.IntensityHigh,
		Include:       []string{"Deadlift"},
		Goal:          scoring.GoalStrength,
	}, req.Scoring)
}

func TestLoadRequest_Errors(t *testing.T) {
	_, err := LoadRequest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read request file")

	_, err = ParseRequest([]byte("eligibility:\n  strength: low\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseRequest_Empty(t *testing.T) {
	req, err := ParseRequest(nil)
	require.NoError(t, err)
	assert.Equal(t, &Request{}, req)
}
