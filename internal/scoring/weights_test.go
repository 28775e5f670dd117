package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/fitrank/internal/exercise"
)

func TestDefaultWeights_Valid(t *testing.T) {
	w := DefaultWeights()
	assert.NoError(t, w.Validate())
	assert.Greater(t, w.TargetPrimary, w.TargetSecondary)
	assert.Greater(t, w.LessenPrimary, w.LessenSecondary)
}

func TestWeights_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Weights)
		wantErr string
	}{
		{"negative base", func(w *Weights) { w.Base = -1 }, "base"},
		{"negative lessen", func(w *Weights) { w.LessenSecondary = -0.5 }, "lessen_secondary"},
		{"zero priority", func(w *Weights) { w.IncludePriority = 0 }, "include_priority"},
		{"negative priority", func(w *Weights) { w.IncludePriority = -1 }, "include_priority"},
		{"NaN lessen", func(w *Weights) { w.LessenPrimary = math.NaN() }, "lessen_primary must be finite"},
		{"NaN base", func(w *Weights) { w.Base = math.NaN() }, "base must be finite"},
		{"infinite target", func(w *Weights) { w.TargetSecondary = math.Inf(1) }, "target_secondary must be finite"},
		{"infinite priority", func(w *Weights) { w.IncludePriority = math.Inf(1) }, "include_priority must be finite"},
		{"NaN priority", func(w *Weights) { w.IncludePriority = math.NaN() }, "include_priority must be finite"},
		{"negative infinite base", func(w *Weights) { w.Base = math.Inf(-1) }, "base must be finite"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := DefaultWeights()
			tc.mutate(&w)
			err := w.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestDefaultIntensityTable_FullyWiredAndZero(t *testing.T) {
	table := DefaultIntensityTable()
	assert.Len(t, table, len(Intensities))
	for _, in := range Intensities {
		row, ok := table[in]
		if assert.True(t, ok, "missing row %s", in) {
			assert.Len(t, row, len(exercise.FatigueProfiles))
			for profile, v := range row {
				assert.Zero(t, v, "%s/%s", in, profile)
			}
		}
	}
}

func TestIntensityTable_LookupMissing(t *testing.T) {
	table := IntensityTable{IntensityHigh: {exercise.FatigueMetabolic: 2}}
	assert.Equal(t, 2.0, table.Lookup(IntensityHigh, exercise.FatigueMetabolic))
	assert.Zero(t, table.Lookup(IntensityHigh, "unknown"))
	assert.Zero(t, table.Lookup(IntensityLow, exercise.FatigueMetabolic))
	assert.Zero(t, table.Lookup("", exercise.FatigueMetabolic))
	assert.Zero(t, table.Lookup(IntensityHigh, ""))

	var nilTable IntensityTable
	assert.Zero(t, nilTable.Lookup(IntensityHigh, exercise.FatigueMetabolic))
}
