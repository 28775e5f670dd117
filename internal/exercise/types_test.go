package exercise

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields(t *testing.T) {
	complete := Exercise{
		ID:            "ex-1",
		Name:          "Squat",
		PrimaryMuscle: "quads",
		Strength:      LevelModerate,
		Complexity:    LevelLow,
	}
	assert.Nil(t, MissingFields(complete))
	assert.True(t, complete.IsComplete())

	testCases := []struct {
		name   string
		mutate func(*Exercise)
		want   []string
	}{
		{"no id", func(e *Exercise) { e.ID = "" }, []string{"id"}},
		{"no name", func(e *Exercise) { e.Name = "" }, []string{"name"}},
		{"no primary", func(e *Exercise) { e.PrimaryMuscle = "" }, []string{"primary_muscle"}},
		{"no strength", func(e *Exercise) { e.Strength = "" }, []string{"strength_level"}},
		{"no complexity", func(e *Exercise) { e.Complexity = "" }, []string{"complexity_level"}},
		{"empty record", func(e *Exercise) { *e = Exercise{} }, []string{"id", "name", "primary_muscle", "strength_level", "complexity_level"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ex := complete
			tc.mutate(&ex)
			assert.Equal(t, tc.want, MissingFields(ex))
			assert.False(t, ex.IsComplete())
		})
	}
}

func TestMissingFields_CorruptLevelIsPresent(t *testing.T) {
	// A corrupt level is present data; the cascade rejects it later.
	ex := Exercise{ID: "x", Name: "X", PrimaryMuscle: "core", Strength: "extreme", Complexity: LevelLow}
	assert.True(t, ex.IsComplete())
}

func TestInputError(t *testing.T) {
	err := NewMissingPoolError("filter")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, IsMissingPool(err))
	assert.Contains(t, err.Error(), "MISSING_POOL")
	assert.Contains(t, err.Error(), "filter")

	wrapped := fmt.Errorf("select: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	assert.True(t, IsMissingPool(wrapped))

	assert.False(t, IsMissingPool(errors.New("other")))
	assert.False(t, IsMissingPool(nil))
}
