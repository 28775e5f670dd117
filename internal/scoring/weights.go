package scoring

import (
	"fmt"
	"math"

	"github.com/roach88/fitrank/internal/exercise"
)

// Default scoring constants.
const (
	DefaultBase            = 5.0
	DefaultTargetPrimary   = 3.0
	DefaultTargetSecondary = 1.5
	DefaultLessenPrimary   = 3.0
	DefaultLessenSecondary = 1.5
	DefaultIncludePriority = 1.0
)

// Weights are the additive constants of the scoring formula.
// Lessen weights are magnitudes; they are subtracted.
type Weights struct {
	Base            float64 `json:"base" yaml:"base"`
	TargetPrimary   float64 `json:"target_primary" yaml:"target_primary"`
	TargetSecondary float64 `json:"target_secondary" yaml:"target_secondary"`
	LessenPrimary   float64 `json:"lessen_primary" yaml:"lessen_primary"`
	LessenSecondary float64 `json:"lessen_secondary" yaml:"lessen_secondary"`
	IncludePriority float64 `json:"include_priority" yaml:"include_priority"`
}

// DefaultWeights returns the production weights.
func DefaultWeights() Weights {
	return Weights{
		Base:            DefaultBase,
		TargetPrimary:   DefaultTargetPrimary,
		TargetSecondary: DefaultTargetSecondary,
		LessenPrimary:   DefaultLessenPrimary,
		LessenSecondary: DefaultLessenSecondary,
		IncludePriority: DefaultIncludePriority,
	}
}

// Validate rejects NaN, infinite and negative weights. IncludePriority
// must be strictly positive for requested exercises to strictly outrank
// the rest.
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"base", w.Base},
		{"target_primary", w.TargetPrimary},
		{"target_secondary", w.TargetSecondary},
		{"lessen_primary", w.LessenPrimary},
		{"lessen_secondary", w.LessenSecondary},
		{"include_priority", w.IncludePriority},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("weight %s must be finite, got %v", f.name, f.value)
		}
		if f.value < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %v", f.name, f.value)
		}
	}
	if w.IncludePriority <= 0 {
		return fmt.Errorf("weight include_priority must be positive, got %v", w.IncludePriority)
	}
	return nil
}

// Intensity is the client's requested training intensity.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// Intensities lists the known intensity values.
var Intensities = []Intensity{IntensityLow, IntensityModerate, IntensityHigh}

// IntensityTable maps (requested intensity, fatigue profile) to a score
// adjustment. Missing keys on either axis resolve to zero.
type IntensityTable map[Intensity]map[string]float64

// DefaultIntensityTable returns the production table: every known
// combination present and set to zero. Intensity currently does not affect
// exercise scores; the table stays wired so weights can be introduced
// through configuration.
func DefaultIntensityTable() IntensityTable {
	table := make(IntensityTable, len(Intensities))
	for _, in := range Intensities {
		row := make(map[string]float64, len(exercise.FatigueProfiles))
		for _, profile := range exercise.FatigueProfiles {
			row[profile] = 0
		}
		table[in] = row
	}
	return table
}

// Lookup returns the adjustment for (in, profile), or 0 if either is absent.
func (t IntensityTable) Lookup(in Intensity, profile string) float64 {
	if in == "" || profile == "" {
		return 0
	}
	row, ok := t[in]
	if !ok {
		return 0
	}
	return row[profile]
}
