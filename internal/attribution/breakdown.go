package attribution

// MatchKind records which muscle rule produced a bonus or penalty.
type MatchKind string

const (
	MatchNone      MatchKind = ""
	MatchPrimary   MatchKind = "primary"
	MatchSecondary MatchKind = "secondary"
)

// Term labels used by Bonuses and Penalties.
const (
	TermTargetPrimary   = "target_primary"
	TermTargetSecondary = "target_secondary"
	TermLessenPrimary   = "lessen_primary"
	TermLessenSecondary = "lessen_secondary"
	TermIntensity       = "intensity"
	TermGoal            = "goal"
	TermIncludeBoost    = "include_boost"
)

// Term is a single labelled contribution to a score.
type Term struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Breakdown is the exact arithmetic behind one exercise's score.
//
// Raw = Base + TargetBonus - LessenPenalty + IntensityAdjustment + GoalAdjustment
// Total = max(Raw, 0), except for include-boosted exercises, whose Total is
// the pool maximum plus the include priority and whose IncludeBoost is
// Total - Raw.
type Breakdown struct {
	Base float64 `json:"base"`

	TargetBonus float64   `json:"target_bonus"`
	TargetMatch MatchKind `json:"target_match,omitempty"`

	// LessenPenalty is stored as a positive magnitude and subtracted.
	LessenPenalty float64   `json:"lessen_penalty"`
	LessenMatch   MatchKind `json:"lessen_match,omitempty"`

	IntensityAdjustment float64 `json:"intensity_adjustment"`
	GoalAdjustment      float64 `json:"goal_adjustment"`

	// IncludeBoost is measured from Raw, not the floored score, so
	// Raw + IncludeBoost == Total even when Raw is negative.
	IncludeBoost float64 `json:"include_boost"`

	Raw   float64 `json:"raw"`
	Total float64 `json:"total"`
}

// Boosted reports whether the include-priority pass touched this score.
func (b Breakdown) Boosted() bool {
	return b.IncludeBoost != 0
}

// Bonuses returns the positive contributions, in a fixed order.
// Adjustments appear here when positive and in Penalties when negative.
func (b Breakdown) Bonuses() []Term {
	var terms []Term
	switch b.TargetMatch {
	case MatchPrimary:
		terms = append(terms, Term{Label: TermTargetPrimary, Value: b.TargetBonus})
	case MatchSecondary:
		terms = append(terms, Term{Label: TermTargetSecondary, Value: b.TargetBonus})
	}
	if b.IntensityAdjustment > 0 {
		terms = append(terms, Term{Label: TermIntensity, Value: b.IntensityAdjustment})
	}
	if b.GoalAdjustment > 0 {
		terms = append(terms, Term{Label: TermGoal, Value: b.GoalAdjustment})
	}
	if b.IncludeBoost > 0 {
		terms = append(terms, Term{Label: TermIncludeBoost, Value: b.IncludeBoost})
	}
	return terms
}

// Penalties returns the negative contributions as positive magnitudes.
func (b Breakdown) Penalties() []Term {
	var terms []Term
	switch b.LessenMatch {
	case MatchPrimary:
		terms = append(terms, Term{Label: TermLessenPrimary, Value: b.LessenPenalty})
	case MatchSecondary:
		terms = append(terms, Term{Label: TermLessenSecondary, Value: b.LessenPenalty})
	}
	if b.IntensityAdjustment < 0 {
		terms = append(terms, Term{Label: TermIntensity, Value: -b.IntensityAdjustment})
	}
	if b.GoalAdjustment < 0 {
		terms = append(terms, Term{Label: TermGoal, Value: -b.GoalAdjustment})
	}
	if b.IncludeBoost < 0 {
		terms = append(terms, Term{Label: TermIncludeBoost, Value: -b.IncludeBoost})
	}
	return terms
}
