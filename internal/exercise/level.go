package exercise

// Level is an ordinal drawn from the fixed, totally ordered set
// {very_low, low, moderate, high}. The zero value means "absent".
type Level string

// Level values in ascending order.
const (
	LevelVeryLow  Level = "very_low"
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Levels is the fixed ordering used by cascading checks.
// NEVER reorder: index position is the ordinal.
var Levels = []Level{LevelVeryLow, LevelLow, LevelModerate, LevelHigh}

// Index returns the position of l in Levels, or -1 when l is absent or
// matches no entry in the table.
func (l Level) Index() int {
	for i, known := range Levels {
		if known == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the four known labels.
func (l Level) Valid() bool {
	return l.Index() >= 0
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}

// AllowedLevels returns every level at position <= index(ceiling).
//
// A ceiling that is absent or unknown yields an empty allowed set, so the
// cascading check it drives admits nothing.
func AllowedLevels(ceiling Level) []Level {
	idx := ceiling.Index()
	if idx < 0 {
		return nil
	}
	allowed := make([]Level, idx+1)
	copy(allowed, Levels[:idx+1])
	return allowed
}

// Allows reports whether level falls within the cascade of ceiling.
// An absent or unknown level on either side is never allowed.
func Allows(ceiling, level Level) bool {
	c := ceiling.Index()
	l := level.Index()
	if c < 0 || l < 0 {
		return false
	}
	return l <= c
}
