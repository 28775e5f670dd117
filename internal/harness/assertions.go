package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/fitrank/internal/attribution"
	"github.com/roach88/fitrank/internal/exercise"
)

// scoreTolerance absorbs float rounding in YAML-supplied scores.
const scoreTolerance = 1e-9

// AssertionError is returned when an assertion fails.
// It includes the ranked list to help debug the failure.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Ranked   []string // Full ranked list for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "  Ranked: %v", e.Ranked)

	return buf.String()
}

// evaluate dispatches an assertion against a result.
func evaluate(r *Result, a Assertion) error {
	switch a.Type {
	case AssertSelected:
		return assertSelected(r, a)
	case AssertNotSelected:
		return assertNotSelected(r, a)
	case AssertOrder:
		return assertOrder(r, a)
	case AssertTop:
		return assertTop(r, a)
	case AssertScore:
		return assertScore(r, a)
	case AssertExcluded:
		return assertExcluded(r, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// rankIndex maps name keys to ranked positions.
func rankIndex(r *Result) map[string]int {
	idx := make(map[string]int, len(r.Ranked))
	for i, s := range r.Ranked {
		key := exercise.NameKey(s.Name)
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return idx
}

// assertSelected checks the ranked list holds exactly the named exercises.
func assertSelected(r *Result, a Assertion) error {
	want := make([]string, len(a.Names))
	for i, n := range a.Names {
		want[i] = exercise.NameKey(n)
	}
	got := make([]string, len(r.Ranked))
	for i, s := range r.Ranked {
		got[i] = exercise.NameKey(s.Name)
	}
	slices.Sort(want)
	slices.Sort(got)

	if !slices.Equal(want, got) {
		return &AssertionError{
			Type:     AssertSelected,
			Expected: fmt.Sprintf("exactly %v", a.Names),
			Actual:   fmt.Sprintf("%v", r.RankedNames()),
			Ranked:   r.RankedNames(),
		}
	}
	return nil
}

// assertNotSelected checks none of the named exercises is ranked.
func assertNotSelected(r *Result, a Assertion) error {
	idx := rankIndex(r)
	for _, name := range a.Names {
		if pos, ok := idx[exercise.NameKey(name)]; ok {
			return &AssertionError{
				Type:     AssertNotSelected,
				Expected: fmt.Sprintf("%s not ranked", name),
				Actual:   fmt.Sprintf("ranked at position %d", pos+1),
				Ranked:   r.RankedNames(),
			}
		}
	}
	return nil
}

// assertOrder checks the named exercises appear in the given relative
// order. Intervening exercises are allowed.
func assertOrder(r *Result, a Assertion) error {
	idx := rankIndex(r)

	for _, name := range a.Names {
		if _, ok := idx[exercise.NameKey(name)]; !ok {
			return &AssertionError{
				Type:     AssertOrder,
				Expected: fmt.Sprintf("all exercises present: %v", a.Names),
				Actual:   fmt.Sprintf("missing exercise: %s", name),
				Ranked:   r.RankedNames(),
			}
		}
	}

	for i := 1; i < len(a.Names); i++ {
		prev, curr := a.Names[i-1], a.Names[i]
		pp, cp := idx[exercise.NameKey(prev)], idx[exercise.NameKey(curr)]
		if pp >= cp {
			return &AssertionError{
				Type:     AssertOrder,
				Expected: fmt.Sprintf("exercises in order: %v", a.Names),
				Actual: fmt.Sprintf("%s (pos %d) should be before %s (pos %d)",
					prev, pp+1, curr, cp+1),
				Ranked: r.RankedNames(),
			}
		}
	}
	return nil
}

// assertTop checks the ranked list starts with exactly the named exercises.
func assertTop(r *Result, a Assertion) error {
	ranked := r.RankedNames()
	if len(ranked) < len(a.Names) {
		return &AssertionError{
			Type:     AssertTop,
			Expected: fmt.Sprintf("top %d: %v", len(a.Names), a.Names),
			Actual:   fmt.Sprintf("only %d ranked", len(ranked)),
			Ranked:   ranked,
		}
	}
	for i, name := range a.Names {
		if exercise.NameKey(name) != exercise.NameKey(ranked[i]) {
			return &AssertionError{
				Type:     AssertTop,
				Expected: fmt.Sprintf("top %d: %v", len(a.Names), a.Names),
				Actual:   fmt.Sprintf("position %d is %s", i+1, ranked[i]),
				Ranked:   ranked,
			}
		}
	}
	return nil
}

// assertScore checks the final score of one exercise.
func assertScore(r *Result, a Assertion) error {
	idx := rankIndex(r)
	pos, ok := idx[exercise.NameKey(a.Name)]
	if !ok {
		return &AssertionError{
			Type:     AssertScore,
			Expected: fmt.Sprintf("%s scored %v", a.Name, *a.Score),
			Actual:   "not ranked",
			Ranked:   r.RankedNames(),
		}
	}

	got := r.Ranked[pos].Score
	diff := got - *a.Score
	if diff > scoreTolerance || diff < -scoreTolerance {
		return &AssertionError{
			Type:     AssertScore,
			Expected: fmt.Sprintf("%s scored %v", a.Name, *a.Score),
			Actual:   fmt.Sprintf("scored %v", got),
			Ranked:   r.RankedNames(),
		}
	}
	return nil
}

// assertExcluded checks the stored exclusion reasons of one exercise.
func assertExcluded(r *Result, a Assertion) error {
	got := r.Report.ExclusionsFor(a.Name)
	if !slices.Equal(got, a.Reasons) {
		return &AssertionError{
			Type:     AssertExcluded,
			Expected: fmt.Sprintf("%s excluded for %v", a.Name, a.Reasons),
			Actual:   fmt.Sprintf("reasons %v", reasonsOrNone(got)),
			Ranked:   r.RankedNames(),
		}
	}
	return nil
}

func reasonsOrNone(reasons []attribution.Reason) any {
	if len(reasons) == 0 {
		return "none"
	}
	return reasons
}
