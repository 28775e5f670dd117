package catalog

import (
	"fmt"
	"slices"

	"github.com/roach88/fitrank/internal/exercise"
)

// Severity grades a lint Issue.
type Severity string

const (
	// SeverityError marks a record the filter will drop or never admit.
	SeverityError Severity = "error"
	// SeverityWarning marks data that loads but carries an unknown tag.
	SeverityWarning Severity = "warning"
)

// Issue is one data-quality finding for a catalog record.
type Issue struct {
	Index    int      `json:"index"`
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	label := i.ID
	if label == "" {
		label = fmt.Sprintf("#%d", i.Index)
	}
	return fmt.Sprintf("%s %s: %s: %s", i.Severity, label, i.Field, i.Message)
}

// Lint reports records the engine will silently drop or never admit:
// missing required fields and unknown level labels are errors; unknown
// fatigue profiles (which score no intensity adjustment) are warnings.
func Lint(pool []exercise.Exercise) []Issue {
	var issues []Issue
	for i, ex := range pool {
		add := func(field string, sev Severity, msg string) {
			issues = append(issues, Issue{
				Index:    i,
				ID:       ex.ID,
				Name:     ex.Name,
				Field:    field,
				Severity: sev,
				Message:  msg,
			})
		}

		for _, field := range exercise.MissingFields(ex) {
			add(field, SeverityError, "required field is empty")
		}
		if ex.Strength != "" && !ex.Strength.Valid() {
			add("strength_level", SeverityError, fmt.Sprintf("unknown level %q", ex.Strength))
		}
		if ex.Complexity != "" && !ex.Complexity.Valid() {
			add("complexity_level", SeverityError, fmt.Sprintf("unknown level %q", ex.Complexity))
		}
		if ex.FatigueProfile != "" && !slices.Contains(exercise.FatigueProfiles, ex.FatigueProfile) {
			add("fatigue_profile", SeverityWarning, fmt.Sprintf("unknown fatigue profile %q", ex.FatigueProfile))
		}
	}
	return issues
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}
