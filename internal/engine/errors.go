package engine

import (
	"errors"
	"fmt"
)

// Stage names the part of a selection that failed.
type Stage string

const (
	StageContext Stage = "context"
	StageFilter  Stage = "filter"
	StageScore   Stage = "score"
)

// SelectError reports a failed selection run.
//
// Select never returns partial results: when SelectError is returned the
// Result is nil.
type SelectError struct {
	// RunID identifies the failed run.
	RunID string

	// Stage is where the failure happened.
	Stage Stage

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *SelectError) Error() string {
	return fmt.Sprintf("select %s: %s: %v", e.RunID, e.Stage, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *SelectError) Unwrap() error {
	return e.Err
}

// FailedStage returns the stage of a SelectError, or "" for other errors.
// Uses errors.As to handle wrapped errors.
func FailedStage(err error) Stage {
	var se *SelectError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
