package exercise

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel for malformed requests, as opposed to
// malformed data. Use errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

// InputErrorCode categorizes request contract violations.
type InputErrorCode string

const (
	// ErrCodeMissingPool indicates no candidate pool was provided.
	// An empty pool is valid and never produces this error.
	ErrCodeMissingPool InputErrorCode = "MISSING_POOL"
)

// InputError represents a request that violates the pipeline contract.
type InputError struct {
	// Code identifies the error category.
	Code InputErrorCode

	// Op names the pipeline that rejected the request ("filter", "score").
	Op string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is makes every InputError match ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewMissingPoolError creates an InputError for a nil candidate pool.
func NewMissingPoolError(op string) *InputError {
	return &InputError{
		Code:    ErrCodeMissingPool,
		Op:      op,
		Message: "candidate pool is required (pass an empty slice for no candidates)",
	}
}

// IsMissingPool returns true if err is an InputError for a nil pool.
// Uses errors.As to handle wrapped errors.
func IsMissingPool(err error) bool {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Code == ErrCodeMissingPool
	}
	return false
}
