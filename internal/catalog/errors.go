package catalog

import (
	"errors"
	"fmt"

	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Error codes for catalog loading failures.
const (
	ErrCodeNotFound    = "E001" // Path not found
	ErrCodeNoFiles     = "E002" // No catalog files found
	ErrCodeLoadFailed  = "E003" // CUE load failed
	ErrCodeBuildFailed = "E004" // CUE build failed
	ErrCodeParse       = "E005" // YAML parse failed
	ErrCodeFormat      = "E006" // Unsupported file extension
	ErrCodeField       = "E101" // Field has the wrong type or is unknown
	ErrCodeDuplicate   = "E102" // Two records share an id
)

// CompileError is a field-level error with its CUE source position.
type CompileError struct {
	Code    string
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Code, e.Field, e.Message)
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

// ErrorCode returns the code of a CompileError, or "" for other errors.
func ErrorCode(err error) string {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error, code, field string) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &CompileError{Code: code, Field: field, Message: err.Error()}
	}

	first := errs[0]
	ce := &CompileError{Code: code, Field: field, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		ce.Pos = positions[0]
	}
	return ce
}
