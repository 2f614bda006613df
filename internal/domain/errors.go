package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur while building or querying an engine.
var (
	// ErrEmptyCorpus indicates that the corpus contains no answers at all,
	// so the answer scale cannot be derived.
	ErrEmptyCorpus = errors.New("corpus contains no answers")

	// ErrUnknownCandidate indicates that a query referenced a candidate id
	// outside the engine index.
	ErrUnknownCandidate = errors.New("unknown candidate")

	// ErrUnknownGroup indicates that a group name does not exist in the corpus.
	ErrUnknownGroup = errors.New("unknown group")

	// ErrInvalidOpinion indicates that an opinion weight is not a finite number.
	ErrInvalidOpinion = errors.New("invalid opinion weight")

	// ErrInvalidConfiguration indicates that configuration is invalid or incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// UnknownCandidateError reports a candidate id that is not in the index.
type UnknownCandidateError struct {
	// ID is the requested candidate id.
	ID int

	// Size is the number of candidates in the index.
	Size int
}

// Error implements the error interface for UnknownCandidateError.
func (e *UnknownCandidateError) Error() string {
	return fmt.Sprintf("unknown candidate: id=%d, index size=%d", e.ID, e.Size)
}

// Unwrap returns ErrUnknownCandidate so callers can match with errors.Is.
func (e *UnknownCandidateError) Unwrap() error { return ErrUnknownCandidate }

// UnknownGroupError reports a group name that matched nothing, optionally
// carrying the closest known name.
type UnknownGroupError struct {
	Name       string
	Suggestion string
}

// Error implements the error interface for UnknownGroupError.
func (e *UnknownGroupError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown group %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown group %q", e.Name)
}

// Unwrap returns ErrUnknownGroup so callers can match with errors.Is.
func (e *UnknownGroupError) Unwrap() error { return ErrUnknownGroup }

// ValidationError represents an error that occurred during validation.
// It can contain multiple validation failures.
type ValidationError struct {
	// Entity is the name of the entity that failed validation.
	Entity string

	// Errors contains the list of validation error messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// AddError adds a new error message to the validation error.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates a new ValidationError for the given entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: make([]string, 0),
	}
}
