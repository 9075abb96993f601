package contract

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks bad input: out-of-range numbers, unknown enums,
	// topics outside the subject.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientData marks a model that cannot be trained from the corpus.
	ErrInsufficientData = errors.New("insufficient training data")

	// ErrIncompleteSubmission marks a quiz submission with unanswered questions.
	ErrIncompleteSubmission = errors.New("incomplete submission")
)

type PlanErrorCode string

const (
	ErrCodeValidation           PlanErrorCode = "VALIDATION_ERROR"
	ErrCodeInsufficientData     PlanErrorCode = "INSUFFICIENT_DATA"
	ErrCodeIncompleteSubmission PlanErrorCode = "INCOMPLETE_SUBMISSION"
	ErrCodeInternal             PlanErrorCode = "INTERNAL_ERROR"
)

// PlanError is the typed failure surfaced by plan generation and grading.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Unwrap exposes both the sentinel for the code and the underlying cause, so
// errors.Is works against either.
func (e *PlanError) Unwrap() []error {
	var errs []error
	switch e.Code {
	case ErrCodeValidation:
		errs = append(errs, ErrValidation)
	case ErrCodeInsufficientData:
		errs = append(errs, ErrInsufficientData)
	case ErrCodeIncompleteSubmission:
		errs = append(errs, ErrIncompleteSubmission)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Validationf builds a VALIDATION_ERROR.
func Validationf(format string, args ...any) *PlanError {
	return &PlanError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Validation wraps a lower-level input error as a VALIDATION_ERROR.
func Validation(err error) *PlanError {
	return &PlanError{Code: ErrCodeValidation, Message: err.Error(), Err: err}
}

// InsufficientData wraps a training failure.
func InsufficientData(err error) *PlanError {
	return &PlanError{Code: ErrCodeInsufficientData, Message: err.Error(), Err: err}
}

// IncompleteSubmission reports the unanswered question indices.
func IncompleteSubmission(missing []int) *PlanError {
	return &PlanError{
		Code:    ErrCodeIncompleteSubmission,
		Message: fmt.Sprintf("missing answer for question(s) %v", missing),
	}
}

// Internal wraps an unexpected failure.
func Internal(err error) *PlanError {
	return &PlanError{Code: ErrCodeInternal, Message: err.Error(), Err: err}
}

// CodeOf returns the PlanErrorCode carried by err, or ErrCodeInternal.
func CodeOf(err error) PlanErrorCode {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ErrCodeInternal
}
