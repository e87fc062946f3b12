package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a monetary figure outside its permitted range.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidState indicates an operation attempted against a resource whose
// current status forbids it (e.g. editing a non-draft invoice).
var ErrInvalidState = errors.New("operation not permitted in current state")

// ErrPersistence indicates the transactional store rejected or failed a write.
// The surrounding transaction guarantees no partial effect is observable.
var ErrPersistence = errors.New("persistence error")

// ErrRender indicates the document renderer could not produce output.
var ErrRender = errors.New("render error")

// ErrLimitReached indicates a free-plan usage limit was hit.
var ErrLimitReached = errors.New("plan limit reached")

// ValidationError carries the first offending field path of a failed
// validation. Callers match it with errors.Is(err, ErrValidation) and can
// recover the field via errors.As.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a field-scoped validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AppError wraps a lower-level failure with a status code and a
// human-readable message. Used mainly by the repository layer. Each AppError
// also matches one of the sentinel errors above through errors.Is: 400 maps
// to ErrValidation, 404 to ErrNotFound, everything else to ErrPersistence.
type AppError struct {
	Code    int
	Message string
	Err     error

	kind error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	kind := ErrPersistence
	switch code {
	case 400:
		kind = ErrValidation
	case 404:
		kind = ErrNotFound
	}
	return &AppError{Code: code, Message: message, Err: err, kind: kind}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, kind: ErrNotFound}
}
