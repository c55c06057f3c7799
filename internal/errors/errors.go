package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can decide how far it propagates
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested content type or definition was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates something was bound or created twice
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates an internal error
	CodeInternal Code = "internal"

	// CodeValidation indicates a validation error
	CodeValidation Code = "validation"

	// CodeDuplicateRegistration is fatal: two content objects of the same type
	CodeDuplicateRegistration Code = "duplicate_registration"

	// CodeIncompleteDefinition is fatal for one content object only
	CodeIncompleteDefinition Code = "incomplete_definition"

	// CodeUnresolvedCorrelation is diagnostic only
	CodeUnresolvedCorrelation Code = "unresolved_correlation"

	// CodeAugmentationFailure is isolated to a single augmentation call
	CodeAugmentationFailure Code = "augmentation_failure"

	// CodeNonPositiveInterval is local to a single status effect tick
	CodeNonPositiveInterval Code = "non_positive_interval"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of a coded cause
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var coded *Error
	if errors.As(err, &coded) {
		return &Error{
			Code:    coded.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(coded.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// DuplicateRegistration reports a second instance of an already registered content type
func DuplicateRegistration(typeName string) *Error {
	return Newf(CodeDuplicateRegistration,
		"singleton content type %q was instantiated twice", typeName).
		WithMeta("type", typeName)
}

// IncompleteDefinition reports the required fields a content object left empty
func IncompleteDefinition(name string, missing []string) *Error {
	return Newf(CodeIncompleteDefinition,
		"definition %q is missing required fields %v", name, missing).
		WithMeta("definition", name).
		WithMeta("missing", missing)
}

// UnresolvedCorrelation reports a cross-reference token that matched no definition
func UnresolvedCorrelation(owner, token string) *Error {
	return Newf(CodeUnresolvedCorrelation,
		"%s declares cross-reference %q which resolves to no known definition", owner, token).
		WithMeta("owner", owner).
		WithMeta("token", token)
}

// AugmentationFailure wraps the failure of one augmentation on one event firing
func AugmentationFailure(event, owner string, cause error) *Error {
	if cause == nil {
		cause = errors.New("unknown failure")
	}
	wrapped := WrapWithCode(cause, CodeAugmentationFailure,
		fmt.Sprintf("augmentation %s on %s failed", owner, event))
	return wrapped.WithMeta("event", event).WithMeta("owner", owner)
}

// NonPositiveInterval reports a tick whose rescaled interval was not positive
func NonPositiveInterval(kind string, interval float64) *Error {
	return Newf(CodeNonPositiveInterval,
		"effective interval for %s computed as %g; skipping tick", kind, interval).
		WithMeta("kind", kind).
		WithMeta("interval", interval)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsDuplicateRegistration checks for a duplicate content type registration
func IsDuplicateRegistration(err error) bool {
	return Is(err, CodeDuplicateRegistration)
}

// IsIncompleteDefinition checks for a definition with missing required fields
func IsIncompleteDefinition(err error) bool {
	return Is(err, CodeIncompleteDefinition)
}

// IsUnresolvedCorrelation checks for an unresolved cross-reference token
func IsUnresolvedCorrelation(err error) bool {
	return Is(err, CodeUnresolvedCorrelation)
}

// IsAugmentationFailure checks for an isolated augmentation failure
func IsAugmentationFailure(err error) bool {
	return Is(err, CodeAugmentationFailure)
}

// IsNonPositiveInterval checks for a skipped status effect tick
func IsNonPositiveInterval(err error) bool {
	return Is(err, CodeNonPositiveInterval)
}

// IsFatal reports whether the error must abort startup
func IsFatal(err error) bool {
	return IsDuplicateRegistration(err)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
