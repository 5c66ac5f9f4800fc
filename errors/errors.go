package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified tablerw error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// InvalidConfig creates a new AppError for a rejected configuration value.
func InvalidConfig(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("Invalid configuration: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for struct validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// TypeMismatch creates a new AppError for a value that cannot be stored in or
// converted to the requested type.
func TypeMismatch(want string, got any) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("Cannot convert %T to %s", got, want),
		Details: map[string]any{"want": want, "got": fmt.Sprintf("%T", got)},
	}
}

// OutOfRange creates a new AppError for a cell coordinate the sink cannot address.
func OutOfRange(row, col int) *AppError {
	return &AppError{
		Code: ErrCodeOutOfRange, Message: fmt.Sprintf("Cell (%d, %d) is out of range", row, col),
		Details: map[string]any{"row": row, "col": col},
	}
}

// SinkFailure creates a new AppError for a failing sink backend at a cell.
func SinkFailure(row, col int, cause error) *AppError {
	return &AppError{
		Code: ErrCodeSinkFailure, Message: fmt.Sprintf("Sink failed at cell (%d, %d)", row, col),
		Details: map[string]any{"row": row, "col": col}, Cause: cause,
	}
}

// AlreadyRegistered creates a new AppError for a duplicate strategy registration.
func AlreadyRegistered(kind string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyRegistered, Message: fmt.Sprintf("A strategy for %s is already registered.", kind),
		Details: map[string]any{"kind": kind},
	}
}

// NotRegistered creates a new AppError for a missing strategy registration.
func NotRegistered(kind string) *AppError {
	return &AppError{
		Code: ErrCodeNotRegistered, Message: fmt.Sprintf("No strategy is registered for %s.", kind),
		Details: map[string]any{"kind": kind},
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.", Cause: cause,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
