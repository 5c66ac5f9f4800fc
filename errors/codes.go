package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates a builder or pipeline configuration was rejected.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates a configuration struct failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Sink errors
const (
	// ErrCodeTypeMismatch indicates a value the sink strategy cannot represent or convert.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeOutOfRange indicates a cell coordinate outside the sink's addressable area.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
	// ErrCodeSinkFailure indicates the sink backend failed to get or set a cell.
	ErrCodeSinkFailure ErrorCode = "SINK_FAILURE"
)

// Registry errors
const (
	// ErrCodeAlreadyRegistered indicates a strategy is already registered for a sink type.
	ErrCodeAlreadyRegistered ErrorCode = "ALREADY_REGISTERED"
	// ErrCodeNotRegistered indicates no strategy is registered for a sink type.
	ErrCodeNotRegistered ErrorCode = "NOT_REGISTERED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
