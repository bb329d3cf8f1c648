package errors

// ErrorCode identifies a failure class. Codes are snake_case and prefixed
// with the owning package, e.g. "cpu_counter_parse_failed".
type ErrorCode string

// Messages maps codes to the human-readable text used by Error().
type Messages map[ErrorCode]string

// Coder is implemented by any error that carries an ErrorCode.
type Coder interface {
	Code() ErrorCode
}

// Error is a coded error with optional message, data and cause.
type Error interface {
	error
	Coder
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory creates coded errors.
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
