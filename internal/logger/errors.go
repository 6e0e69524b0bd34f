// internal/logger/errors.go

package logger

import "fmt"

// RotationError reports a failure to close, create or open a day file
// while switching rotation targets. Non-fatal: the write for that record
// is dropped and the failure lands in the application logger.
type RotationError struct {
	Path string
	Op   string // "close", "mkdir" or "open"
	Err  error
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("log rotation %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *RotationError) Unwrap() error { return e.Err }

// SerializationError reports a record that could not be rendered to
// JSON. Handled the same way as RotationError.
type SerializationError struct {
	Logger string
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize record for logger '%s': %v", e.Logger, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
