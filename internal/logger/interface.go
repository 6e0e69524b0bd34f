// internal/logger/interface.go

package logger

import "github.com/orgoj/daylog/internal/logrecord"

// Writer defines the interface for all log output destinations.
// Each destination type (text file, NDJSON file, console) implements
// this interface and renders the record into its own line format.
type Writer interface {
	// Write renders and persists a single log record. The record must be
	// durable (flushed) before Write returns.
	Write(rec *logrecord.Record) error

	// Close releases the destination's resources, such as the currently
	// open day file handle.
	Close() error

	// Name returns the logger name the writer is attached to.
	Name() string
}
