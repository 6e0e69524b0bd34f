// internal/logger/facade.go

package logger

import (
	"fmt"
	"time"

	"github.com/orgoj/daylog/internal/logrecord"
)

// Logger is a named, leveled facade that fans one record per log call
// out to its attached writers. A call below the minimum level is a
// no-op: no record is built and no I/O happens. Writer failures are
// reported to the application logger and never reach the caller.
//
// The facade is immutable after construction; each writer serializes its
// own writes, so concurrent calls from multiple goroutines are safe.
type Logger struct {
	name    string
	level   logrecord.Level
	writers []Writer
	app     *AppLogger
}

// NewLogger creates a facade with the given minimum level and ordered
// set of writers. Facades are normally obtained through a Registry,
// which guarantees one instance per name.
func NewLogger(name string, level logrecord.Level, writers ...Writer) *Logger {
	return &Logger{
		name:    name,
		level:   level,
		writers: writers,
		app:     GetAppLogger(),
	}
}

// Name returns the logger name.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the configured minimum level.
func (l *Logger) Level() logrecord.Level {
	return l.level
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(logrecord.DEBUG, nil, format, args...)
}

// Info logs a message at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(logrecord.INFO, nil, format, args...)
}

// Warn logs a message at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(logrecord.WARN, nil, format, args...)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(logrecord.ERROR, nil, format, args...)
}

// Fatal logs a message at FATAL level. Unlike AppLogger.Fatal it does
// not exit; FATAL is just the highest record level.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(logrecord.FATAL, nil, format, args...)
}

// DebugErr logs at DEBUG level with the fault captured from err.
func (l *Logger) DebugErr(err error, format string, args ...interface{}) {
	l.log(logrecord.DEBUG, logrecord.CaptureFault(err), format, args...)
}

// InfoErr logs at INFO level with the fault captured from err.
func (l *Logger) InfoErr(err error, format string, args ...interface{}) {
	l.log(logrecord.INFO, logrecord.CaptureFault(err), format, args...)
}

// WarnErr logs at WARN level with the fault captured from err.
func (l *Logger) WarnErr(err error, format string, args ...interface{}) {
	l.log(logrecord.WARN, logrecord.CaptureFault(err), format, args...)
}

// ErrorErr logs at ERROR level with the fault captured from err.
func (l *Logger) ErrorErr(err error, format string, args ...interface{}) {
	l.log(logrecord.ERROR, logrecord.CaptureFault(err), format, args...)
}

// FatalErr logs at FATAL level with the fault captured from err.
func (l *Logger) FatalErr(err error, format string, args ...interface{}) {
	l.log(logrecord.FATAL, logrecord.CaptureFault(err), format, args...)
}

// log builds one record at the instant of the call and forwards it to
// every attached writer.
func (l *Logger) log(level logrecord.Level, fault *logrecord.Fault, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	rec := logrecord.Record{
		Time:    time.Now().Truncate(time.Second),
		Logger:  l.name,
		Level:   level,
		File:    logrecord.CallerFile(2),
		Thread:  logrecord.GoroutineID(),
		Message: fmt.Sprintf(format, args...),
		Fault:   fault,
	}

	for _, w := range l.writers {
		if err := w.Write(&rec); err != nil {
			l.app.Error("Writer for logger '%s' failed: %v", l.name, err)
		}
	}
}
