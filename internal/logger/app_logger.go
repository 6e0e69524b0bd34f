// internal/logger/app_logger.go

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/orgoj/daylog/internal/logrecord"
)

// AppLogger is the process diagnostic logger. Failures of the day-file
// writers land here, so a broken log destination never interrupts the
// instrumented program. Writes go to stderr and optionally to a
// size-rotated diagnostics file.
type AppLogger struct {
	mu     sync.Mutex
	writer io.Writer
	mirror io.WriteCloser // optional lumberjack file, nil when disabled
	level  logrecord.Level
}

// Global instance
var (
	defaultLogger *AppLogger
	once          sync.Once
)

// GetAppLogger returns the singleton instance of the application logger.
func GetAppLogger() *AppLogger {
	once.Do(func() {
		defaultLogger = &AppLogger{
			writer: os.Stderr,
			level:  logrecord.WARN, // Default level
		}
	})
	return defaultLogger
}

// SetLogLevel sets the minimum log level.
func (l *AppLogger) SetLogLevel(level logrecord.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetLogLevelFromString sets the log level from a string name.
func (l *AppLogger) SetLogLevelFromString(levelName string) error {
	level, err := logrecord.ParseLevel(strings.ToUpper(levelName))
	if err != nil {
		return err
	}
	l.SetLogLevel(level)
	return nil
}

// SetFile mirrors diagnostic output to a size-rotated file. maxSizeMB
// and maxBackups follow lumberjack semantics; zero values mean its
// defaults.
func (l *AppLogger) SetFile(path string, maxSizeMB, maxBackups int, compress bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.mirror != nil {
		_ = l.mirror.Close()
		l.mirror = nil
	}
	if path == "" {
		return
	}
	l.mirror = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   compress,
		LocalTime:  false, // Use UTC time for rotated backups
	}
}

// logf formats and logs a message if the level is sufficient.
// The lock is only held during checks and the write, not during formatting.
func (l *AppLogger) logf(level logrecord.Level, format string, args ...interface{}) {
	l.mu.Lock()
	shouldSkip := level < l.level
	l.mu.Unlock()

	if shouldSkip {
		return
	}

	now := time.Now().Format("2006-01-02T15:04:05Z07:00")
	message := fmt.Sprintf(format, args...)
	logLine := fmt.Sprintf("[%s] %s: %s\n", now, level, message)

	l.mu.Lock()
	_, _ = fmt.Fprint(l.writer, logLine)
	if l.mirror != nil {
		_, _ = io.WriteString(l.mirror, logLine)
	}
	l.mu.Unlock()

	// Immediately exit for FATAL logs
	if level == logrecord.FATAL {
		os.Exit(1)
	}
}

// Log methods for different levels

// Debug logs a message at DEBUG level
func (l *AppLogger) Debug(format string, args ...interface{}) {
	l.logf(logrecord.DEBUG, format, args...)
}

// Info logs a message at INFO level
func (l *AppLogger) Info(format string, args ...interface{}) {
	l.logf(logrecord.INFO, format, args...)
}

// Warn logs a message at WARN level
func (l *AppLogger) Warn(format string, args ...interface{}) {
	l.logf(logrecord.WARN, format, args...)
}

// Error logs a message at ERROR level
func (l *AppLogger) Error(format string, args ...interface{}) {
	l.logf(logrecord.ERROR, format, args...)
}

// Fatal logs a message at FATAL level and exits the program
func (l *AppLogger) Fatal(format string, args ...interface{}) {
	l.logf(logrecord.FATAL, format, args...)
}
