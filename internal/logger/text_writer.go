// internal/logger/text_writer.go

package logger

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/orgoj/daylog/internal/logrecord"
)

// TextWriter appends formatted plain-text lines to a per-day file under
// <root>/<name>/, e.g. logs/app/07_03_26_logs.log.
type TextWriter struct {
	mu   sync.Mutex
	file *rotatingFile
	name string
}

// NewTextWriter creates a text day-file writer for the given logger name.
func NewTextWriter(root, name string) (*TextWriter, error) {
	if root == "" {
		return nil, fmt.Errorf("text writer requires a root directory")
	}
	if name == "" {
		return nil, fmt.Errorf("text writer requires a logger name")
	}
	return &TextWriter{
		file: newRotatingFile(filepath.Join(root, name), TextSuffix),
		name: name,
	}, nil
}

// Write appends one text line for the record, rotating to a new day file
// first if the date key changed since the previous write.
func (w *TextWriter) Write(rec *logrecord.Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.writeLine(FormatTextLine(rec))
}

// Close closes the currently open day file, if any.
func (w *TextWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.close()
}

// Name returns the logger name the writer is attached to.
func (w *TextWriter) Name() string {
	return w.name
}

// FormatTextLine renders a record in the fixed column order used by the
// text day files and the console mirror:
//
//	[2026-03-07 10:30:00] [main.go] [goroutine-1] [INFO] - message
func FormatTextLine(rec *logrecord.Record) []byte {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(rec.Time.Format(logrecord.TimeLayout))
	sb.WriteString("] [")
	sb.WriteString(rec.File)
	sb.WriteString("] [")
	sb.WriteString(rec.Thread)
	sb.WriteString("] [")
	sb.WriteString(rec.Level.String())
	sb.WriteString("] - ")
	sb.WriteString(rec.Message)
	return []byte(sb.String())
}

// Ensure TextWriter implements the Writer interface.
var _ Writer = (*TextWriter)(nil)
