// internal/logger/json_writer.go

package logger

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/orgoj/daylog/internal/logrecord"
)

// JSONWriter appends one JSON object per record (NDJSON) to a per-day
// file under <root>/<name>/, e.g. logs/app/07_03_26_logs.ndjson. It
// shares the rotation policy of TextWriter but uses the .ndjson suffix,
// so both variants can serve the same logger name side by side.
type JSONWriter struct {
	mu   sync.Mutex
	file *rotatingFile
	name string
}

// NewJSONWriter creates an NDJSON day-file writer for the given logger name.
func NewJSONWriter(root, name string) (*JSONWriter, error) {
	if root == "" {
		return nil, fmt.Errorf("json writer requires a root directory")
	}
	if name == "" {
		return nil, fmt.Errorf("json writer requires a logger name")
	}
	return &JSONWriter{
		file: newRotatingFile(filepath.Join(root, name), JSONSuffix),
		name: name,
	}, nil
}

// Write serializes the record as one JSON line and appends it, rotating
// to a new day file first if the date key changed since the previous
// write.
func (w *JSONWriter) Write(rec *logrecord.Record) error {
	line, err := rec.MarshalLine()
	if err != nil {
		return &SerializationError{Logger: w.name, Err: err}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.writeLine(line)
}

// Close closes the currently open day file, if any.
func (w *JSONWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.close()
}

// Name returns the logger name the writer is attached to.
func (w *JSONWriter) Name() string {
	return w.name
}

// Ensure JSONWriter implements the Writer interface.
var _ Writer = (*JSONWriter)(nil)
