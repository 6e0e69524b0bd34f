// internal/logger/console.go

package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/orgoj/daylog/internal/logrecord"
)

// ConsoleWriter mirrors records to a console-like sink using the same
// text line format as TextWriter. Default sink is stdout.
type ConsoleWriter struct {
	mu   sync.Mutex
	out  io.Writer
	name string
}

// NewConsoleWriter creates a console mirror for the given logger name.
func NewConsoleWriter(name string) *ConsoleWriter {
	return &ConsoleWriter{out: os.Stdout, name: name}
}

func (w *ConsoleWriter) Write(rec *logrecord.Record) error {
	line := append(FormatTextLine(rec), '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.out.Write(line); err != nil {
		return fmt.Errorf("failed to write console log line: %w", err)
	}
	return nil
}

// Close is a no-op; the console sink is not owned by the writer.
func (w *ConsoleWriter) Close() error {
	return nil
}

func (w *ConsoleWriter) Name() string {
	return w.name
}

var _ Writer = (*ConsoleWriter)(nil)
