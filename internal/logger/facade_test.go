package logger

import (
	"errors"
	"strings"
	"testing"

	"github.com/orgoj/daylog/internal/logrecord"
)

// recordingWriter keeps every record it receives, for assertions.
type recordingWriter struct {
	records []logrecord.Record
	name    string
}

func (w *recordingWriter) Write(rec *logrecord.Record) error {
	w.records = append(w.records, *rec)
	return nil
}

func (w *recordingWriter) Close() error { return nil }
func (w *recordingWriter) Name() string { return w.name }

// failingWriter always fails, for the error-swallowing tests.
type failingWriter struct{}

func (w *failingWriter) Write(rec *logrecord.Record) error {
	return errors.New("disk on fire")
}

func (w *failingWriter) Close() error { return nil }
func (w *failingWriter) Name() string { return "failing" }

func TestLogger_LevelFiltering(t *testing.T) {
	sink := &recordingWriter{name: "app"}
	lgr := NewLogger("app", logrecord.WARN, sink)

	lgr.Debug("below minimum")
	lgr.Info("below minimum")
	lgr.Warn("at minimum")
	lgr.Error("above minimum")
	lgr.Fatal("above minimum")

	if len(sink.records) != 3 {
		t.Fatalf("Expected 3 records at or above WARN, got %d", len(sink.records))
	}
	levels := []logrecord.Level{logrecord.WARN, logrecord.ERROR, logrecord.FATAL}
	for i, level := range levels {
		if sink.records[i].Level != level {
			t.Errorf("Record %d: level %v, want %v", i, sink.records[i].Level, level)
		}
	}
}

func TestLogger_RecordFields(t *testing.T) {
	sink := &recordingWriter{name: "app"}
	lgr := NewLogger("app", logrecord.DEBUG, sink)

	lgr.Info("Number %d processed", 7)

	if len(sink.records) != 1 {
		t.Fatalf("Expected exactly one record, got %d", len(sink.records))
	}
	rec := sink.records[0]
	if rec.Logger != "app" {
		t.Errorf("Logger name = %q, want 'app'", rec.Logger)
	}
	if rec.Message != "Number 7 processed" {
		t.Errorf("Message = %q, want formatted text", rec.Message)
	}
	if rec.File != "facade_test.go" {
		t.Errorf("File = %q, want the call site file", rec.File)
	}
	if !strings.HasPrefix(rec.Thread, "goroutine-") {
		t.Errorf("Thread = %q, want a goroutine id", rec.Thread)
	}
	if rec.Time.IsZero() {
		t.Error("Record time must be set at the call instant")
	}
	if rec.Time.Nanosecond() != 0 {
		t.Error("Record time must be truncated to second resolution")
	}
	if rec.Fault != nil {
		t.Errorf("Expected no fault, got: %#v", rec.Fault)
	}
}

func TestLogger_FaultCapture(t *testing.T) {
	sink := &recordingWriter{name: "app"}
	lgr := NewLogger("app", logrecord.DEBUG, sink)

	lgr.ErrorErr(errors.New("value out of range"), "Failed to process number %d", 10)

	rec := sink.records[0]
	if rec.Fault == nil {
		t.Fatal("Expected a captured fault")
	}
	if rec.Fault.Type != "errors.errorString" {
		t.Errorf("Fault type = %q", rec.Fault.Type)
	}
	if rec.Fault.Message != "value out of range" {
		t.Errorf("Fault message = %q", rec.Fault.Message)
	}
	if rec.Fault.Trace == "" {
		t.Error("Expected a non-empty fault trace")
	}
}

func TestLogger_BelowMinimumBuildsNoRecord(t *testing.T) {
	sink := &recordingWriter{name: "app"}
	lgr := NewLogger("app", logrecord.ERROR, sink)

	lgr.DebugErr(errors.New("ignored"), "suppressed")
	lgr.Warn("suppressed")

	if len(sink.records) != 0 {
		t.Errorf("Expected no records below the minimum level, got %d", len(sink.records))
	}
}

func TestLogger_WriterErrorDoesNotPropagate(t *testing.T) {
	sink := &recordingWriter{name: "app"}
	lgr := NewLogger("app", logrecord.DEBUG, &failingWriter{}, sink)

	// Must not panic and must still reach the next writer in order.
	lgr.Error("write me anyway")

	if len(sink.records) != 1 {
		t.Fatalf("Expected the record to reach the healthy writer, got %d records", len(sink.records))
	}
}

func TestLogger_AllWritersReceiveEachRecord(t *testing.T) {
	first := &recordingWriter{name: "app"}
	second := &recordingWriter{name: "app"}
	lgr := NewLogger("app", logrecord.DEBUG, first, second)

	lgr.Info("fan out")

	if len(first.records) != 1 || len(second.records) != 1 {
		t.Errorf("Expected one record per writer, got %d and %d", len(first.records), len(second.records))
	}
}
