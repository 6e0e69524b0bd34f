package logger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/orgoj/daylog/internal/logrecord"
)

func TestNewJSONWriter(t *testing.T) {
	tests := []struct {
		name        string
		root        string
		logger      string
		expectError bool
	}{
		{name: "Valid", root: t.TempDir(), logger: "app"},
		{name: "Missing root", root: "", logger: "app", expectError: true},
		{name: "Missing logger name", root: t.TempDir(), logger: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewJSONWriter(tt.root, tt.logger)
			if tt.expectError {
				if err == nil {
					t.Error("Expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Did not expect an error, got: %v", err)
			}
			defer w.Close()
		})
	}
}

func TestJSONWriter_SingleDay(t *testing.T) {
	root := t.TempDir()
	instant := time.Date(2026, 3, 7, 10, 0, 0, 0, time.Local)

	w, err := NewJSONWriter(root, "app")
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}
	defer w.Close()
	w.file.now = func() time.Time { return instant }

	messages := []string{"first", "second", "third"}
	for _, msg := range messages {
		if err := w.Write(testRecord(instant, logrecord.DEBUG, msg)); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
	}

	dir := filepath.Join(root, "app")
	files := listDir(t, dir)
	if len(files) != 1 || files[0] != "07_03_26_logs.ndjson" {
		t.Fatalf("Expected exactly one day file '07_03_26_logs.ndjson', got: %v", files)
	}

	lines := readLines(t, filepath.Join(dir, files[0]))
	if len(lines) != len(messages) {
		t.Fatalf("Expected one JSON line per record, got %d lines for %d records", len(lines), len(messages))
	}

	for i, line := range lines {
		rec, err := logrecord.UnmarshalLine([]byte(line))
		if err != nil {
			t.Fatalf("Line %d is not a valid record: %v\nLine: %s", i+1, err, line)
		}
		if rec.Message != messages[i] {
			t.Errorf("Line %d out of order: got message %q, want %q", i+1, rec.Message, messages[i])
		}
	}
}

func TestJSONWriter_DayRollover(t *testing.T) {
	root := t.TempDir()
	clock := &fakeClock{now: time.Date(2026, 12, 31, 23, 59, 59, 0, time.Local)}

	w, err := NewJSONWriter(root, "app")
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}
	defer w.Close()
	w.file.now = clock.Now

	if err := w.Write(testRecord(clock.now, logrecord.INFO, "old year")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	clock.now = time.Date(2027, 1, 1, 0, 0, 1, 0, time.Local)
	if err := w.Write(testRecord(clock.now, logrecord.INFO, "new year")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	dir := filepath.Join(root, "app")
	files := listDir(t, dir)
	if len(files) != 2 {
		t.Fatalf("Expected two day files after rollover, got: %v", files)
	}

	old := readLines(t, filepath.Join(dir, "31_12_26_logs.ndjson"))
	fresh := readLines(t, filepath.Join(dir, "01_01_27_logs.ndjson"))
	if len(old) != 1 || len(fresh) != 1 {
		t.Fatalf("Each day file must hold exactly its day's record, got %d and %d lines", len(old), len(fresh))
	}
}

func TestJSONWriter_SharesDirWithTextWriter(t *testing.T) {
	root := t.TempDir()
	instant := time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local)

	tw, err := NewTextWriter(root, "app")
	if err != nil {
		t.Fatalf("Failed to create text writer: %v", err)
	}
	defer tw.Close()
	tw.file.now = func() time.Time { return instant }

	jw, err := NewJSONWriter(root, "app")
	if err != nil {
		t.Fatalf("Failed to create json writer: %v", err)
	}
	defer jw.Close()
	jw.file.now = func() time.Time { return instant }

	rec := testRecord(instant, logrecord.INFO, "shared dir")
	if err := tw.Write(rec); err != nil {
		t.Fatalf("Text Write() failed: %v", err)
	}
	if err := jw.Write(rec); err != nil {
		t.Fatalf("JSON Write() failed: %v", err)
	}

	files := listDir(t, filepath.Join(root, "app"))
	if len(files) != 2 {
		t.Fatalf("Expected both variants side by side, got: %v", files)
	}
}

func TestJSONWriter_FaultFields(t *testing.T) {
	root := t.TempDir()
	instant := time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local)

	w, err := NewJSONWriter(root, "app")
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}
	defer w.Close()
	w.file.now = func() time.Time { return instant }

	rec := testRecord(instant, logrecord.ERROR, "processing failed")
	rec.Fault = &logrecord.Fault{
		Type:    "main.negativeNumberError",
		Message: "negative number is not allowed: -1",
		Trace:   "goroutine 1 [running]:\nmain.checkNumber(...)",
	}
	if err := w.Write(rec); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	lines := readLines(t, filepath.Join(root, "app", "07_03_26_logs.ndjson"))
	got, err := logrecord.UnmarshalLine([]byte(lines[0]))
	if err != nil {
		t.Fatalf("Failed to decode written line: %v", err)
	}
	if got.Fault == nil {
		t.Fatal("Expected the fault to survive the write")
	}
	if got.Fault.Type != rec.Fault.Type || got.Fault.Message != rec.Fault.Message || got.Fault.Trace != rec.Fault.Trace {
		t.Errorf("Fault mismatch:\nGot:  %#v\nWant: %#v", got.Fault, rec.Fault)
	}
}
