// internal/logger/rotation.go

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File name suffixes for the two day-file variants. A text writer and a
// JSON writer attached to the same logger name share a directory without
// colliding.
const (
	TextSuffix = "_logs.log"
	JSONSuffix = "_logs.ndjson"
)

// DateKey returns the fixed-width date key for an instant, e.g. "07_03_26".
// The key both names the day file and detects rollover between writes.
func DateKey(now time.Time) string {
	return now.Format("02_01_06")
}

// RotationTarget resolves the file a write at the given instant must go
// to. Pure function shared by both writer variants.
func RotationTarget(now time.Time, dir, suffix string) string {
	return filepath.Join(dir, DateKey(now)+suffix)
}

// rotatingFile holds the append handle for the current day's file and
// switches it when the date key changes between two writes. The date is
// re-derived from the clock on every write, never cached past it.
type rotatingFile struct {
	dir    string
	suffix string
	now    func() time.Time

	lastPath string
	file     *os.File
}

func newRotatingFile(dir, suffix string) *rotatingFile {
	return &rotatingFile{dir: dir, suffix: suffix, now: time.Now}
}

// writeLine appends one rendered line plus a newline terminator to the
// current day's file and syncs the handle, so the record is durable
// before the call returns. The caller must hold the owning writer's
// mutex.
func (f *rotatingFile) writeLine(line []byte) error {
	target := RotationTarget(f.now(), f.dir, f.suffix)
	if target != f.lastPath {
		if f.file != nil {
			file := f.file
			f.file = nil
			if err := file.Close(); err != nil {
				return &RotationError{Path: f.lastPath, Op: "close", Err: err}
			}
		}
		if err := os.MkdirAll(f.dir, 0755); err != nil {
			return &RotationError{Path: f.dir, Op: "mkdir", Err: err}
		}
		file, err := os.OpenFile(target, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return &RotationError{Path: target, Op: "open", Err: err}
		}
		f.file = file
		f.lastPath = target
	}

	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	if _, err := f.file.Write(buf); err != nil {
		return fmt.Errorf("failed to write log line to %s: %w", f.lastPath, err)
	}
	if err := f.file.Sync(); err != nil {
		return fmt.Errorf("failed to flush log file %s: %w", f.lastPath, err)
	}
	return nil
}

// close releases the current day file handle, if any. A later write
// re-resolves its target from scratch.
func (f *rotatingFile) close() error {
	f.lastPath = ""
	if f.file == nil {
		return nil
	}
	file := f.file
	f.file = nil
	return file.Close()
}
