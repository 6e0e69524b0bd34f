// internal/reader/reader.go

// Package reader reconstructs typed records from NDJSON day files
// written by the json log writer. It reads strictly sequentially and
// aborts on the first undecodable line: silently dropping records would
// hide log corruption from the consumer, which defeats the point of
// reading logs back at all.
package reader

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/orgoj/daylog/internal/logrecord"
)

// Tracebacks routinely exceed bufio's default line limit.
const maxLineSize = 1024 * 1024

// DecodeError reports an NDJSON line that could not be parsed back into
// a record, identifying the file and the 1-based line number.
type DecodeError struct {
	Path string
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s:%d: invalid log line: %v", e.Path, e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Records iterates over the records of one NDJSON day file in file
// order. It is single-pass and finite; call Open again to re-read the
// file. Blank lines are skipped and do not count as records.
type Records struct {
	path string
	file *os.File
	sc   *bufio.Scanner
	line int
	cur  logrecord.Record
	err  error
}

// Open opens the file and returns a fresh iterator positioned before the
// first record.
func Open(path string) (*Records, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}

	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &Records{path: path, file: file, sc: sc}, nil
}

// Next advances to the next record. It returns false at end of file or
// on the first error; check Err afterwards to tell the two apart.
func (r *Records) Next() bool {
	if r.err != nil {
		return false
	}

	for r.sc.Scan() {
		r.line++
		line := bytes.TrimSpace(r.sc.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, err := logrecord.UnmarshalLine(line)
		if err != nil {
			r.err = &DecodeError{Path: r.path, Line: r.line, Err: err}
			return false
		}
		r.cur = rec
		return true
	}

	if err := r.sc.Err(); err != nil {
		r.err = fmt.Errorf("failed to read log file '%s': %w", r.path, err)
	}
	return false
}

// Record returns the record Next advanced to.
func (r *Records) Record() logrecord.Record {
	return r.cur
}

// Err returns the first error encountered, nil after a clean end of
// file.
func (r *Records) Err() error {
	return r.err
}

// Close closes the underlying file.
func (r *Records) Close() error {
	return r.file.Close()
}

// ToList eagerly materializes every record of the file, preserving file
// order. On a decode failure it returns no records and the DecodeError,
// never a silently truncated list.
func ToList(path string) ([]logrecord.Record, error) {
	records, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer records.Close()

	var out []logrecord.Record
	for records.Next() {
		out = append(out, records.Record())
	}
	if err := records.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
