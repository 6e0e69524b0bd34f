// internal/logrecord/record.go

package logrecord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/valyala/fastjson"
)

// TimeLayout is the wall-clock format used in both the text line and the
// NDJSON "time" field. Second resolution.
const TimeLayout = "2006-01-02 15:04:05"

// Level defines the available logging levels.
type Level int

const (
	// Log levels
	DEBUG Level = 10
	INFO  Level = 20
	WARN  Level = 30
	ERROR Level = 40
	FATAL Level = 50
)

// Level to string mapping
var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// LevelNameToLevel maps string level names to level values
var LevelNameToLevel = map[string]Level{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
	"FATAL": FATAL,
}

// String returns the level name, e.g. "INFO".
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name to its Level value.
func ParseLevel(name string) (Level, error) {
	level, ok := LevelNameToLevel[name]
	if !ok {
		return 0, fmt.Errorf("invalid log level: %s", name)
	}
	return level, nil
}

// Record is one structured log event. It is built once at the call site
// and never mutated afterwards; each attached writer renders its own
// view of it.
type Record struct {
	Time    time.Time
	Logger  string
	Level   Level
	File    string
	Thread  string
	Message string
	Fault   *Fault // nil when no fault is associated with the event
}

// wireRecord is the fixed NDJSON field set. The three exc_* pointers are
// null together or set together.
type wireRecord struct {
	Time         string  `json:"time"`
	Logger       string  `json:"logger"`
	Level        string  `json:"level"`
	File         string  `json:"file"`
	Thread       string  `json:"thread"`
	Message      string  `json:"message"`
	ExcType      *string `json:"exc_type"`
	ExcMessage   *string `json:"exc_message"`
	ExcTraceback *string `json:"exc_traceback"`
}

// MarshalLine renders the record as a single JSON object without a
// trailing newline. Non-ASCII text is preserved as literal characters.
func (r *Record) MarshalLine() ([]byte, error) {
	wire := wireRecord{
		Time:    r.Time.Format(TimeLayout),
		Logger:  r.Logger,
		Level:   r.Level.String(),
		File:    r.File,
		Thread:  r.Thread,
		Message: r.Message,
	}
	if r.Fault != nil {
		wire.ExcType = &r.Fault.Type
		wire.ExcMessage = &r.Fault.Message
		wire.ExcTraceback = &r.Fault.Trace
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire); err != nil {
		return nil, fmt.Errorf("failed to marshal log record to JSON: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

var parsers fastjson.ParserPool

// UnmarshalLine parses one NDJSON line back into a Record. Missing string
// fields decode to "", missing or null exc_* fields to a nil Fault, and
// unknown keys are ignored. A line that is not a JSON object, or whose
// time/level fields are present but malformed, is an error.
func UnmarshalLine(line []byte) (Record, error) {
	p := parsers.Get()
	defer parsers.Put(p)

	v, err := p.ParseBytes(line)
	if err != nil {
		return Record{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if v.Type() != fastjson.TypeObject {
		return Record{}, fmt.Errorf("expected a JSON object, got %s", v.Type())
	}

	rec := Record{
		Logger:  string(v.GetStringBytes("logger")),
		File:    string(v.GetStringBytes("file")),
		Thread:  string(v.GetStringBytes("thread")),
		Message: string(v.GetStringBytes("message")),
	}

	if ts := v.GetStringBytes("time"); len(ts) > 0 {
		t, err := time.ParseInLocation(TimeLayout, string(ts), time.Local)
		if err != nil {
			return Record{}, fmt.Errorf("invalid time field: %w", err)
		}
		rec.Time = t
	}

	if name := v.GetStringBytes("level"); len(name) > 0 {
		level, err := ParseLevel(string(name))
		if err != nil {
			return Record{}, fmt.Errorf("invalid level field: %w", err)
		}
		rec.Level = level
	}

	excType := nullableString(v, "exc_type")
	excMessage := nullableString(v, "exc_message")
	excTraceback := nullableString(v, "exc_traceback")
	if excType != nil || excMessage != nil || excTraceback != nil {
		rec.Fault = &Fault{
			Type:    stringOrEmpty(excType),
			Message: stringOrEmpty(excMessage),
			Trace:   stringOrEmpty(excTraceback),
		}
	}

	return rec, nil
}

// nullableString distinguishes a missing or null field (nil) from a
// present string value.
func nullableString(v *fastjson.Value, key string) *string {
	field := v.Get(key)
	if field == nil || field.Type() == fastjson.TypeNull {
		return nil
	}
	s := string(field.GetStringBytes())
	return &s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CallerFile reports the base file name of the caller skip frames up the
// stack, for the record's "file" field. skip counts from the caller of
// CallerFile.
func CallerFile(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???"
	}
	return filepath.Base(file)
}

// GoroutineID reports the current goroutine id as a thread-like
// identifier, e.g. "goroutine-1".
func GoroutineID() string {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	// First stack line is "goroutine <id> [running]:".
	fields := bytes.Fields(buf)
	if len(fields) < 2 {
		return "goroutine-?"
	}
	return "goroutine-" + string(fields[1])
}
