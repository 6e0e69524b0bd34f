// internal/logrecord/fault.go

package logrecord

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Fault is the captured failure attached to a record: the dynamic type
// name of the error, its message, and a formatted stack trace taken at
// the capture point. All three fields travel together; a record either
// carries a complete Fault or none at all.
type Fault struct {
	Type    string
	Message string
	Trace   string
}

// CaptureFault builds a Fault from err with the stack trace of the
// calling goroutine. Returns nil for a nil error.
func CaptureFault(err error) *Fault {
	if err == nil {
		return nil
	}
	return &Fault{
		Type:    faultType(err),
		Message: err.Error(),
		Trace:   string(debug.Stack()),
	}
}

// faultType names the dynamic type of err, without the pointer marker.
func faultType(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}
