package spantext

import (
	"errors"
	"fmt"
	"time"
)

// ErrBeforeEpoch indicates a span timestamp earlier than the Unix epoch.
// Such timestamps cannot be rendered as non-negative Unix seconds.
var ErrBeforeEpoch = errors.New("timestamp before Unix epoch")

// TimeError represents a span timestamp that cannot be rendered.
type TimeError struct {
	Field string // which timestamp: "start" or "end"
	Time  time.Time
}

func (e *TimeError) Error() string {
	return fmt.Sprintf("%s time %s: %v", e.Field, e.Time.Format(time.RFC3339Nano), ErrBeforeEpoch)
}

func (e *TimeError) Unwrap() error {
	return ErrBeforeEpoch
}

// ExportError represents a failure to deliver rendered spans to the output.
type ExportError struct {
	Op  string // "write" or "flush"
	Err error
}

func (e *ExportError) Error() string {
	if e.Op != "" {
		return "spantext: " + e.Op + ": " + e.Err.Error()
	}
	return "spantext: " + e.Err.Error()
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
