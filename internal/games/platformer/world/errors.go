package world

import (
	"errors"
	"fmt"
)

// ErrMalformedLevel is the sentinel wrapped by every MalformedLevelError.
var ErrMalformedLevel = errors.New("world: malformed level")

// MalformedLevelError describes why a plan could not be turned into a level.
// Row and Col are zero-based and -1 when the problem is not tied to a cell.
type MalformedLevelError struct {
	Reason string
	Row    int
	Col    int
}

func (e *MalformedLevelError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("malformed level: %s", e.Reason)
	}
	if e.Col < 0 {
		return fmt.Sprintf("malformed level: row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("malformed level: row %d col %d: %s", e.Row, e.Col, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedLevel.
func (e *MalformedLevelError) Unwrap() error {
	return ErrMalformedLevel
}

func malformed(row, col int, format string, args ...any) error {
	return &MalformedLevelError{Reason: fmt.Sprintf(format, args...), Row: row, Col: col}
}
