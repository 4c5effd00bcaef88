package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCheckpoints indicates a gate sheet contained no checkpoint rows.
var ErrNoCheckpoints = errors.New("does not include any checkpoints")

// ErrNoFields indicates an artifact sheet contained no field rows.
var ErrNoFields = errors.New("does not define any fields")

// MissingColumnsError indicates a sheet lacks one or more required columns.
type MissingColumnsError struct {
	Sheet   string
	Columns []string // sorted
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("sheet %q is missing required columns: %s",
		e.Sheet, strings.Join(e.Columns, ", "))
}
