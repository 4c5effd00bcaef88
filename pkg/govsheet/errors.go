package govsheet

import (
	"errors"
	"fmt"
)

// ErrWorkbookNotFound indicates the input workbook path does not exist.
var ErrWorkbookNotFound = errors.New("workbook not found")

// ErrNoGateSheets indicates no sheet in the workbook matched the gate
// naming convention.
var ErrNoGateSheets = errors.New("no gate sheets were discovered in the workbook")

// ErrArtifactSheetNotFound indicates a gate references an artifact with no
// matching schema sheet.
var ErrArtifactSheetNotFound = errors.New("referenced by a gate but no matching sheet was found")

// ArtifactError represents a failure tied to a referenced artifact.
type ArtifactError struct {
	Artifact string
	Err      error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("artifact %q %v", e.Artifact, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}
