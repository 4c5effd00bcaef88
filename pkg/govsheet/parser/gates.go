package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fairsight/govsheet/pkg/govsheet/models"
)

// Column names required on every gate sheet.
const (
	ColCheckpoint = "Checkpoint"
	ColArtifacts  = "Artifacts Produced"
)

// gateSheetPattern detects gate sheets such as "G0_Ideation" or "G1-Design".
var gateSheetPattern = regexp.MustCompile(`(?i)^(G\d+)\s*[-_]\s*(.+)$`)

// MatchGateSheet reports whether the sheet name follows the gate naming
// convention, returning the gate code and title on a match. The name is
// trimmed before matching.
func MatchGateSheet(sheetName string) (gateID, gateName string, ok bool) {
	m := gateSheetPattern.FindStringSubmatch(strings.TrimSpace(sheetName))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ParseGateSheet extracts the checkpoints and referenced artifacts from one
// gate sheet. Checkpoints keep sheet order and duplicates; artifacts are
// deduplicated in first-seen order.
func ParseGateSheet(tbl *Table, sheetName, gateID, gateName string) (models.Gate, error) {
	if missing := tbl.MissingColumns(ColCheckpoint, ColArtifacts); len(missing) > 0 {
		return models.Gate{}, &MissingColumnsError{Sheet: sheetName, Columns: missing}
	}

	checkpoints := []string{}
	artifacts := []string{}
	for i := 0; i < tbl.Len(); i++ {
		if value, ok := tbl.Cell(i, ColCheckpoint); ok {
			if checkpoint := strings.TrimSpace(value); checkpoint != "" {
				checkpoints = append(checkpoints, checkpoint)
			}
		}
		if value, ok := tbl.Cell(i, ColArtifacts); ok {
			artifacts = AppendUnique(artifacts, SplitArtifactCell(value))
		}
	}

	if len(checkpoints) == 0 {
		return models.Gate{}, fmt.Errorf("gate sheet %q %w", sheetName, ErrNoCheckpoints)
	}

	return models.Gate{
		GateID:      strings.ToUpper(gateID),
		GateName:    strings.TrimSpace(gateName),
		Checkpoints: checkpoints,
		Artifacts:   artifacts,
	}, nil
}
