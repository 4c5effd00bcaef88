package parser

import (
	"fmt"
	"strings"

	"github.com/fairsight/govsheet/pkg/govsheet/models"
)

// ColFields is the column required on every artifact schema sheet.
const ColFields = "Fields"

// requiredMarker flags a field as required when it trails the label.
const requiredMarker = "*"

// ParseArtifactSheet extracts the ordered field schemas from an artifact
// schema sheet. artifactName is used for error context only.
func ParseArtifactSheet(tbl *Table, artifactName string) ([]models.FieldSchema, error) {
	if missing := tbl.MissingColumns(ColFields); len(missing) > 0 {
		return nil, &MissingColumnsError{Sheet: artifactName, Columns: missing}
	}

	var fields []models.FieldSchema
	for i := 0; i < tbl.Len(); i++ {
		value, ok := tbl.Cell(i, ColFields)
		if !ok {
			continue
		}
		label := strings.TrimSpace(value)
		if label == "" {
			continue
		}
		required := strings.HasSuffix(label, requiredMarker)
		if required {
			label = strings.TrimSpace(strings.TrimSuffix(label, requiredMarker))
		}
		fields = append(fields, models.FieldSchema{
			Name:      SlugifyFieldName(label),
			Label:     label,
			InputType: InferWidgetType(label),
			Required:  required,
		})
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("artifact sheet %q %w", artifactName, ErrNoFields)
	}

	return fields, nil
}
