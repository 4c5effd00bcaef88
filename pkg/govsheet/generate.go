package govsheet

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fairsight/govsheet/pkg/govsheet/models"
	"github.com/fairsight/govsheet/pkg/govsheet/parser"
)

// Generate transforms the workbook at path into a GovernanceConfig using
// default options.
func Generate(path string) (*models.GovernanceConfig, error) {
	return GenerateWithOptions(path, DefaultOptions())
}

// GenerateWithOptions transforms the workbook at path into a
// GovernanceConfig. It classifies each sheet as a gate sheet, a
// domain-mapping sheet, or neither (ignored), parses gates and the
// artifact schema sheets they reference, and assembles the final
// configuration. Any validation failure aborts the whole transformation.
func GenerateWithOptions(path string, opts Options) (*models.GovernanceConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()

	// Normalized sheet name to actual sheet name, so an artifact reference
	// like "AI Charter" resolves to a sheet named "AI_Charter". When two
	// sheets normalize to the same key, the later sheet wins.
	sheetLookup := make(map[string]string, len(sheetList))
	for _, name := range sheetList {
		sheetLookup[parser.NormalizeIdentifier(name)] = name
	}

	domainSheets := opts.domainMappingSet()

	var gates []models.Gate
	referenced := []string{}
	for _, sheetName := range sheetList {
		if _, ok := domainSheets[parser.NormalizeSheetName(sheetName)]; ok {
			continue
		}
		gateID, gateName, ok := parser.MatchGateSheet(sheetName)
		if !ok {
			continue
		}
		tbl, err := sheetTable(f, sheetName)
		if err != nil {
			return nil, err
		}
		gate, err := parser.ParseGateSheet(tbl, sheetName, gateID, gateName)
		if err != nil {
			return nil, err
		}
		gates = append(gates, gate)
		referenced = parser.AppendUnique(referenced, gate.Artifacts)
	}

	if len(gates) == 0 {
		return nil, ErrNoGateSheets
	}

	artifacts := make(map[string][]models.FieldSchema, len(referenced))
	for _, artifact := range referenced {
		sheetName, ok := sheetLookup[parser.NormalizeIdentifier(artifact)]
		if !ok {
			return nil, &ArtifactError{Artifact: artifact, Err: ErrArtifactSheetNotFound}
		}
		tbl, err := sheetTable(f, sheetName)
		if err != nil {
			return nil, err
		}
		fields, err := parser.ParseArtifactSheet(tbl, artifact)
		if err != nil {
			return nil, err
		}
		artifacts[artifact] = fields
	}

	domainMap := make(map[string][]string)
	for _, sheetName := range sheetList {
		if _, ok := domainSheets[parser.NormalizeSheetName(sheetName)]; !ok {
			continue
		}
		tbl, err := sheetTable(f, sheetName)
		if err != nil {
			return nil, err
		}
		parsed, err := parser.ParseDomainMapping(tbl, sheetName)
		if err != nil {
			return nil, err
		}
		for domain, checkpoints := range parsed {
			domainMap[domain] = parser.AppendUnique(domainMap[domain], checkpoints)
		}
	}

	// Fall back to the first G3 gate definition as the default mapping.
	if len(domainMap) == 0 {
		for _, gate := range gates {
			if strings.ToUpper(gate.GateID) == "G3" {
				domainMap[models.DefaultDomainKey] = slices.Clone(gate.Checkpoints)
				break
			}
		}
	}

	return &models.GovernanceConfig{
		Gates:              gates,
		Artifacts:          artifacts,
		DomainChecklistMap: domainMap,
	}, nil
}

func sheetTable(f *excelize.File, sheetName string) (*parser.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return parser.NewTable(rows), nil
}
