package parser

import (
	"strings"

	"github.com/fairsight/govsheet/pkg/govsheet/models"
)

// ColDomain is required on every domain-mapping sheet, alongside
// ColCheckpoint.
const ColDomain = "Domain"

// ParseDomainMapping parses a domain-mapping sheet into a map from domain
// name to an ordered, duplicate-free list of checkpoints. Rows whose domain
// is "default" or "fallback" (case-insensitive) map to
// models.DefaultDomainKey; every other domain keeps its exact casing, so
// differently-cased spellings of one domain produce distinct keys.
func ParseDomainMapping(tbl *Table, sheetName string) (map[string][]string, error) {
	if missing := tbl.MissingColumns(ColDomain, ColCheckpoint); len(missing) > 0 {
		return nil, &MissingColumnsError{Sheet: sheetName, Columns: missing}
	}

	mapping := make(map[string][]string)
	for i := 0; i < tbl.Len(); i++ {
		domainValue, _ := tbl.Cell(i, ColDomain)
		checkpointValue, _ := tbl.Cell(i, ColCheckpoint)

		domain := strings.TrimSpace(domainValue)
		checkpoint := strings.TrimSpace(checkpointValue)
		if domain == "" || checkpoint == "" {
			continue
		}

		key := domain
		switch strings.ToLower(domain) {
		case "default", "fallback":
			key = models.DefaultDomainKey
		}
		mapping[key] = AppendUnique(mapping[key], []string{checkpoint})
	}

	return mapping, nil
}
