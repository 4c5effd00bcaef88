// Package govsheet transforms staged-governance workbooks into a
// normalized JSON configuration.
package govsheet

import "github.com/fairsight/govsheet/pkg/govsheet/parser"

// defaultDomainMappingSheets are the recognized names of sheets that
// encode domain-to-checkpoint mappings, compared after structural
// normalization.
var defaultDomainMappingSheets = []string{
	"G3_DOMAIN_MAP",
	"G3_DOMAIN_MAPPING",
	"DOMAIN_CHECKLIST_MAP",
}

// Options configures workbook transformation behavior.
type Options struct {
	// DomainMappingSheets overrides the recognized domain-mapping sheet
	// names. Entries are matched after trimming, upper-casing, and
	// replacing spaces with underscores. Empty means the default
	// vocabulary.
	DomainMappingSheets []string
}

// DefaultOptions returns default transformation options.
func DefaultOptions() Options {
	return Options{}
}

// domainMappingSet returns the recognized domain-mapping sheet names as a
// normalized lookup set.
func (o Options) domainMappingSet() map[string]struct{} {
	names := o.DomainMappingSheets
	if len(names) == 0 {
		names = defaultDomainMappingSheets
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[parser.NormalizeSheetName(name)] = struct{}{}
	}
	return set
}
