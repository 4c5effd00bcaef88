package models

// DefaultDomainKey is the sentinel key used for domain rows marked
// "default" or "fallback".
const DefaultDomainKey = "_default"

// GovernanceConfig is the root configuration produced from a workbook.
type GovernanceConfig struct {
	// Gates lists parsed gates in workbook sheet order.
	Gates []Gate `json:"gates"`
	// Artifacts maps artifact display name to its ordered field schemas.
	Artifacts map[string][]FieldSchema `json:"artifacts"`
	// DomainChecklistMap maps domain name (or DefaultDomainKey) to an
	// ordered, duplicate-free list of checkpoint names.
	DomainChecklistMap map[string][]string `json:"domain_checklist_map"`
}
