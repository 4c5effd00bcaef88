package models

// Gate represents a single stage of the governance process.
type Gate struct {
	// GateID is the short upper-cased gate code (e.g. "G0").
	GateID string `json:"gate_id"`
	// GateName is the human-readable stage name.
	GateName string `json:"gate_name"`
	// Checkpoints lists checkpoint names in sheet order (duplicates kept).
	Checkpoints []string `json:"checkpoints"`
	// Artifacts lists referenced artifact names, unique, first-seen order.
	Artifacts []string `json:"artifacts"`
}
