// Package models defines data structures for the governance configuration.
package models

// FieldSchema represents a single form field derived from an artifact sheet.
type FieldSchema struct {
	// Name is the machine-friendly key derived from the label.
	Name string `json:"name"`
	// Label is the human-readable display text, required marker stripped.
	Label string `json:"label"`
	// InputType is the inferred widget type (date, number, checkbox,
	// single_select, multi_select, textarea, text).
	InputType string `json:"input_type"`
	// Required is true when the original label ended with '*'.
	Required bool `json:"required"`
}
