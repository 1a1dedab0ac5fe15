// Package prompt provides a small prompt library for the generation
// service. System instructions ship hardcoded with each composer variant;
// this registry lets a deployment override them from JSON files without a
// code change.
package prompt

// Template is one reusable prompt with metadata.
type Template struct {
	ID           string `json:"id"`            // e.g. "sistema.avoidance"
	Name         string `json:"name"`          // Human-readable name
	Category     string `json:"category"`      // e.g. "sistema"
	Description  string `json:"description"`   // Purpose of the prompt
	SystemPrompt string `json:"system_prompt"` // The instruction content
	Version      string `json:"version"`       // For tracking changes
}

// IDs contains the identifiers the composers resolve at runtime. One system
// instruction per template variant, constant across all requests within a
// deployment.
var IDs = struct {
	SistemaMinimal    string
	SistemaContextual string
	SistemaAvoidance  string
}{
	SistemaMinimal:    "sistema.minimal",
	SistemaContextual: "sistema.contextual",
	SistemaAvoidance:  "sistema.avoidance",
}
