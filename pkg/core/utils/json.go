// Package utils holds small helpers for cleaning up model output.
package utils

import (
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// RepairJSON attempts to fix common JSON errors in model output: missing
// quotes around keys, single quotes, unclosed arrays or objects, trailing
// commas, and surrounding markdown code fences.
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}
