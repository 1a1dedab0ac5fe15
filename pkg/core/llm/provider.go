// Package llm abstracts the external text-generation capability behind a
// single Provider interface. The service treats the capability as opaque:
// on success the generated text is returned verbatim, on failure the
// underlying error is surfaced whole with no retry.
package llm

import (
	"context"
)

// Provider is the interface for all generation providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats.
	AdaptInstructions(rawInstructions string) string
	// Credential returns the environment variable carrying this provider's
	// API key, so startup can fail fast when it is absent.
	Credential() string
}

func intOption(options map[string]interface{}, key string, def int) int {
	if v, ok := options[key].(int); ok && v > 0 {
		return v
	}
	return def
}

func floatOption(options map[string]interface{}, key string, def float64) float64 {
	if v, ok := options[key].(float64); ok {
		return v
	}
	return def
}

func stringOption(options map[string]interface{}, key string, def string) string {
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return def
}

func boolOption(options map[string]interface{}, key string) bool {
	v, ok := options[key].(bool)
	return ok && v
}
