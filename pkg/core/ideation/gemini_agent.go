package ideation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAgent is a Generator with a long-lived Gemini client, constructed
// once during process initialization and reused across all requests.
// Construction fails when the credential is absent, so a misconfigured
// process never serves traffic.
type GeminiAgent struct {
	modelName string
	client    *genai.Client
}

func NewGeminiAgent(ctx context.Context) (*GeminiAgent, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	modelName := os.Getenv("GEMINI_MODEL")
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	return &GeminiAgent{
		modelName: modelName,
		client:    client,
	}, nil
}

func (a *GeminiAgent) Generate(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	model := a.client.GenerativeModel(a.modelName)
	model.SetMaxOutputTokens(MaxTokens)
	model.SetTemperature(Temperature)
	if v, ok := options["max_tokens"].(int); ok && v > 0 {
		model.SetMaxOutputTokens(int32(v))
	}
	if v, ok := options["temperature"].(float64); ok {
		model.SetTemperature(float32(v))
	}
	if v, ok := options["json"].(bool); ok && v {
		model.ResponseMIMEType = "application/json"
	}
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return out, nil
}

// Close releases the underlying client connection.
func (a *GeminiAgent) Close() error {
	return a.client.Close()
}
