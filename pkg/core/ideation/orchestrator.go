// Package ideation wires the prompt composer to the external generation
// capability. One composed instruction document, one fixed system
// instruction, one call; errors are forwarded whole with no retry, and
// replies get only a wrapper cleanup (code fences, opt-in JSON repair),
// never validation against the requested structure.
package ideation

import (
	"context"
	"fmt"

	"quiebre/pkg/core/agent"
	"quiebre/pkg/core/area"
	"quiebre/pkg/core/compose"
	"quiebre/pkg/core/utils"
)

// Deployment-wide generation constants. Not per-request tunables.
const (
	MaxTokens   = 2000
	Temperature = 0.9
)

// TaskIdeacion is the task name used for provider selection.
const TaskIdeacion = "ideacion"

// Generator is the opaque external generation capability.
type Generator interface {
	Generate(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// Request is one generation request.
type Request struct {
	Area   area.Area
	Fields map[string]string
	// Prior carries previously generated idea texts for the same session;
	// they enrich the prompt with explicit exclusions and are never
	// validated against the new output.
	Prior []string
	// JSONFormat opts into JSON output from the model. The reply is run
	// through json-repair before being forwarded; free text is the default.
	JSONFormat bool
}

// Orchestrator composes the instruction document and invokes the
// generation capability exactly once per request.
type Orchestrator struct {
	composer compose.Composer
	gen      Generator
}

func NewOrchestrator(c compose.Composer, g Generator) *Orchestrator {
	return &Orchestrator{composer: c, gen: g}
}

// Generate returns the raw generated text for the request, or the
// underlying failure. Cancelling ctx abandons the in-flight call.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (string, error) {
	doc, err := o.composer.Compose(req.Area, req.Fields, req.Prior)
	if err != nil {
		return "", err
	}

	options := map[string]interface{}{
		"max_tokens":  MaxTokens,
		"temperature": Temperature,
	}
	if req.JSONFormat {
		options["json"] = true
	}

	out, err := o.gen.Generate(ctx, doc, o.composer.SystemPrompt(), options)
	if err != nil {
		return "", fmt.Errorf("generación fallida: %w", err)
	}

	if req.JSONFormat {
		repaired, err := utils.RepairJSON(out)
		if err != nil {
			return "", fmt.Errorf("respuesta JSON inválida: %w", err)
		}
		return repaired, nil
	}

	// Models sometimes wrap free text in a markdown code fence.
	return utils.CleanMarkdown(out), nil
}

// ComposeOnly exposes the composed document without invoking the
// capability, for inspection and tests.
func (o *Orchestrator) ComposeOnly(req Request) (string, error) {
	return o.composer.Compose(req.Area, req.Fields, req.Prior)
}

// ManagerGenerator adapts an agent.Manager to the Generator interface.
type ManagerGenerator struct {
	Manager *agent.Manager
	Task    string
}

func (g *ManagerGenerator) Generate(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	return g.Manager.ExecutePrompt(ctx, g.Task, prompt, systemPrompt, options)
}
