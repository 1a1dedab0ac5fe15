package compose

import (
	"quiebre/pkg/core/area"
	"quiebre/pkg/core/prompt"
)

// systemPrompt returns the fixed system instruction for a variant. It first
// consults the prompt library so a deployment can override the instruction
// from a JSON file, falling back to the hardcoded text.
func systemPrompt(v area.Variant) string {
	promptID := ""
	switch v {
	case area.VariantMinimal:
		promptID = prompt.IDs.SistemaMinimal
	case area.VariantContextual:
		promptID = prompt.IDs.SistemaContextual
	case area.VariantAvoidance:
		promptID = prompt.IDs.SistemaAvoidance
	}

	if promptID != "" {
		if p, err := prompt.Get().GetSystemPrompt(promptID); err == nil && p != "" {
			return p
		}
	}

	if p, ok := systemPrompts[v]; ok {
		return p
	}
	return ""
}

// systemPrompts contains the hardcoded instructions used when the prompt
// library has no override. Constant across all requests within a variant.
var systemPrompts = map[area.Variant]string{
	area.VariantAvoidance: `Eres un experto en creatividad disruptiva.
Para cada aspecto solicitado, debes generar ideas COMPLETAMENTE DIFERENTES
a las mencionadas en el contexto. Cada idea debe ser única, innovadora y
factible de implementar. NO repitas conceptos entre las diferentes propuestas.`,

	area.VariantMinimal: `Eres un experto en marketing altamente creativo y disruptivo.
Genera propuestas únicas e innovadoras sin restricciones de contexto.
Cada idea debe ser factible de implementar. NO repitas conceptos entre las
diferentes propuestas.`,

	area.VariantContextual: `Eres un experto en creatividad disruptiva aplicada a marcas.
Cada idea debe ser única, innovadora y factible de implementar, y debe
respetar el objetivo, el target, las restricciones y el presupuesto
declarados en el brief. NO repitas conceptos entre las diferentes propuestas.`,
}
