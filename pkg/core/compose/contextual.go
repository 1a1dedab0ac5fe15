package compose

import (
	"fmt"
	"strings"

	"quiebre/pkg/core/area"
)

// notSpecified is the explicit marker the contextual variant substitutes
// for fields the caller left out. The minimal and avoidance variants use
// raw empty strings instead; the two conventions are deliberate and must
// not be unified.
const notSpecified = "No especificado"

// alignmentSubfield is appended to every proposal skeleton so the model
// cross-references each idea against the brief.
const alignmentSubfield = "Alineación con el brief"

// contextualComposer requires the brief alignment fields (brand, objective,
// target, restrictions, budget) and asks every proposal to state how it
// honors them.
type contextualComposer struct{}

func (c *contextualComposer) Variant() area.Variant { return area.VariantContextual }

func (c *contextualComposer) SystemPrompt() string {
	return systemPrompt(area.VariantContextual)
}

func (c *contextualComposer) Compose(a area.Area, fields map[string]string, prior []string) (string, error) {
	s, err := area.SchemaFor(a, area.VariantContextual)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeaderFields(&b, s, fields, notSpecified)
	b.WriteString("\nPor favor, genera ideas DISRUPTIVAS para CADA UNO de los siguientes aspectos.\n")
	b.WriteString("Cada propuesta debe indicar explícitamente cómo se alinea con el objetivo, el target, las restricciones y el presupuesto del brief.\n")

	for i, sec := range s.Sections {
		fmt.Fprintf(&b, "\n%d. %s:\n", i+1, sec.Title)
		if sec.ContextField != "" {
			v := fieldValue(fields, sec.ContextField)
			if v == "" {
				v = notSpecified
			}
			fmt.Fprintf(&b, "Contexto actual: %s\n", v)
		}
		fmt.Fprintf(&b, "Generar %d propuestas disruptivas alineadas al brief:\n", sec.Count)
		writeProposalSkeleton(&b, sec, alignmentSubfield)
	}

	writePriorBlock(&b, prior)
	return b.String(), nil
}
