package compose

import (
	"fmt"
	"strings"

	"quiebre/pkg/core/area"
)

// avoidanceComposer echoes each current/conventional field value back into
// the document and instructs the model to break with it. This is the
// variant the production deployment runs.
type avoidanceComposer struct{}

func (c *avoidanceComposer) Variant() area.Variant { return area.VariantAvoidance }

func (c *avoidanceComposer) SystemPrompt() string {
	return systemPrompt(area.VariantAvoidance)
}

func (c *avoidanceComposer) Compose(a area.Area, fields map[string]string, prior []string) (string, error) {
	s, err := area.SchemaFor(a, area.VariantAvoidance)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeaderFields(&b, s, fields, "")
	b.WriteString("\nPor favor, genera ideas DISRUPTIVAS y DIFERENTES para CADA UNO de los siguientes aspectos:\n")

	for i, sec := range s.Sections {
		fmt.Fprintf(&b, "\n%d. %s:\n", i+1, sec.Title)
		if sec.ContextField != "" {
			fmt.Fprintf(&b, "Contexto actual: %s\n", fieldValue(fields, sec.ContextField))
			fmt.Fprintf(&b, "Generar %d propuestas que rompan completamente con lo anterior:\n", sec.Count)
		} else {
			fmt.Fprintf(&b, "Proponer %d propuestas disruptivas:\n", sec.Count)
		}
		writeProposalSkeleton(&b, sec)
	}

	writePriorBlock(&b, prior)
	return b.String(), nil
}
