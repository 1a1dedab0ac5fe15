package compose

import (
	"fmt"
	"strings"

	"quiebre/pkg/core/area"
)

// minimalComposer asks for disruptive proposals per sub-topic with no
// constraints. Supplied context is echoed as plain reference; missing
// fields render as raw empty strings.
type minimalComposer struct{}

func (c *minimalComposer) Variant() area.Variant { return area.VariantMinimal }

func (c *minimalComposer) SystemPrompt() string {
	return systemPrompt(area.VariantMinimal)
}

func (c *minimalComposer) Compose(a area.Area, fields map[string]string, prior []string) (string, error) {
	s, err := area.SchemaFor(a, area.VariantMinimal)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeaderFields(&b, s, fields, "")
	b.WriteString("\nPor favor, genera propuestas COMPLETAMENTE DISRUPTIVAS para CADA UNO de los siguientes aspectos:\n")

	for i, sec := range s.Sections {
		fmt.Fprintf(&b, "\n%d. %s:\n", i+1, sec.Title)
		if sec.ContextField != "" {
			fmt.Fprintf(&b, "Referencia: %s\n", fieldValue(fields, sec.ContextField))
		}
		fmt.Fprintf(&b, "Generar %d propuestas disruptivas, sin restricciones:\n", sec.Count)
		writeProposalSkeleton(&b, sec)
	}

	writePriorBlock(&b, prior)
	return b.String(), nil
}
