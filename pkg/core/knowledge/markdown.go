package knowledge

import (
	"fmt"
	"strings"
)

// Markdown renders the record as a human-readable markdown document, used
// by the HTML export of the conocimiento endpoint.
func (r *Record) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Conocimiento: %s\n\n", r.Area)
	if r.Descripcion != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Descripcion)
	}

	if len(r.Objetivos) > 0 {
		b.WriteString("## Objetivos\n\n")
		for _, o := range r.Objetivos {
			fmt.Fprintf(&b, "- %s\n", o)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Elementos clave\n\n")
	fmt.Fprintf(&b, "- **Experiencia**: %s\n", r.ElementosClave.Experiencia)
	fmt.Fprintf(&b, "- **Interacción**: %s\n", r.ElementosClave.Interaccion)
	fmt.Fprintf(&b, "- **Viralidad**: %s\n\n", r.ElementosClave.Viralidad)

	if len(r.MejoresPracticas) > 0 {
		b.WriteString("## Mejores prácticas\n\n")
		for _, p := range r.MejoresPracticas {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	for i, c := range r.Casos {
		fmt.Fprintf(&b, "## Caso %d: %s\n\n", i+1, c.Cliente)
		fmt.Fprintf(&b, "%s\n\n", c.Proyecto)
		fmt.Fprintf(&b, "- Descripción: %s\n", c.Descripcion)
		fmt.Fprintf(&b, "- Resultados: %s\n\n", c.Resultados)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
