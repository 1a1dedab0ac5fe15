// Package compose turns a partially-filled campaign context into the
// instruction document sent to the generation capability. Each template
// variant is a separate Composer implementation satisfying the same
// contract; exactly one is active per deployment.
package compose

import (
	"fmt"
	"strings"

	"quiebre/pkg/core/area"
)

// Composer builds instruction documents for one template variant.
// Compose is a pure function of its inputs: the same (area, fields, prior)
// always yields a byte-identical document, and it never fails for a known
// area. Fields absent from the map degrade to the variant's placeholder
// convention, never to an error. Values are embedded verbatim, however long.
type Composer interface {
	Variant() area.Variant
	SystemPrompt() string
	Compose(a area.Area, fields map[string]string, prior []string) (string, error)
}

// New returns the composer for the configured variant.
func New(v area.Variant) (Composer, error) {
	switch v {
	case area.VariantMinimal:
		return &minimalComposer{}, nil
	case area.VariantContextual:
		return &contextualComposer{}, nil
	case area.VariantAvoidance:
		return &avoidanceComposer{}, nil
	}
	return nil, fmt.Errorf("variante de prompt desconocida: %q", v)
}

// fieldValue looks up a context field; absent fields are empty, by contract.
func fieldValue(fields map[string]string, name string) string {
	if fields == nil {
		return ""
	}
	return fields[name]
}

// writeHeaderFields renders the titled header fields (request text plus, in
// the contextual variant, the alignment fields) one per line.
func writeHeaderFields(b *strings.Builder, s area.Schema, fields map[string]string, missing string) {
	for _, f := range s.Fields {
		if f.Title == "" {
			continue
		}
		v := fieldValue(fields, f.Name)
		if v == "" {
			v = missing
		}
		fmt.Fprintf(b, "%s: %s\n", f.Title, v)
	}
}

// writeProposalSkeleton renders the numbered-proposal skeleton of one
// section: the first proposal with its labeled sub-fields, then the
// continuation marker for the remaining ones. This shape is what the
// generation capability mirrors in its output.
func writeProposalSkeleton(b *strings.Builder, sec area.Section, extraSubfields ...string) {
	fmt.Fprintf(b, "%s 1:\n", sec.ItemLabel)
	for _, sub := range sec.Subfields {
		fmt.Fprintf(b, "- %s:\n", sub)
	}
	for _, sub := range extraSubfields {
		fmt.Fprintf(b, "- %s:\n", sub)
	}
	b.WriteString("\n")
	if sec.Count > 2 {
		fmt.Fprintf(b, "[Continuar con el mismo formato para %s 2 %s %d]\n", sec.ItemLabel, rangeWord(sec.Count), sec.Count)
	}
}

func rangeWord(count int) string {
	if count > 3 {
		return "a"
	}
	return "y"
}

// writePriorBlock appends the avoid-similarity block. With no prior
// artifacts the block is absent from the document entirely.
func writePriorBlock(b *strings.Builder, prior []string) {
	if len(prior) == 0 {
		return
	}
	b.WriteString("\nIDEAS PREVIAS DE ESTA SESIÓN (EVITAR SIMILITUD):\n")
	b.WriteString("Las nuevas propuestas NO deben parecerse a ninguna de las siguientes ideas ya generadas:\n")
	for i, p := range prior {
		fmt.Fprintf(b, "\nIDEA PREVIA %d:\n%s\n", i+1, p)
	}
}
