package knowledge

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Normalize turns one raw upload into a canonical Record. The
// normalization is lossy but deterministic: list fields are split on
// newlines, case material on blank-line paragraphs, and no attempt is made
// to extract real client names or outcomes from the text.
func Normalize(areaKey string, form UploadForm) (*Record, error) {
	areaKey = strings.TrimSpace(areaKey)
	if areaKey == "" {
		return nil, ErrMissingAreaKey
	}

	casos := splitParagraphs(form.Casos)
	if form.CasosHTML != "" {
		casos = append(casos, splitParagraphs(StripHTML(form.CasosHTML))...)
	}

	rec := &Record{
		ID:          uuid.NewString(),
		Area:        areaKey,
		Descripcion: form.Descripcion,
		Objetivos:   splitLines(form.Objetivos),
		ElementosClave: ElementosClave{
			Experiencia: form.Experiencia,
			Interaccion: form.Interaccion,
			Viralidad:   form.Viralidad,
		},
		MejoresPracticas: splitLines(form.Practicas),
		ActualizadoEn:    time.Now().UTC().Truncate(time.Second),
	}

	for _, c := range casos {
		rec.Casos = append(rec.Casos, CaseStudy{
			Cliente:     PlaceholderCliente,
			Proyecto:    c,
			Descripcion: PlaceholderDescripcion,
			Resultados:  PlaceholderResultados,
		})
	}

	return rec, nil
}

// splitLines splits on newlines, trims each line and drops empties,
// preserving order.
func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitParagraphs splits on blank-line-separated paragraphs, trims each
// paragraph and drops empties, preserving order. Windows line endings are
// normalized first so pasted text behaves the same everywhere.
func splitParagraphs(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	var out []string
	for _, p := range strings.Split(raw, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
