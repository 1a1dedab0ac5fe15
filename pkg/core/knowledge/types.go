// Package knowledge normalizes free-text campaign submissions (briefs,
// best practices, past case studies) into canonical records and persists
// one record per area key. The newest upload replaces the prior record
// wholesale; there is no merge or versioning.
package knowledge

import (
	"errors"
	"time"
)

// ErrMissingAreaKey is returned when a submission arrives without an area key.
var ErrMissingAreaKey = errors.New("falta el área de conocimiento")

// ErrRecordNotFound is returned by stores when no record exists for a key.
var ErrRecordNotFound = errors.New("registro de conocimiento no encontrado")

// Placeholder values for case-study attributes the normalizer does not
// attempt to extract from the raw text. Intentional: the raw project blob
// is kept verbatim and the rest is filled in later by a human.
const (
	PlaceholderCliente     = "Cliente por identificar"
	PlaceholderDescripcion = "Descripción pendiente de completar"
	PlaceholderResultados  = "Resultados pendientes de completar"
)

// CaseStudy is one blank-line-separated paragraph of the raw case material,
// wrapped with fixed placeholder attributes.
type CaseStudy struct {
	Cliente     string `json:"cliente"`
	Proyecto    string `json:"proyecto"`
	Descripcion string `json:"descripcion"`
	Resultados  string `json:"resultados"`
}

// ElementosClave is the fixed triad of key-element strings every upload
// carries.
type ElementosClave struct {
	Experiencia string `json:"experiencia"`
	Interaccion string `json:"interaccion"`
	Viralidad   string `json:"viralidad"`
}

// Record is the canonical persisted form of one knowledge upload. Exactly
// one record exists per area key at any time; last write wins.
type Record struct {
	ID               string         `json:"id"`
	Area             string         `json:"area"`
	Descripcion      string         `json:"descripcion_general"`
	Objetivos        []string       `json:"objetivos"`
	ElementosClave   ElementosClave `json:"elementos_clave"`
	MejoresPracticas []string       `json:"mejores_practicas"`
	Casos            []CaseStudy    `json:"casos_exito"`
	ActualizadoEn    time.Time      `json:"actualizado_en"`
}

// UploadForm carries the raw free-text fields of one /upload submission.
type UploadForm struct {
	Descripcion string
	Objetivos   string
	Experiencia string
	Interaccion string
	Viralidad   string
	Practicas   string
	Casos       string
	// CasosHTML accepts case material pasted straight from a web page;
	// it is reduced to paragraph text before normalization.
	CasosHTML string
}
