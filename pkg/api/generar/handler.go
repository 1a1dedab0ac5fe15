// Package generar exposes the POST /generar endpoint: campaign context in,
// generated disruptive ideas out, keyed by the requested area.
package generar

import (
	"encoding/json"
	"fmt"
	"net/http"

	"quiebre/pkg/core/area"
	"quiebre/pkg/core/ideation"
)

// Request mirrors the wire format of the original service: the requested
// area plus one context object named after it, optional prior ideas and
// the opt-in JSON format flag.
type Request struct {
	AreaSolicitada string   `json:"area_solicitada"`
	IdeasPrevias   []string `json:"ideas_previas"`
	FormatoJSON    bool     `json:"formato_json"`

	BTL     map[string]string `json:"btl"`
	Trade   map[string]string `json:"trade"`
	Digital map[string]string `json:"digital"`
	Ideas   map[string]string `json:"ideas"`
}

// fieldsFor returns the context object matching the requested area.
// A missing object is treated as all-empty fields, never as an error.
func (req *Request) fieldsFor(a area.Area) map[string]string {
	switch a {
	case area.BTL:
		return req.BTL
	case area.Trade:
		return req.Trade
	case area.Digital:
		return req.Digital
	case area.Ideas:
		return req.Ideas
	}
	return nil
}

// Handler holds the generation orchestrator for the endpoint.
type Handler struct {
	Orch *ideation.Orchestrator
}

func NewHandler(orch *ideation.Orchestrator) *Handler {
	return &Handler{Orch: orch}
}

func (h *Handler) HandleGenerar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "método no permitido")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	a, err := area.Parse(req.AreaSolicitada)
	if err != nil {
		fmt.Printf("[GENERAR] Área no válida: %q\n", req.AreaSolicitada)
		writeError(w, http.StatusBadRequest, "Área no válida")
		return
	}

	fmt.Printf("[GENERAR] Generando ideas para área: %s\n", a)

	respuesta, err := h.Orch.Generate(r.Context(), ideation.Request{
		Area:       a,
		Fields:     req.fieldsFor(a),
		Prior:      req.IdeasPrevias,
		JSONFormat: req.FormatoJSON,
	})
	if err != nil {
		fmt.Printf("[GENERAR] Error: %v\n", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{string(a): respuesta})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
