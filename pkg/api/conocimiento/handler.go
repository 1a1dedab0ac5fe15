// Package conocimiento exposes the knowledge upload and retrieval
// endpoints. Uploads are form-encoded free text; each one replaces the
// stored record for its area key wholesale.
package conocimiento

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"quiebre/pkg/core/knowledge"
	"quiebre/pkg/core/utils"
)

// StatusResponse is the upload reply payload.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handler holds the knowledge store for the endpoints.
type Handler struct {
	Store knowledge.Store
}

func NewHandler(store knowledge.Store) *Handler {
	return &Handler{Store: store}
}

// HandleUpload accepts one form-encoded knowledge submission. The area key
// is caller-supplied free text and deliberately not restricted to the four
// generation areas.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeStatus(w, http.StatusMethodNotAllowed, "error", "método no permitido")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeStatus(w, http.StatusBadRequest, "error", "formulario inválido")
		return
	}

	areaKey := r.FormValue("area")
	form := knowledge.UploadForm{
		Descripcion: r.FormValue("descripcion"),
		Objetivos:   r.FormValue("objetivos"),
		Experiencia: r.FormValue("experiencia"),
		Interaccion: r.FormValue("interaccion"),
		Viralidad:   r.FormValue("viralidad"),
		Practicas:   r.FormValue("practicas"),
		Casos:       r.FormValue("casos"),
		CasosHTML:   r.FormValue("casos_html"),
	}

	rec, err := knowledge.Normalize(areaKey, form)
	if errors.Is(err, knowledge.ErrMissingAreaKey) {
		writeStatus(w, http.StatusBadRequest, "error", "falta el campo area")
		return
	}
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "error", err.Error())
		return
	}

	if err := h.Store.Put(r.Context(), areaKey, rec); err != nil {
		fmt.Printf("[UPLOAD] Error persistiendo conocimiento de %q: %v\n", areaKey, err)
		writeStatus(w, http.StatusInternalServerError, "error", err.Error())
		return
	}

	fmt.Printf("[UPLOAD] Conocimiento actualizado para el área: %s\n", rec.Area)
	writeStatus(w, http.StatusOK, "success",
		fmt.Sprintf("Conocimiento actualizado para el área %s", rec.Area))
}

// HandleGet returns the stored record for ?area=K, as JSON or as HTML when
// ?formato=html.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if r.Method != http.MethodGet {
		writeStatus(w, http.StatusMethodNotAllowed, "error", "método no permitido")
		return
	}

	areaKey := r.URL.Query().Get("area")
	if areaKey == "" {
		writeStatus(w, http.StatusBadRequest, "error", "falta el parámetro area")
		return
	}

	rec, err := h.Store.Get(r.Context(), areaKey)
	if errors.Is(err, knowledge.ErrRecordNotFound) {
		writeStatus(w, http.StatusNotFound, "error", err.Error())
		return
	}
	if err != nil {
		fmt.Printf("[CONOCIMIENTO] Error leyendo %q: %v\n", areaKey, err)
		writeStatus(w, http.StatusInternalServerError, "error", err.Error())
		return
	}

	if r.URL.Query().Get("formato") == "html" {
		html, err := utils.RenderHTML(rec.Markdown())
		if err != nil {
			writeStatus(w, http.StatusInternalServerError, "error", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, html)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	enc.Encode(rec)
}

func writeStatus(w http.ResponseWriter, code int, status string, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(StatusResponse{Status: status, Message: msg})
}
