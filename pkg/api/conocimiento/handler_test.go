package conocimiento

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quiebre/pkg/core/knowledge"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store, err := knowledge.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewHandler(store)
}

func postForm(t *testing.T, h *Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.HandleUpload(rr, req)
	return rr
}

func sampleForm() url.Values {
	return url.Values{
		"area":        {"btl"},
		"descripcion": {"Activaciones de marca en vía pública."},
		"objetivos":   {"aumentar recordación\ngenerar conversación"},
		"experiencia": {"inmersiva"},
		"interaccion": {"participación directa"},
		"viralidad":   {"momentos grabables"},
		"practicas":   {"medir asistencia\ndocumentar en video"},
		"casos":       {"Lanzamiento en azoteas.\n\nCine al aire libre."},
	}
}

func TestHandleUploadSuccess(t *testing.T) {
	h := newTestHandler(t)

	rr := postForm(t, h, sampleForm())
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var resp StatusResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Message != "Conocimiento actualizado para el área btl" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestHandleUploadMissingArea(t *testing.T) {
	h := newTestHandler(t)

	form := sampleForm()
	form.Set("area", "   ")
	rr := postForm(t, h, form)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	var resp StatusResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "falta el campo area" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestHandleUploadFreeTextAreaKey(t *testing.T) {
	h := newTestHandler(t)

	form := sampleForm()
	form.Set("area", "experiencias-retail")
	rr := postForm(t, h, form)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
}

func TestHandleGetJSON(t *testing.T) {
	h := newTestHandler(t)
	if rr := postForm(t, h, sampleForm()); rr.Code != http.StatusOK {
		t.Fatalf("seed upload failed: %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/conocimiento?area=btl", nil)
	rr := httptest.NewRecorder()
	h.HandleGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	var rec knowledge.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decoding record: %v", err)
	}
	if rec.Area != "btl" {
		t.Errorf("area = %q", rec.Area)
	}
	if len(rec.Objetivos) != 2 {
		t.Errorf("objetivos = %v", rec.Objetivos)
	}
	if len(rec.Casos) != 2 {
		t.Errorf("casos = %d entries, want 2", len(rec.Casos))
	}
	if rec.Casos[0].Cliente != knowledge.PlaceholderCliente {
		t.Errorf("cliente = %q, want placeholder", rec.Casos[0].Cliente)
	}
	if strings.Contains(rr.Body.String(), "\\u00ed") {
		t.Error("non-ASCII characters must not be escaped in the reply")
	}
}

func TestHandleGetHTML(t *testing.T) {
	h := newTestHandler(t)
	if rr := postForm(t, h, sampleForm()); rr.Code != http.StatusOK {
		t.Fatalf("seed upload failed: %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/conocimiento?area=btl&formato=html", nil)
	rr := httptest.NewRecorder()
	h.HandleGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<h1>") || !strings.Contains(body, "Conocimiento: btl") {
		t.Errorf("expected rendered heading, got %q", body)
	}
	if !strings.Contains(body, "aumentar recordación") {
		t.Error("rendered document should carry the uploaded text")
	}
}

func TestHandleGetMissingParam(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/conocimiento", nil)
	rr := httptest.NewRecorder()
	h.HandleGet(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestHandleGetNotFound(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/conocimiento?area=nunca", nil)
	rr := httptest.NewRecorder()
	h.HandleGet(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestHandleUploadOverwrites(t *testing.T) {
	h := newTestHandler(t)
	if rr := postForm(t, h, sampleForm()); rr.Code != http.StatusOK {
		t.Fatalf("seed upload failed: %d", rr.Code)
	}

	form := url.Values{
		"area":        {"btl"},
		"descripcion": {"versión nueva"},
	}
	if rr := postForm(t, h, form); rr.Code != http.StatusOK {
		t.Fatalf("second upload failed: %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/conocimiento?area=btl", nil)
	rr := httptest.NewRecorder()
	h.HandleGet(rr, req)

	var rec knowledge.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decoding record: %v", err)
	}
	if rec.Descripcion != "versión nueva" {
		t.Errorf("descripcion = %q, want replacement", rec.Descripcion)
	}
	if len(rec.Objetivos) != 0 {
		t.Errorf("expected no merge with prior record, got %v", rec.Objetivos)
	}
}
