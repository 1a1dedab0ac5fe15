package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s, dir
}

func sampleRecord(t *testing.T, areaKey string) *Record {
	t.Helper()
	rec, err := Normalize(areaKey, UploadForm{
		Descripcion: "Activaciones de marca en vía pública, con énfasis en sorpresa.",
		Objetivos:   "aumentar recordación\ngenerar conversación\n",
		Experiencia: "inmersiva y sensorial",
		Interaccion: "participación directa del público",
		Viralidad:   "momentos diseñados para ser grabados",
		Practicas:   "medir asistencia\ndocumentar en video",
		Casos:       "Lanzamiento de bebida energética en azoteas.\n\nCine al aire libre para marca de telefonía.",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return rec
}

func TestFileStoreProvisionsPartitions(t *testing.T) {
	_, dir := newTestStore(t)
	for _, p := range []string{PartitionBrief, PartitionCasos, PartitionGuidelines} {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			t.Errorf("partition %s not provisioned: %v", p, err)
		}
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord(t, "btl")
	if err := s.Put(ctx, "btl", rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, "btl")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	wantJSON, _ := json.Marshal(rec)
	gotJSON, _ := json.Marshal(got)
	if !reflect.DeepEqual(wantJSON, gotJSON) {
		t.Errorf("round-trip mismatch:\n got %s\nwant %s", gotJSON, wantJSON)
	}
}

func TestFileStoreOverwrites(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := sampleRecord(t, "btl")
	if err := s.Put(ctx, "btl", first); err != nil {
		t.Fatalf("Put: %v", err)
	}

	second, err := Normalize("btl", UploadForm{Descripcion: "versión nueva", Casos: "Caso único"})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if err := s.Put(ctx, "btl", second); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, "btl")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Descripcion != "versión nueva" {
		t.Errorf("descripcion = %q, want replacement", got.Descripcion)
	}
	if len(got.Casos) != 1 {
		t.Errorf("expected full replacement, got %d casos", len(got.Casos))
	}
	if len(got.Objetivos) != 0 {
		t.Errorf("expected no merge with prior record, got objetivos %v", got.Objetivos)
	}
}

func TestFileStoreNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Get(context.Background(), "nunca-subido")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestFileStorePreservesUTF8(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord(t, "btl")
	if err := s.Put(ctx, "btl", rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, PartitionBrief, "btl.json"))
	if err != nil {
		t.Fatalf("reading persisted document: %v", err)
	}
	if !strings.Contains(string(raw), "énfasis en sorpresa") {
		t.Error("persisted document should contain non-ASCII text verbatim")
	}
	if strings.Contains(string(raw), "\\u00e9") {
		t.Error("non-ASCII characters must not be escaped")
	}
}

func TestFileStoreFreeTextKeys(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Knowledge keys are caller-supplied free text, not limited to the
	// four generation areas.
	rec := sampleRecord(t, "retail peru")
	if err := s.Put(ctx, "retail peru", rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "retail peru")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Area != "retail peru" {
		t.Errorf("area = %q", got.Area)
	}
}

func TestFileStoreRejectsEmptyKey(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.Put(context.Background(), "  ", sampleRecord(t, "btl"))
	if !errors.Is(err, ErrMissingAreaKey) {
		t.Errorf("expected ErrMissingAreaKey, got %v", err)
	}
}

func TestFileStoreLoadsHandEditedDocuments(t *testing.T) {
	s, dir := newTestStore(t)

	// Operators sometimes touch up the persisted briefs by hand; reads
	// tolerate hjson-isms like comments and trailing commas.
	doc := `{
  // brief editado a mano
  "id": "manual",
  "area": "btl",
  "descripcion_general": "editado",
  "objetivos": ["uno", "dos",],
  "elementos_clave": {"experiencia": "e", "interaccion": "i", "viralidad": "v"},
  "mejores_practicas": [],
  "casos_exito": [],
  "actualizado_en": "2026-01-15T10:00:00Z",
}`
	path := filepath.Join(dir, PartitionBrief, "btl.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("seeding document: %v", err)
	}

	got, err := s.Get(context.Background(), "btl")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Descripcion != "editado" {
		t.Errorf("descripcion = %q", got.Descripcion)
	}
	if len(got.Objetivos) != 2 {
		t.Errorf("objetivos = %v", got.Objetivos)
	}
}
