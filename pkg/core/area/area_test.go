package area

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	for _, valid := range []string{"btl", "trade", "digital", "ideas"} {
		a, err := Parse(valid)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", valid, err)
		}
		if string(a) != valid {
			t.Errorf("Parse(%q) = %q", valid, a)
		}
	}

	for _, invalid := range []string{"", "foo", "BTL", "btl ", "marketing"} {
		_, err := Parse(invalid)
		if !errors.Is(err, ErrInvalidArea) {
			t.Errorf("Parse(%q): expected ErrInvalidArea, got %v", invalid, err)
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, valid := range []string{"minimal", "contextual", "avoidance"} {
		if _, err := ParseVariant(valid); err != nil {
			t.Errorf("ParseVariant(%q): unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseVariant("legacy"); err == nil {
		t.Error("ParseVariant(legacy): expected error")
	}
}

func TestSchemaForUnknownArea(t *testing.T) {
	_, err := SchemaFor(Area("foo"), VariantAvoidance)
	if !errors.Is(err, ErrInvalidArea) {
		t.Errorf("expected ErrInvalidArea, got %v", err)
	}
}

func TestSchemaForBTL(t *testing.T) {
	s, err := SchemaFor(BTL, VariantAvoidance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.Sections) != 7 {
		t.Errorf("expected 7 btl sections, got %d", len(s.Sections))
	}
	for _, sec := range s.Sections {
		if sec.Count != 3 {
			t.Errorf("section %s: expected count 3, got %d", sec.Title, sec.Count)
		}
		if len(sec.Subfields) != 3 {
			t.Errorf("section %s: expected 3 subfields, got %d", sec.Title, len(sec.Subfields))
		}
		if sec.ContextField != "" && !s.Recognizes(sec.ContextField) {
			t.Errorf("section %s references unrecognized field %q", sec.Title, sec.ContextField)
		}
	}

	for _, name := range []string{"solicitud", "conceptos", "locaciones", "antes-despues", "momento-peak", "activaciones", "puesta-escena", "forma-invitar"} {
		if !s.Recognizes(name) {
			t.Errorf("btl schema should recognize %q", name)
		}
	}
	if s.Recognizes("marca") {
		t.Error("avoidance btl schema should not include alignment fields")
	}
}

func TestContextualSchemaAddsAlignmentFields(t *testing.T) {
	for _, a := range All() {
		s, err := SchemaFor(a, VariantContextual)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", a, err)
		}
		for _, name := range []string{"marca", "objetivo", "target", "restricciones", "presupuesto"} {
			if !s.Recognizes(name) {
				t.Errorf("%s contextual schema should recognize %q", a, name)
			}
		}
		if s.Version != 2 {
			t.Errorf("%s contextual schema version = %d, want 2", a, s.Version)
		}
	}
}

func TestContextualIdeasBatchOfFive(t *testing.T) {
	s, err := SchemaFor(Ideas, VariantContextual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Sections[0].Count != 5 {
		t.Errorf("contextual ideas first section count = %d, want 5", s.Sections[0].Count)
	}

	// The base schema must stay at 3 after a contextual lookup.
	base, err := SchemaFor(Ideas, VariantAvoidance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.Sections[0].Count != 3 {
		t.Errorf("avoidance ideas first section count = %d, want 3", base.Sections[0].Count)
	}
}

func TestFieldNamesOrder(t *testing.T) {
	s, err := SchemaFor(Trade, VariantMinimal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"solicitud", "material-pop", "dinamicas", "materialidad"}
	got := s.FieldNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}
