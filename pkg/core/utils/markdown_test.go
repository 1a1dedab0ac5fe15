package utils

import (
	"strings"
	"testing"
)

func TestCleanMarkdown(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```markdown\n# Título\ntexto\n```", "# Título\ntexto"},
		{"```\nIDEA 1: algo\n```", "IDEA 1: algo"},
		{"  sin fences  ", "sin fences"},
		{"IDEA 1: con ``` en medio", "IDEA 1: con ``` en medio"},
	}
	for _, c := range cases {
		if got := CleanMarkdown(c.in); got != c.want {
			t.Errorf("CleanMarkdown(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# Conocimiento: btl\n\n- objetivo uno\n")
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(html, "<h1>") || !strings.Contains(html, "objetivo uno") {
		t.Errorf("unexpected render: %q", html)
	}
}
