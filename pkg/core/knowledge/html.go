package knowledge

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML reduces pasted HTML case material to plain paragraph text.
// Block-level elements become blank-line-separated paragraphs so the
// result feeds straight into the normal paragraph split.
func StripHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Unparseable input is treated as plain text.
		return html
	}

	doc.Find("script, style").Remove()

	var paragraphs []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	// No block elements found: fall back to the flattened document text.
	if len(paragraphs) == 0 {
		return strings.TrimSpace(doc.Text())
	}

	return strings.Join(paragraphs, "\n\n")
}
