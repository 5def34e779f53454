// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pdf-extract/internal/extract"
)

// NoTextMarker stands in for the text of a page with nothing extractable.
const NoTextMarker = "[No extractable text]"

// pageSeparator goes between consecutive page sections.
const pageSeparator = "\n\n"

// PageLabel returns the boundary line that opens the section of page n.
func PageLabel(n int) string {
	return fmt.Sprintf("--- Page %d ---", n)
}

// RenderPages joins pages into the text written to the output file. Each
// page becomes its label, a newline, and its text or NoTextMarker.
func RenderPages(pages []extract.Page) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteString(pageSeparator)
		}
		b.WriteString(PageLabel(p.Number))
		b.WriteByte('\n')
		if p.HasText() {
			b.WriteString(p.Text)
		} else {
			b.WriteString(NoTextMarker)
		}
	}
	return b.String()
}
