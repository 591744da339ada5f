package biomark

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// RenderHTML writes the Document as HTML: one div per line, one span per
// segment with inline color and font styles.
func RenderHTML(w io.Writer, doc Document) error {
	if w == nil {
		return fmt.Errorf("render html: writer is nil")
	}
	var b strings.Builder
	b.WriteString(`<div class="bio">` + "\n")
	for _, line := range doc.Lines {
		b.WriteString(`  <div class="bio-line">`)
		if line.Empty() {
			b.WriteString("<br>")
		}
		for _, seg := range line.Segments {
			if seg.Text == "" {
				continue
			}
			b.WriteString(`<span style="color:#`)
			b.WriteString(seg.Color)
			if seg.Bold {
				b.WriteString(";font-weight:bold")
			}
			if seg.Italic {
				b.WriteString(";font-style:italic")
			}
			b.WriteString(`">`)
			b.WriteString(html.EscapeString(seg.Text))
			b.WriteString("</span>")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("render html: write: %w", err)
	}
	return nil
}
