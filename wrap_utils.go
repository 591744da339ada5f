package biomark

import (
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// fitLine truncates a styled line to limit printable cells, ending it with an
// ellipsis. A non-positive limit disables fitting.
func fitLine(text string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit == 1 {
		return ellipsis
	}
	return truncate.StringWithTail(text, uint(limit), ellipsis)
}
