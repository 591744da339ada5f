package biomark

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// charWarnMargin is how close to the character limit a bio may get before
// the counter warns.
const charWarnMargin = 10

// Stats summarises a bio against its limits for editor counters.
type Stats struct {
	Chars  int
	Lines  int
	Limits Limits
	// Widths holds the display width of each line's visible text.
	Widths []int
}

// Measure counts raw against limits. Zero limit fields use the platform
// defaults.
func Measure(raw string, limits Limits) Stats {
	limits = limits.orDefault()
	doc := ParseString(raw)
	widths := make([]int, len(doc.Lines))
	for i, line := range doc.Lines {
		widths[i] = runewidth.StringWidth(line.Text())
	}
	return Stats{
		Chars:  CharCount(raw),
		Lines:  strings.Count(raw, "\n") + 1,
		Limits: limits,
		Widths: widths,
	}
}

// CharsWarning reports whether the bio is within the warning margin of the
// character limit, or over it.
func (s Stats) CharsWarning() bool {
	return s.Chars > s.Limits.MaxChars-charWarnMargin
}

// LinesWarning reports whether the bio has no line left to add.
func (s Stats) LinesWarning() bool {
	return s.Lines >= s.Limits.MaxLines
}

// CharsLeft returns the remaining character budget, negative when over.
func (s Stats) CharsLeft() int {
	return s.Limits.MaxChars - s.Chars
}

func (s Stats) String() string {
	return fmt.Sprintf("%d/%d chars, %d/%d lines", s.Chars, s.Limits.MaxChars, s.Lines, s.Limits.MaxLines)
}
