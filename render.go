package biomark

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/termenv"
)

const gutterSep = " │ "

// RenderRequest configures Render.
type RenderRequest struct {
	Writer   io.Writer
	Document Document
	Width    int
	Theme    Theme
	Options  []RenderOption
}

// Render writes a terminal preview of the Document, one output line per bio
// line. Lines wider than Width are cut with an ellipsis; a Width of zero
// disables fitting.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := newRenderConfig(req.Options)
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	styles := theme.Styles()
	numWidth := len(strconv.Itoa(len(req.Document.Lines)))

	var b strings.Builder
	for i, line := range req.Document.Lines {
		width := req.Width
		if cfg.gutter {
			num := fmt.Sprintf("%*d", numWidth, i+1) + gutterSep
			width -= ansi.PrintableRuneWidth(num)
			b.WriteString(colorize(cfg.profile, num, styles.Gutter))
		}
		var body strings.Builder
		for _, seg := range line.Segments {
			if seg.Text == "" {
				continue
			}
			body.WriteString(styleSegment(cfg.profile, seg, styles.Background))
		}
		if req.Width > 0 && width < 1 {
			width = 1
		}
		b.WriteString(fitLine(body.String(), width))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(req.Writer, b.String()); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// RenderString renders raw markup to a string with the default theme.
func RenderString(raw string, width int, opts ...RenderOption) string {
	var b strings.Builder
	_ = Render(RenderRequest{
		Writer:   &b,
		Document: ParseString(raw),
		Width:    width,
		Options:  opts,
	})
	return b.String()
}

func styleSegment(p termenv.Profile, seg Segment, background string) string {
	if p == termenv.Ascii {
		return seg.Text
	}
	s := p.String(seg.Text).Foreground(p.Color("#" + seg.Color))
	if background != "" {
		s = s.Background(p.Color("#" + background))
	}
	if seg.Bold {
		s = s.Bold()
	}
	if seg.Italic {
		s = s.Italic()
	}
	return s.String()
}

func colorize(p termenv.Profile, text, color string) string {
	if color == "" || p == termenv.Ascii {
		return text
	}
	return p.String(text).Foreground(p.Color("#" + color)).String()
}
