package biomark

import "strings"

// DefaultColor is the platform's text color for lines without a color marker.
const DefaultColor = "FFFFFF"

// Segment is a run of literal text sharing one color and style state.
type Segment struct {
	Text   string
	Color  string
	Bold   bool
	Italic bool
}

func (s Segment) sameStyle(o Segment) bool {
	return s.Color == o.Color && s.Bold == o.Bold && s.Italic == o.Italic
}

// Line is one bio line. OpenBold, OpenItalic and StrayCloses record markup
// defects found while parsing; they do not affect Segments.
type Line struct {
	Segments    []Segment
	OpenBold    int
	OpenItalic  int
	StrayCloses []Token
}

// Text returns the visible characters of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, seg := range l.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Empty reports whether the line has no visible text.
func (l Line) Empty() bool {
	for _, seg := range l.Segments {
		if seg.Text != "" {
			return false
		}
	}
	return true
}

// Document is a parsed bio.
type Document struct {
	Lines []Line
}

// PlainText returns the visible text with markup stripped and lines joined
// by newlines.
func (d Document) PlainText() string {
	parts := make([]string, len(d.Lines))
	for i, line := range d.Lines {
		parts[i] = line.Text()
	}
	return strings.Join(parts, "\n")
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	if d.Lines == nil {
		return Document{}
	}
	lines := make([]Line, len(d.Lines))
	for i, line := range d.Lines {
		lines[i] = line
		if line.Segments != nil {
			lines[i].Segments = append([]Segment(nil), line.Segments...)
		}
		if line.StrayCloses != nil {
			lines[i].StrayCloses = append([]Token(nil), line.StrayCloses...)
		}
	}
	return Document{Lines: lines}
}

// Markup serialises d back to canonical markup: a color marker only where
// the color changes, style markers balanced within each line.
func (d Document) Markup() string {
	var b strings.Builder
	for i, line := range d.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeLineMarkup(&b, line)
	}
	return b.String()
}

func writeLineMarkup(b *strings.Builder, line Line) {
	color := DefaultColor
	bold, italic := false, false
	for _, seg := range line.Segments {
		if seg.Text == "" {
			continue
		}
		if italic && !seg.Italic {
			b.WriteString(StyleItalic.CloseTag())
			italic = false
		}
		if bold && !seg.Bold {
			b.WriteString(StyleBold.CloseTag())
			bold = false
		}
		if seg.Color != color {
			b.WriteString("[" + seg.Color + "]")
			color = seg.Color
		}
		if seg.Bold && !bold {
			b.WriteString(StyleBold.Tag())
			bold = true
		}
		if seg.Italic && !italic {
			b.WriteString(StyleItalic.Tag())
			italic = true
		}
		b.WriteString(seg.Text)
	}
	if italic {
		b.WriteString(StyleItalic.CloseTag())
	}
	if bold {
		b.WriteString(StyleBold.CloseTag())
	}
}

type parser struct {
	doc         Document
	line        Line
	color       string
	boldDepth   int
	italicDepth int
}

// Parse builds a Document from tokens. It never fails: a close marker with
// nothing open is recorded on its Line and otherwise ignored.
func Parse(tokens []Token) Document {
	p := parser{}
	p.startLine()
	for _, tok := range tokens {
		switch tok.Kind {
		case tokenText, tokenBadColor:
			p.appendText(tok.Text)
		case tokenColor:
			p.color = tok.Color
		case tokenStyleOpen:
			*p.depth(tok.Style)++
		case tokenStyleClose:
			depth := p.depth(tok.Style)
			if *depth == 0 {
				p.line.StrayCloses = append(p.line.StrayCloses, tok)
				continue
			}
			*depth--
		case tokenLineBreak:
			p.endLine()
			p.startLine()
		}
	}
	p.endLine()
	return p.doc
}

// ParseString is Parse(Lex(raw)).
func ParseString(raw string) Document {
	return Parse(Lex(raw))
}

func (p *parser) depth(style StyleKind) *int {
	if style == StyleItalic {
		return &p.italicDepth
	}
	return &p.boldDepth
}

func (p *parser) current(text string) Segment {
	return Segment{
		Text:   text,
		Color:  p.color,
		Bold:   p.boldDepth > 0,
		Italic: p.italicDepth > 0,
	}
}

func (p *parser) appendText(text string) {
	if text == "" {
		return
	}
	seg := p.current(text)
	if n := len(p.line.Segments); n > 0 && p.line.Segments[n-1].sameStyle(seg) {
		p.line.Segments[n-1].Text += text
		return
	}
	p.line.Segments = append(p.line.Segments, seg)
}

func (p *parser) startLine() {
	p.line = Line{}
	p.color = DefaultColor
	p.boldDepth = 0
	p.italicDepth = 0
}

func (p *parser) endLine() {
	if len(p.line.Segments) == 0 {
		p.line.Segments = append(p.line.Segments, p.current(""))
	}
	p.line.OpenBold = p.boldDepth
	p.line.OpenItalic = p.italicDepth
	p.doc.Lines = append(p.doc.Lines, p.line)
}
