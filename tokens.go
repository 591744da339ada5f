package biomark

import "fmt"

// Token is one lexical unit of bio markup.
type Token struct {
	Kind  TokenKind
	Text  string
	Color string
	Style StyleKind
	Pos   int
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and renderers.
type TokenKind = tokenKind

const (
	tokenText tokenKind = iota
	tokenColor
	tokenStyleOpen
	tokenStyleClose
	tokenLineBreak
	tokenBadColor
)

const (
	// TokenText is a literal text run.
	TokenText TokenKind = tokenText
	// TokenColor is a [RRGGBB] color marker.
	TokenColor TokenKind = tokenColor
	// TokenStyleOpen is [b] or [i].
	TokenStyleOpen TokenKind = tokenStyleOpen
	// TokenStyleClose is [/b] or [/i].
	TokenStyleClose TokenKind = tokenStyleClose
	// TokenLineBreak is a newline.
	TokenLineBreak TokenKind = tokenLineBreak
	// TokenBadColor is a bracketed six character body that looks like a color
	// code but is not hexadecimal. It renders as literal text.
	TokenBadColor TokenKind = tokenBadColor
)

func (k tokenKind) String() string {
	switch k {
	case tokenText:
		return "Text"
	case tokenColor:
		return "Color"
	case tokenStyleOpen:
		return "StyleOpen"
	case tokenStyleClose:
		return "StyleClose"
	case tokenLineBreak:
		return "LineBreak"
	case tokenBadColor:
		return "BadColor"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// StyleKind selects bold or italic.
type StyleKind uint8

const (
	StyleBold StyleKind = iota
	StyleItalic
)

func (s StyleKind) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	default:
		return fmt.Sprintf("StyleKind(%d)", uint8(s))
	}
}

// Tag returns the opening marker for the style, e.g. "[b]".
func (s StyleKind) Tag() string {
	if s == StyleItalic {
		return "[i]"
	}
	return "[b]"
}

// CloseTag returns the closing marker for the style, e.g. "[/b]".
func (s StyleKind) CloseTag() string {
	if s == StyleItalic {
		return "[/i]"
	}
	return "[/b]"
}

func (t Token) String() string {
	switch t.Kind {
	case tokenColor:
		return fmt.Sprintf("Token(%s, %s)", t.Kind, t.Color)
	case tokenStyleOpen, tokenStyleClose:
		return fmt.Sprintf("Token(%s, %s)", t.Kind, t.Style)
	case tokenLineBreak:
		return "Token(LineBreak)"
	default:
		return fmt.Sprintf("Token(%s, %q)", t.Kind, t.Text)
	}
}
