package biomark

import "strings"

const markerLen = len("[RRGGBB]")

// Lex scans raw bio markup into tokens. It never fails: anything that is not
// an exact marker is kept as literal text, brackets included.
func Lex(raw string) []Token {
	tokens := make([]Token, 0, 8)
	start := 0
	flush := func(end int) {
		if end > start {
			tokens = append(tokens, Token{Kind: tokenText, Text: raw[start:end], Pos: start})
		}
	}
	for i := 0; i < len(raw); {
		switch raw[i] {
		case '\n':
			flush(i)
			tokens = append(tokens, Token{Kind: tokenLineBreak, Text: "\n", Pos: i})
			i++
			start = i
		case '[':
			tok, n, ok := matchMarker(raw[i:])
			if !ok {
				i++
				continue
			}
			flush(i)
			tok.Pos = i
			tokens = append(tokens, tok)
			i += n
			start = i
		default:
			i++
		}
	}
	flush(len(raw))
	return tokens
}

// matchMarker reports whether s starts with a known marker and returns the
// token and its byte length. s[0] is always '['.
func matchMarker(s string) (Token, int, bool) {
	switch {
	case len(s) >= 3 && s[2] == ']':
		if style, ok := styleLetter(s[1]); ok {
			return Token{Kind: tokenStyleOpen, Style: style, Text: s[:3]}, 3, true
		}
	case len(s) >= 4 && s[1] == '/' && s[3] == ']':
		if style, ok := styleLetter(s[2]); ok {
			return Token{Kind: tokenStyleClose, Style: style, Text: s[:4]}, 4, true
		}
	}
	if len(s) < markerLen || s[markerLen-1] != ']' {
		return Token{}, 0, false
	}
	body := s[1 : markerLen-1]
	if isHex(body) {
		return Token{Kind: tokenColor, Color: strings.ToUpper(body), Text: s[:markerLen]}, markerLen, true
	}
	if looksLikeColor(body) {
		return Token{Kind: tokenBadColor, Text: s[:markerLen]}, markerLen, true
	}
	return Token{}, 0, false
}

func styleLetter(c byte) (StyleKind, bool) {
	switch c {
	case 'b', 'B':
		return StyleBold, true
	case 'i', 'I':
		return StyleItalic, true
	}
	return 0, false
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexByte(s[i]) {
			return false
		}
	}
	return true
}

func isHexByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// looksLikeColor matches a mistyped color code: six ASCII alphanumerics with
// at least one decimal digit. Bracketed words such as "[player]" stay text.
func looksLikeColor(s string) bool {
	digit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digit = true
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		default:
			return false
		}
	}
	return digit
}

// IsColorCode reports whether s is a six digit hex color, with or without a
// leading '#'.
func IsColorCode(s string) bool {
	s = strings.TrimPrefix(s, "#")
	return len(s) == 6 && isHex(s)
}
