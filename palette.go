package biomark

import (
	"fmt"
	"strings"
)

// PaletteColor is a named color offered by bio editors.
type PaletteColor struct {
	Name string
	Hex  string
}

// Marker returns the color marker, e.g. "[FF0000]".
func (c PaletteColor) Marker() string {
	return "[" + c.Hex + "]"
}

var palette = []PaletteColor{
	{"red", "FF0000"},
	{"crimson", "DC143C"},
	{"dark-red", "8B0000"},
	{"tomato", "FF6347"},
	{"coral", "FF7F50"},
	{"orange-red", "FF4500"},
	{"orange", "FFA500"},
	{"dark-orange", "FF8C00"},
	{"gold", "FFD700"},
	{"yellow", "FFFF00"},
	{"khaki", "F0E68C"},
	{"lime", "00FF00"},
	{"chartreuse", "7FFF00"},
	{"lawn-green", "7CFC00"},
	{"green", "008000"},
	{"forest-green", "228B22"},
	{"spring-green", "00FF7F"},
	{"sea-green", "2E8B57"},
	{"olive", "808000"},
	{"teal", "008080"},
	{"cyan", "00FFFF"},
	{"turquoise", "40E0D0"},
	{"aquamarine", "7FFFD4"},
	{"sky-blue", "87CEEB"},
	{"deep-sky-blue", "00BFFF"},
	{"dodger-blue", "1E90FF"},
	{"royal-blue", "4169E1"},
	{"blue", "0000FF"},
	{"navy", "000080"},
	{"indigo", "4B0082"},
	{"blue-violet", "8A2BE2"},
	{"purple", "800080"},
	{"violet", "EE82EE"},
	{"magenta", "FF00FF"},
	{"deep-pink", "FF1493"},
	{"hot-pink", "FF69B4"},
	{"pink", "FFC0CB"},
	{"brown", "A52A2A"},
	{"chocolate", "D2691E"},
	{"tan", "D2B48C"},
	{"white", "FFFFFF"},
	{"silver", "C0C0C0"},
	{"gray", "808080"},
	{"black", "000000"},
}

// Palette returns the editor colors in display order.
func Palette() []PaletteColor {
	return append([]PaletteColor(nil), palette...)
}

// PaletteColorByName looks up a palette color. Matching ignores case.
func PaletteColorByName(name string) (PaletteColor, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range palette {
		if c.Name == name {
			return c, true
		}
	}
	return PaletteColor{}, false
}

// Wrap surrounds text with the open and close markers of style.
func Wrap(text string, style StyleKind) string {
	return style.Tag() + text + style.CloseTag()
}

// Colorize prefixes text with a color marker. color is a palette name or a
// six digit hex code with an optional '#'.
func Colorize(text, color string) (string, error) {
	if c, ok := PaletteColorByName(color); ok {
		return c.Marker() + text, nil
	}
	if !IsColorCode(color) {
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}
	return "[" + strings.ToUpper(strings.TrimPrefix(color, "#")) + "]" + text, nil
}
