package biomark

import (
	"sort"
	"strings"
)

// Styles groups the preview colors that are not part of the bio itself.
// Colors are six digit hex codes; an empty value leaves the terminal default.
type Styles struct {
	Background string
	Gutter     string
	OK         string
	Warning    string
}

// Theme provides named styles for bio previews.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition. Invalid colors are
// dropped.
func NewTheme(name string, styles Styles) Theme {
	styles.Background = normalizeColor(styles.Background)
	styles.Gutter = normalizeColor(styles.Gutter)
	styles.OK = normalizeColor(styles.OK)
	styles.Warning = normalizeColor(styles.Warning)
	return theme{name: name, styles: styles}
}

func normalizeColor(c string) string {
	if !IsColorCode(c) {
		return ""
	}
	return strings.ToUpper(strings.TrimPrefix(c, "#"))
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{Gutter: "6C6C6C", OK: "5FD75F", Warning: "FF5F5F"}},
	"ingame":  theme{name: "ingame", styles: Styles{Background: "1B1B1B", Gutter: "8A8A8A", OK: "00FF00", Warning: "FF0000"}},
	"lobby":   theme{name: "lobby", styles: Styles{Background: "2B1A0F", Gutter: "FFA500", OK: "FFD700", Warning: "FF4500"}},
	"boring":  theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
