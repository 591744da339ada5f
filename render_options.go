package biomark

import "github.com/muesli/termenv"

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	profile termenv.Profile
	gutter  bool
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{profile: termenv.TrueColor}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithColorProfile selects the terminal color profile. termenv.Ascii renders
// plain text.
func WithColorProfile(profile termenv.Profile) RenderOption {
	return func(cfg *renderConfig) {
		cfg.profile = profile
	}
}

// WithGutter enables or disables line numbers.
func WithGutter(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.gutter = enabled
	}
}
