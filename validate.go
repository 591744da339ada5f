package biomark

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	// MaxLines is the platform's bio line limit.
	MaxLines = 3
	// MaxChars is the platform's bio length limit, markup included.
	MaxChars = 250
)

// Limits bounds the size of a bio.
type Limits struct {
	MaxLines int
	MaxChars int
}

// DefaultLimits returns the platform limits.
func DefaultLimits() Limits {
	return Limits{MaxLines: MaxLines, MaxChars: MaxChars}
}

func (l Limits) orDefault() Limits {
	if l.MaxLines <= 0 {
		l.MaxLines = MaxLines
	}
	if l.MaxChars <= 0 {
		l.MaxChars = MaxChars
	}
	return l
}

// ValidateOption configures validation.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	limits       Limits
	strictColors bool
}

func newValidateConfig(opts []ValidateOption) validateConfig {
	cfg := validateConfig{limits: DefaultLimits(), strictColors: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.limits = cfg.limits.orDefault()
	return cfg
}

// WithLimits overrides the line and character limits. Zero fields keep the
// platform defaults.
func WithLimits(limits Limits) ValidateOption {
	return func(cfg *validateConfig) {
		cfg.limits = limits
	}
}

// WithStrictColors enables or disables the UnknownColor rule. When disabled,
// malformed color codes are accepted as literal text. Enabled by default.
func WithStrictColors(enabled bool) ValidateOption {
	return func(cfg *validateConfig) {
		cfg.strictColors = enabled
	}
}

// CharCount returns the length of raw as the platform counts it: UTF-16 code
// units, markup included.
func CharCount(raw string) int {
	n := 0
	for _, r := range raw {
		if size := utf16.RuneLen(r); size > 0 {
			n += size
		} else {
			n++
		}
	}
	return n
}

type checkInput struct {
	raw    string
	tokens []Token
	doc    Document
	cfg    validateConfig
}

type rule func(in *checkInput) (Verdict, bool)

var rules = []rule{
	checkMaxLines,
	checkMaxChars,
	checkUnclosedStyle,
	checkMismatchedStyleClose,
	checkUnknownColor,
}

// Validate checks raw against the bio rules and returns the first failure,
// or a valid Verdict.
func Validate(raw string, opts ...ValidateOption) Verdict {
	in := newCheckInput(raw, opts)
	for _, check := range rules {
		if v, failed := check(in); failed {
			return v
		}
	}
	return valid()
}

// Diagnose returns every failing rule, in the order Validate checks them.
// An empty result means raw is valid.
func Diagnose(raw string, opts ...ValidateOption) []Verdict {
	in := newCheckInput(raw, opts)
	var out []Verdict
	for _, check := range rules {
		if v, failed := check(in); failed {
			out = append(out, v)
		}
	}
	return out
}

func newCheckInput(raw string, opts []ValidateOption) *checkInput {
	tokens := Lex(raw)
	return &checkInput{
		raw:    raw,
		tokens: tokens,
		doc:    Parse(tokens),
		cfg:    newValidateConfig(opts),
	}
}

func checkMaxLines(in *checkInput) (Verdict, bool) {
	limit := in.cfg.limits.MaxLines
	if n := len(in.doc.Lines); n > limit {
		return invalid(RuleMaxLines, 0, "bio has %d lines; the limit is %d", n, limit), true
	}
	return Verdict{}, false
}

func checkMaxChars(in *checkInput) (Verdict, bool) {
	limit := in.cfg.limits.MaxChars
	if n := CharCount(in.raw); n > limit {
		return invalid(RuleMaxChars, 0, "bio is %d characters long; the limit is %d", n, limit), true
	}
	return Verdict{}, false
}

func checkUnclosedStyle(in *checkInput) (Verdict, bool) {
	for i, line := range in.doc.Lines {
		switch {
		case line.OpenBold > 0:
			return invalid(RuleUnclosedStyle, i+1, "line %d: %s is opened but never closed", i+1, StyleBold.Tag()), true
		case line.OpenItalic > 0:
			return invalid(RuleUnclosedStyle, i+1, "line %d: %s is opened but never closed", i+1, StyleItalic.Tag()), true
		}
	}
	return Verdict{}, false
}

func checkMismatchedStyleClose(in *checkInput) (Verdict, bool) {
	for i, line := range in.doc.Lines {
		if len(line.StrayCloses) > 0 {
			style := line.StrayCloses[0].Style
			return invalid(RuleMismatchedStyleClose, i+1, "line %d: %s has no matching %s", i+1, style.CloseTag(), style.Tag()), true
		}
	}
	return Verdict{}, false
}

func checkUnknownColor(in *checkInput) (Verdict, bool) {
	if !in.cfg.strictColors {
		return Verdict{}, false
	}
	line := 1
	for _, tok := range in.tokens {
		switch tok.Kind {
		case tokenLineBreak:
			line++
		case tokenBadColor:
			return invalid(RuleUnknownColor, line, "line %d: %s is not a color code; use six hex digits such as [FF0000]", line, tok.Text), true
		}
	}
	return Verdict{}, false
}

// ValidateInput returns an error if the input is not valid UTF-8 or appears
// binary. It guards file and network input before Validate runs.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	for _, b := range src {
		if b == 0x00 || isControlByte(b) {
			return ErrBinaryInput
		}
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	if b == 0x7F {
		return true
	}
	return false
}
