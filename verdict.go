package biomark

import (
	"errors"
	"fmt"
)

// Rule names the constraint a bio failed.
type Rule uint8

const (
	RuleNone Rule = iota
	RuleMaxLines
	RuleMaxChars
	RuleUnclosedStyle
	RuleMismatchedStyleClose
	RuleUnknownColor
)

var ruleNames = [...]string{
	RuleNone:                 "None",
	RuleMaxLines:             "MaxLines",
	RuleMaxChars:             "MaxChars",
	RuleUnclosedStyle:        "UnclosedStyle",
	RuleMismatchedStyleClose: "MismatchedStyleClose",
	RuleUnknownColor:         "UnknownColor",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

var (
	// ErrTooManyLines reports a bio with more lines than allowed.
	ErrTooManyLines = errors.New("too many lines")
	// ErrTooLong reports a bio with more characters than allowed.
	ErrTooLong = errors.New("too many characters")
	// ErrUnclosedStyle reports [b] or [i] left open at the end of a line.
	ErrUnclosedStyle = errors.New("unclosed style")
	// ErrMismatchedStyleClose reports [/b] or [/i] with nothing to close.
	ErrMismatchedStyleClose = errors.New("mismatched style close")
	// ErrUnknownColor reports a malformed color code.
	ErrUnknownColor = errors.New("unknown color")
)

// Err returns the sentinel error for r, or nil for RuleNone.
func (r Rule) Err() error {
	switch r {
	case RuleMaxLines:
		return ErrTooManyLines
	case RuleMaxChars:
		return ErrTooLong
	case RuleUnclosedStyle:
		return ErrUnclosedStyle
	case RuleMismatchedStyleClose:
		return ErrMismatchedStyleClose
	case RuleUnknownColor:
		return ErrUnknownColor
	default:
		return nil
	}
}

// Verdict is the outcome of validating a bio. Line is 1-based and zero for
// rules that apply to the whole bio.
type Verdict struct {
	Valid   bool
	Rule    Rule
	Message string
	Line    int
}

// Err returns nil for a valid verdict and a *ValidationError otherwise.
func (v Verdict) Err() error {
	if v.Valid {
		return nil
	}
	return &ValidationError{Rule: v.Rule, Line: v.Line, Message: v.Message}
}

// ValidationError carries a failed Verdict through error-returning code.
// It unwraps to the rule's sentinel error.
type ValidationError struct {
	Rule    Rule
	Line    int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Rule.Err()
}

func valid() Verdict {
	return Verdict{Valid: true}
}

func invalid(rule Rule, line int, format string, args ...any) Verdict {
	return Verdict{Rule: rule, Line: line, Message: fmt.Sprintf(format, args...)}
}
