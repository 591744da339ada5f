package biomark

import (
	"errors"
	"strings"
	"testing"
)

func assertRule(t *testing.T, raw string, want Rule, opts ...ValidateOption) Verdict {
	t.Helper()
	v := Validate(raw, opts...)
	if want == RuleNone {
		if !v.Valid {
			t.Fatalf("Validate(%q): expected valid, got %s: %s", raw, v.Rule, v.Message)
		}
		return v
	}
	if v.Valid {
		t.Fatalf("Validate(%q): expected %s, got valid", raw, want)
	}
	if v.Rule != want {
		t.Fatalf("Validate(%q): expected %s, got %s (%s)", raw, want, v.Rule, v.Message)
	}
	if v.Message == "" {
		t.Fatalf("Validate(%q): expected a message", raw)
	}
	return v
}

func TestValidateAcceptsThreeColoredLines(t *testing.T) {
	v := assertRule(t, "[FF0000]🔥 PRO PLAYER\n[FFFFFF]Rank: Heroic\n[00FF00]Daily Active", RuleNone)
	if v.Message != "" || v.Err() != nil {
		t.Fatalf("expected no message or error on a valid verdict, got %q", v.Message)
	}
}

func TestValidateMaxLines(t *testing.T) {
	v := assertRule(t, "a\nb\nc\nd", RuleMaxLines)
	if !strings.Contains(v.Message, "4") || !strings.Contains(v.Message, "3") {
		t.Fatalf("expected message to name count and limit, got %q", v.Message)
	}
	assertRule(t, "a\nb\nc\n", RuleMaxLines)
	assertRule(t, "a\nb\nc", RuleNone)
}

func TestValidateMaxChars(t *testing.T) {
	assertRule(t, strings.Repeat("a", MaxChars), RuleNone)
	v := assertRule(t, strings.Repeat("a", MaxChars+1), RuleMaxChars)
	if !strings.Contains(v.Message, "251") || !strings.Contains(v.Message, "250") {
		t.Fatalf("expected message to name length and limit, got %q", v.Message)
	}
}

func TestValidateMaxCharsCountsMarkupAndSurrogates(t *testing.T) {
	if got := CharCount("🔥"); got != 2 {
		t.Fatalf("expected emoji to count as 2, got %d", got)
	}
	if got := CharCount("[b]é[/b]"); got != 8 {
		t.Fatalf("expected markup to be counted, got %d", got)
	}
	assertRule(t, strings.Repeat("🔥", 125), RuleNone)
	assertRule(t, strings.Repeat("🔥", 126), RuleMaxChars)
}

func TestValidateRuleOrder(t *testing.T) {
	assertRule(t, strings.Repeat("a\n", 4)+strings.Repeat("x", 300), RuleMaxLines)
	assertRule(t, "[b]"+strings.Repeat("x", 300), RuleMaxChars)
	assertRule(t, "[/b]x[b]", RuleUnclosedStyle)
	assertRule(t, "[/i][GG0000]", RuleMismatchedStyleClose)
}

func TestValidateUnclosedStyle(t *testing.T) {
	v := assertRule(t, "[b]Pro", RuleUnclosedStyle)
	if v.Line != 1 || !strings.Contains(v.Message, "[b]") {
		t.Fatalf("unexpected verdict %+v", v)
	}
	v = assertRule(t, "ok\n[i]x", RuleUnclosedStyle)
	if v.Line != 2 || !strings.Contains(v.Message, "[i]") {
		t.Fatalf("unexpected verdict %+v", v)
	}
}

func TestValidateStyleDoesNotCrossLines(t *testing.T) {
	v := assertRule(t, "[b]a\n[/b]", RuleUnclosedStyle)
	if v.Line != 1 {
		t.Fatalf("expected line 1, got %d", v.Line)
	}
	d := Diagnose("[b]a\n[/b]")
	if len(d) != 2 || d[1].Rule != RuleMismatchedStyleClose || d[1].Line != 2 {
		t.Fatalf("expected stray close on line 2, got %+v", d)
	}
}

func TestValidateMismatchedStyleClose(t *testing.T) {
	v := assertRule(t, "ok\n[/b]x", RuleMismatchedStyleClose)
	if v.Line != 2 || !strings.Contains(v.Message, "[/b]") {
		t.Fatalf("unexpected verdict %+v", v)
	}
	assertRule(t, "[b]a[/b][/b]", RuleMismatchedStyleClose)
}

func TestValidateUnknownColor(t *testing.T) {
	v := assertRule(t, "ok\n[GG0000]x", RuleUnknownColor)
	if v.Line != 2 || !strings.Contains(v.Message, "[GG0000]") {
		t.Fatalf("unexpected verdict %+v", v)
	}
	assertRule(t, "[GG0000]x", RuleNone, WithStrictColors(false))
	assertRule(t, "[player] ready", RuleNone)
}

func TestValidateWithLimits(t *testing.T) {
	assertRule(t, "a\nb\nc", RuleMaxLines, WithLimits(Limits{MaxLines: 2}))
	assertRule(t, "abcdef", RuleMaxChars, WithLimits(Limits{MaxChars: 5}))
	assertRule(t, "a\nb\nc", RuleNone, WithLimits(Limits{}))
}

func TestVerdictErr(t *testing.T) {
	err := Validate("[b]x").Err()
	if !errors.Is(err, ErrUnclosedStyle) {
		t.Fatalf("expected ErrUnclosedStyle, got %v", err)
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Rule != RuleUnclosedStyle || vErr.Line != 1 {
		t.Fatalf("expected *ValidationError, got %#v", err)
	}
	if err.Error() == "" {
		t.Fatalf("expected message in error")
	}
	if RuleMaxLines.String() != "MaxLines" || RuleNone.Err() != nil {
		t.Fatalf("unexpected rule names")
	}
}

func TestDiagnoseReportsEveryRuleInOrder(t *testing.T) {
	d := Diagnose("[b]x[/i]\n[GG0000]")
	want := []Rule{RuleUnclosedStyle, RuleMismatchedStyleClose, RuleUnknownColor}
	if len(d) != len(want) {
		t.Fatalf("expected %d verdicts, got %+v", len(want), d)
	}
	for i, rule := range want {
		if d[i].Rule != rule || d[i].Valid {
			t.Fatalf("verdict %d: expected %s, got %+v", i, rule, d[i])
		}
	}
	if got := Diagnose("[b]ok[/b]"); len(got) != 0 {
		t.Fatalf("expected no verdicts, got %+v", got)
	}
}

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if err := ValidateInput([]byte("[b]ok[/b]\n\tfine")); err != nil {
		t.Fatalf("expected text input to pass, got %v", err)
	}
}
