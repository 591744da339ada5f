package biomark

import (
	"reflect"
	"strings"
	"testing"
)

func TestMeasure(t *testing.T) {
	s := Measure("[FF0000]日本 PRO\nab", Limits{})
	if s.Chars != 17 || s.Lines != 2 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if !reflect.DeepEqual(s.Widths, []int{8, 2}) {
		t.Fatalf("unexpected widths %v", s.Widths)
	}
	if s.CharsWarning() || s.LinesWarning() {
		t.Fatalf("expected no warnings for %+v", s)
	}
	if s.String() != "17/250 chars, 2/3 lines" {
		t.Fatalf("unexpected summary %q", s.String())
	}
}

func TestMeasureWarnings(t *testing.T) {
	s := Measure(strings.Repeat("a", 241), DefaultLimits())
	if !s.CharsWarning() || s.CharsLeft() != 9 {
		t.Fatalf("expected char warning, got %+v", s)
	}
	s = Measure("a\nb\nc", DefaultLimits())
	if !s.LinesWarning() {
		t.Fatalf("expected line warning at the limit")
	}
	s = Measure("a\nb", Limits{MaxLines: 2, MaxChars: 2})
	if !s.LinesWarning() || s.CharsLeft() != -1 {
		t.Fatalf("expected custom limits to apply, got %+v", s)
	}
}
