package diag

import (
	"strings"
	"testing"

	"github.com/duersjefen/deploy-kit/internal/source"
)

func TestCodesAreWellFormed(t *testing.T) {
	seen := make(map[Code]bool)
	for _, code := range Codes() {
		if seen[code] {
			t.Errorf("code %s registered twice", code)
		}
		seen[code] = true

		parts := strings.Split(string(code), "-")
		if len(parts) != 3 || parts[0] != "SST" || len(parts[2]) != 3 {
			t.Errorf("code %s does not match SST-<ABBR>-<NNN>", code)
		}
	}
	if len(seen) != 13 {
		t.Errorf("expected 13 shipped codes, got %d", len(seen))
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		code Code
		want Category
	}{
		{CodeStageOutsideApp, CategoryStage},
		{CodeUnindexedField, CategoryIndexing},
		{CodeCorsLegacyName, CategoryCors},
		{Code("SST-XXX-999"), CategoryGeneral},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.code); got != tt.want {
			t.Errorf("CategoryOf(%s) = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestBuilderPositions(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.ts", []byte("ab\ncd ef\n"))
	f := fs.Get(id)

	v := NewViolation(CodeHardcodedStage, SevWarning, f, source.Span{File: id, Start: 6, End: 8}, "msg").
		OnResource("Api").
		OnProperty("stage").
		Build()
	if v.Line != 2 || v.Column != 4 {
		t.Errorf("position = %d:%d, want 2:4", v.Line, v.Column)
	}
	if v.Category != CategoryStage {
		t.Errorf("category = %s", v.Category)
	}
	if v.Resource != "Api" || v.Property != "stage" {
		t.Errorf("resource/property = %q/%q", v.Resource, v.Property)
	}
}

func TestSortIsDeterministic(t *testing.T) {
	f := func() []Violation {
		return []Violation{
			{Code: CodeOutputConcat, Severity: SevWarning, Span: source.Span{Start: 10, End: 20}},
			{Code: CodeStageOutsideApp, Severity: SevError, Span: source.Span{Start: 10, End: 20}},
			{Code: CodeHardcodedStage, Severity: SevWarning, Span: source.Span{Start: 5, End: 8}},
		}
	}
	a, b := f(), f()
	Sort(a)
	Sort(b)
	for i := range a {
		if a[i].Code != b[i].Code {
			t.Fatalf("sort not deterministic at %d", i)
		}
	}
	if a[0].Code != CodeHardcodedStage {
		t.Errorf("first by position, got %s", a[0].Code)
	}
	// same span: error sorts before warning
	if a[1].Code != CodeStageOutsideApp {
		t.Errorf("error should sort before warning, got %s", a[1].Code)
	}
}

func TestSeverityAndConfidenceStrings(t *testing.T) {
	if SevError.String() != "ERROR" || SevWarning.String() != "WARNING" {
		t.Error("severity strings changed")
	}
	for _, s := range []string{"low", "medium", "high"} {
		c, ok := ParseConfidence(s)
		if !ok || c.String() != s {
			t.Errorf("ParseConfidence(%q) roundtrip failed", s)
		}
	}
	if _, ok := ParseConfidence("certain"); ok {
		t.Error("unknown confidence accepted")
	}
}

func TestSeverityTextRoundTrip(t *testing.T) {
	for _, sev := range []Severity{SevWarning, SevError} {
		text, err := sev.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", sev, err)
		}
		var got Severity
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if got != sev {
			t.Errorf("round trip of %v gave %v", sev, got)
		}
	}
	var s Severity
	if err := s.UnmarshalText([]byte("FATAL")); err == nil {
		t.Error("unknown severity accepted")
	}
}

func TestConfidenceTextRoundTrip(t *testing.T) {
	for _, conf := range []Confidence{ConfLow, ConfMedium, ConfHigh} {
		text, err := conf.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", conf, err)
		}
		var got Confidence
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if got != conf {
			t.Errorf("round trip of %v gave %v", conf, got)
		}
	}
	var c Confidence
	if err := c.UnmarshalText([]byte("certain")); err == nil {
		t.Error("unknown confidence accepted")
	}
}
