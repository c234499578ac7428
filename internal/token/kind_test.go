package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"const", KwConst},
		{"async", KwAsync},
		{"undefined", KwUndefined},
		{"stage", Ident},
		{"$app", Ident},
		{"class", Ident}, // unsupported keyword degrades to identifier
	}
	for _, tt := range tests {
		if got := LookupKeyword(tt.text); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := QuestionDot.String(); got != "?." {
		t.Errorf("QuestionDot.String() = %q", got)
	}
	if got := Kind(255).String(); got != "Unknown" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

func TestTokenClasses(t *testing.T) {
	if !(Token{Kind: TemplateLit}).IsLiteral() {
		t.Error("TemplateLit should be a literal")
	}
	if !(Token{Kind: KwAwait}).IsKeyword() {
		t.Error("await should be a keyword")
	}
	if (Token{Kind: Ident}).IsKeyword() {
		t.Error("Ident is not a keyword")
	}
	if !(Token{Kind: Ident}).IsIdent() {
		t.Error("Ident should report IsIdent")
	}
}
