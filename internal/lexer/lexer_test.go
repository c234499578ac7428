package lexer_test

import (
	"testing"

	"github.com/duersjefen/deploy-kit/internal/lexer"
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

func makeTestLexer(input string) *lexer.Lexer {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("sst.config.ts", []byte(input))
	return lexer.New(fs.Get(fileID))
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

func TestBasicTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			"const decl",
			`const stage = "dev";`,
			[]token.Kind{token.KwConst, token.Ident, token.Assign, token.StringLit, token.Semicolon, token.EOF},
		},
		{
			"dollar identifiers",
			`$app.stage`,
			[]token.Kind{token.Ident, token.Dot, token.Ident, token.EOF},
		},
		{
			"optional chaining",
			`input?.stage`,
			[]token.Kind{token.Ident, token.QuestionDot, token.Ident, token.EOF},
		},
		{
			"nullish and or",
			`a ?? b || c`,
			[]token.Kind{token.Ident, token.QuestionQuestion, token.Ident, token.OrOr, token.Ident, token.EOF},
		},
		{
			"arrow function",
			`() => ({})`,
			[]token.Kind{token.LParen, token.RParen, token.Arrow, token.LParen, token.LBrace, token.RBrace, token.RParen, token.EOF},
		},
		{
			"new expression",
			`new sst.aws.Bucket("b", {})`,
			[]token.Kind{token.KwNew, token.Ident, token.Dot, token.Ident, token.Dot, token.Ident, token.LParen, token.StringLit, token.Comma, token.LBrace, token.RBrace, token.RParen, token.EOF},
		},
		{
			"spread",
			`[...items]`,
			[]token.Kind{token.LBracket, token.DotDotDot, token.Ident, token.RBracket, token.EOF},
		},
		{
			"strict equality",
			`a === b !== c`,
			[]token.Kind{token.Ident, token.EqEqEq, token.Ident, token.BangEqEq, token.Ident, token.EOF},
		},
		{
			"numbers",
			`1 2.5 1e3 0xff 1_000`,
			[]token.Kind{token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit, token.EOF},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(collectAllTokens(makeTestLexer(tt.input)))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token %d: got %v, want %v (all: %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	lx := makeTestLexer("// line comment\nconst /* block */ a = 1;\n/// <reference path=\"./.sst/platform/config.d.ts\" />\n")
	got := kinds(collectAllTokens(lx))
	want := []token.Kind{token.KwConst, token.Ident, token.Assign, token.NumberLit, token.Semicolon, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTemplateLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain", "`hello`"},
		{"one substitution", "`${bucket.arn}`"},
		{"mixed", "`arn is ${bucket.arn} here`"},
		{"nested braces", "`${fn({ a: 1 })}`"},
		{"nested template", "`${`inner ${x}`}`"},
		{"string with brace inside", "`${sep(\"}\")}`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.TemplateLit {
				t.Fatalf("kind = %v, want TemplateLit", tok.Kind)
			}
			if tok.Text != tt.input {
				t.Errorf("text = %q, want %q", tok.Text, tt.input)
			}
			if next := lx.Next(); next.Kind != token.EOF {
				t.Errorf("expected EOF after template, got %v", next.Kind)
			}
		})
	}
}

func TestUnterminatedLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"string hits newline", "\"abc\ndef\""},
		{"string hits EOF", `"abc`},
		{"template hits EOF", "`abc${x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Fatalf("kind = %v, want Invalid", tok.Kind)
			}
			// the lexer must keep producing tokens after the bad one
			for i := 0; i < 10; i++ {
				if lx.Next().Kind == token.EOF {
					return
				}
			}
			t.Fatal("lexer did not reach EOF after invalid token")
		})
	}
}

func TestSpansAreExact(t *testing.T) {
	input := `const a = "x";`
	lx := makeTestLexer(input)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span %v text mismatch: span covers %q, token text %q", tok.Span, got, tok.Text)
		}
	}
}

func TestSetRange(t *testing.T) {
	input := "`${bucket.arn}`"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.ts", []byte(input))
	lx := lexer.New(fs.Get(fileID))
	// scan just the substitution body: bucket.arn
	lx.SetRange(3, 13)
	got := kinds(collectAllTokens(lx))
	want := []token.Kind{token.Ident, token.Dot, token.Ident, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := makeTestLexer("a b")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1 != p2 {
		t.Fatalf("Peek not stable: %+v vs %+v", p1, p2)
	}
	n := lx.Next()
	if n != p1 {
		t.Fatalf("Next returned %+v, peeked %+v", n, p1)
	}
}
