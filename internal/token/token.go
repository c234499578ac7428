package token

import (
	"github.com/duersjefen/deploy-kit/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or
// template literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, TemplateLit, KwTrue, KwFalse, KwNull, KwUndefined:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwConst, KwLet, KwVar, KwFunction, KwReturn, KwNew, KwExport,
		KwDefault, KwImport, KwFrom, KwAsync, KwAwait, KwIf, KwElse,
		KwFor, KwWhile, KwTypeof, KwThis, KwTrue, KwFalse, KwNull, KwUndefined:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
