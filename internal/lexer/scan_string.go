package lexer

import (
	"github.com/duersjefen/deploy-kit/internal/token"
)

// scanString scans a single- or double-quoted string literal. A newline or
// EOF before the closing quote yields an Invalid token covering what was
// read; the caller keeps going.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.tokenAt(token.StringLit, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			return lx.tokenAt(token.Invalid, start)
		}
		lx.cursor.Bump()
	}
	return lx.tokenAt(token.Invalid, start)
}

// scanTemplate scans a whole backtick template literal as one token,
// including its `${...}` substitutions. The parser re-scans substitutions
// with SetRange, so spans inside the template stay exact.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening backtick
	if lx.scanTemplateBody() {
		return lx.tokenAt(token.TemplateLit, start)
	}
	return lx.tokenAt(token.Invalid, start)
}

// scanTemplateBody consumes template text up to and including the closing
// backtick. Returns false on EOF before the template closes.
func (lx *Lexer) scanTemplateBody() bool {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '`':
			lx.cursor.Bump()
			return true
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return false
			}
			lx.cursor.Bump()
		case '$':
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '{' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				if !lx.scanSubstitution() {
					return false
				}
				continue
			}
			lx.cursor.Bump()
		default:
			lx.cursor.Bump()
		}
	}
	return false
}

// scanSubstitution consumes a `${...}` body up to and including the closing
// brace, balancing nested braces and skipping over string and template
// literals inside the expression.
func (lx *Lexer) scanSubstitution() bool {
	depth := 1
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '{':
			depth++
			lx.cursor.Bump()
		case '}':
			depth--
			lx.cursor.Bump()
			if depth == 0 {
				return true
			}
		case '\'', '"':
			// strings inside the substitution may contain braces
			lx.skipQuoted(b)
		case '`':
			lx.cursor.Bump()
			if !lx.scanTemplateBody() {
				return false
			}
		default:
			lx.cursor.Bump()
		}
	}
	return false
}

func (lx *Lexer) skipQuoted(quote byte) {
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return
			}
		}
		if b == '\n' {
			return
		}
		lx.cursor.Bump()
	}
}
