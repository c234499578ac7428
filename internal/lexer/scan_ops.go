package lexer

import (
	"github.com/duersjefen/deploy-kit/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation by longest match.
// Unrecognized bytes become single-byte Invalid tokens.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Invalid
	switch b {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case ':':
		kind = token.Colon
	case '.':
		kind = token.Dot
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			kind = token.DotDotDot
		}
	case '?':
		kind = token.Question
		switch lx.cursor.Peek() {
		case '.':
			lx.cursor.Bump()
			kind = token.QuestionDot
		case '?':
			lx.cursor.Bump()
			kind = token.QuestionQuestion
			if lx.cursor.Peek() == '=' {
				lx.cursor.Bump()
				kind = token.QuestionQuestionAssign
			}
		}
	case '=':
		kind = token.Assign
		switch lx.cursor.Peek() {
		case '=':
			lx.cursor.Bump()
			kind = token.EqEq
			if lx.cursor.Peek() == '=' {
				lx.cursor.Bump()
				kind = token.EqEqEq
			}
		case '>':
			lx.cursor.Bump()
			kind = token.Arrow
		}
	case '!':
		kind = token.Bang
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.BangEq
			if lx.cursor.Peek() == '=' {
				lx.cursor.Bump()
				kind = token.BangEqEq
			}
		}
	case '+':
		kind = token.Plus
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.PlusAssign
		}
	case '-':
		kind = token.Minus
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.MinusAssign
		}
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '<':
		kind = token.Lt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.LtEq
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.GtEq
		}
	case '&':
		kind = token.Amp
		if lx.cursor.Peek() == '&' {
			lx.cursor.Bump()
			kind = token.AndAnd
		}
	case '|':
		kind = token.Pipe
		if lx.cursor.Peek() == '|' {
			lx.cursor.Bump()
			kind = token.OrOr
			if lx.cursor.Peek() == '=' {
				lx.cursor.Bump()
				kind = token.OrOrAssign
			}
		}
	}

	return lx.tokenAt(kind, start)
}
