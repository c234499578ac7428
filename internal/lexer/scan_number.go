package lexer

import (
	"github.com/duersjefen/deploy-kit/internal/token"
)

// scanNumber accepts the JS numeric shapes that occur in config files:
// decimal, decimal fraction, exponent, hex/octal/binary prefixes, and
// numeric separators. It does not validate deeply; a malformed number still
// becomes a NumberLit token with the offending text.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X' || b1 == 'o' || b1 == 'O' || b1 == 'b' || b1 == 'B') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() && (isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
			lx.cursor.Bump()
		}
		return lx.tokenAt(token.NumberLit, start)
	}

	lx.bumpDigits()
	if lx.cursor.Peek() == '.' {
		if _, b1, ok := lx.cursor.Peek2(); ok && isDec(b1) {
			lx.cursor.Bump()
			lx.bumpDigits()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (isDec(b1) || b1 == '+' || b1 == '-') {
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			lx.bumpDigits()
		}
	}
	return lx.tokenAt(token.NumberLit, start)
}

func (lx *Lexer) bumpDigits() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isDec(b) || b == '_' {
			lx.cursor.Bump()
			continue
		}
		break
	}
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
