package lexer

import (
	"github.com/duersjefen/deploy-kit/internal/token"
)

const utf8RuneSelf = 0x80

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) || b >= utf8RuneSelf {
			lx.cursor.Bump()
			continue
		}
		break
	}
	tok := lx.tokenAt(token.Ident, start)
	tok.Kind = token.LookupKeyword(tok.Text)
	return tok
}
