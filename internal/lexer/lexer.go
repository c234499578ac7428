// Package lexer tokenizes config source files (the sst.config.ts dialect).
// It is tolerant: bytes it cannot classify become Invalid tokens instead of
// stopping the scan, so a best-effort tree can still be built downstream.
package lexer

import (
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// SetRange restricts the lexer to the half-open byte range [start, limit).
// Used for sub-parsing template literal substitutions.
func (lx *Lexer) SetRange(start, limit uint32) {
	lx.cursor.Off = start
	lx.cursor.Limit = limit
	lx.look = nil
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		// non-ASCII bytes are folded into identifiers without normalization
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString(ch)
	case ch == '`':
		return lx.scanTemplate()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Offset returns the byte offset the lexer will scan from next, ignoring
// any buffered lookahead.
func (lx *Lexer) Offset() uint32 {
	if lx.look != nil {
		return lx.look.Span.Start
	}
	return lx.cursor.Off
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipTrivia consumes whitespace and comments. Comments are not retained:
// fixes splice the raw text, so nothing is lost by dropping them here.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for !lx.cursor.EOF() {
					if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
						lx.cursor.Bump()
						lx.cursor.Bump()
						break
					}
					lx.cursor.Bump()
				}
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) isNumberAfterDot() bool {
	_, b1, ok := lx.cursor.Peek2()
	return ok && isDec(b1)
}

func (lx *Lexer) tokenAt(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
