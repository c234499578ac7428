package parser

import (
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

// advance consumes the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// eat consumes the next token if it has the given kind.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// spanFrom builds a span from a start span to the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	end := p.lastSpan.End
	if end < start.Start {
		end = start.Start
	}
	return source.Span{File: start.File, Start: start.Start, End: end}
}

// skipBalanced consumes one bracketing token and everything up to its
// matching close, tracking all three bracket kinds. Used for destructuring
// patterns and loop headers the tree does not model.
func (p *Parser) skipBalanced() {
	open := p.advance().Kind
	var close token.Kind
	switch open {
	case token.LParen:
		close = token.RParen
	case token.LBrace:
		close = token.RBrace
	case token.LBracket:
		close = token.RBracket
	default:
		return
	}
	depth := 1
	for depth > 0 {
		tok := p.advance()
		switch tok.Kind {
		case token.EOF:
			return
		case open:
			depth++
		case close:
			depth--
		}
	}
}

// aheadIsArrow reports whether the token stream starting at the current
// '(' forms a parenthesized parameter list followed by '=>'. It scans a
// throwaway sub-lexer so the main stream is untouched.
func (p *Parser) aheadIsArrow() bool {
	sub := p.subLexerAt(p.lx.Offset())
	first := sub.Next()
	if first.Kind != token.LParen {
		return false
	}
	depth := 1
	for depth > 0 {
		tok := sub.Next()
		switch tok.Kind {
		case token.EOF:
			return false
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
	}
	return sub.Next().Kind == token.Arrow
}
