package parser

import (
	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

// parsePostfix parses a primary expression followed by any chain of member
// accesses, calls, computed indexing, and tagged templates.
func (p *Parser) parsePostfix() ast.Expr {
	start := p.lx.Peek().Span
	x := p.parsePrimary()
	return p.parsePostfixFrom(x, start)
}

func (p *Parser) parsePostfixFrom(x ast.Expr, start source.Span) ast.Expr {
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			x = p.parseMemberProp(x, start, false)
		case token.QuestionDot:
			p.advance()
			switch p.lx.Peek().Kind {
			case token.LParen:
				x = p.parseCallArgs(x, start)
			case token.LBracket:
				x = p.parseComputed(x, start, true)
			default:
				x = p.parseMemberProp(x, start, true)
			}
		case token.LBracket:
			x = p.parseComputed(x, start, false)
		case token.LParen:
			x = p.parseCallArgs(x, start)
		case token.TemplateLit:
			tok := p.advance()
			tpl := p.parseTemplate(tok)
			tpl.Tag = x
			tpl.Sp = p.spanFrom(start)
			x = tpl
		default:
			return x
		}
	}
}

// parseMemberProp parses the property name after '.' or '?.'. A keyword in
// property position is treated as a plain name.
func (p *Parser) parseMemberProp(x ast.Expr, start source.Span, optional bool) ast.Expr {
	tok := p.lx.Peek()
	if tok.Kind == token.Ident || tok.IsKeyword() {
		p.advance()
		return &ast.Member{
			Sp:       p.spanFrom(start),
			X:        x,
			Prop:     tok.Text,
			PropSpan: tok.Span,
			Optional: optional,
		}
	}
	// dangling dot; keep what we have
	return &ast.Member{
		Sp:       p.spanFrom(start),
		X:        x,
		PropSpan: tok.Span,
		Optional: optional,
	}
}

func (p *Parser) parseComputed(x ast.Expr, start source.Span, optional bool) ast.Expr {
	p.advance() // '['
	var idx ast.Expr
	if !p.at(token.RBracket) {
		idx = p.parseAssignExpr()
	}
	p.eat(token.RBracket)
	return &ast.Member{
		Sp:       p.spanFrom(start),
		X:        x,
		Index:    idx,
		Optional: optional,
	}
}

func (p *Parser) parseCallArgs(fn ast.Expr, start source.Span) ast.Expr {
	p.advance() // '('
	args := make([]ast.Expr, 0, 4)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		before := p.lx.Offset()
		if p.at(token.DotDotDot) {
			spreadStart := p.advance().Span
			inner := p.parseAssignExpr()
			args = append(args, &ast.Unary{Sp: p.spanFrom(spreadStart), Op: token.DotDotDot, X: inner})
		} else {
			args = append(args, p.parseAssignExpr())
		}
		if !p.eat(token.Comma) && !p.at(token.RParen) {
			if p.lx.Offset() == before {
				p.advance()
			}
		}
	}
	p.eat(token.RParen)
	return &ast.Call{Sp: p.spanFrom(start), Fn: fn, Args: args}
}

// parseNew parses `new callee(args)`. The callee is restricted to a member
// chain so that `new a.b.C("x", {}).prop` groups the way JS does.
func (p *Parser) parseNew() ast.Expr {
	start := p.advance().Span // 'new'
	calleeStart := p.lx.Peek().Span
	callee := p.parsePrimary()
	// member accesses only; a '(' ends the callee
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			callee = p.parseMemberProp(callee, calleeStart, false)
			continue
		case token.LBracket:
			callee = p.parseComputed(callee, calleeStart, false)
			continue
		}
		break
	}
	args := make([]ast.Expr, 0, 2)
	if p.at(token.LParen) {
		call := p.parseCallArgs(callee, start).(*ast.Call)
		args = call.Args
	}
	return &ast.New{Sp: p.spanFrom(start), Callee: callee, Args: args}
}
