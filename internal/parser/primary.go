package parser

import (
	"strings"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident, token.KwThis, token.KwFrom, token.KwDefault:
		// 'from' and 'default' double as plain identifiers in value position
		t := p.advance()
		return &ast.Ident{Sp: t.Span, Name: t.Text}
	case token.NumberLit:
		t := p.advance()
		return &ast.NumberLit{Sp: t.Span, Raw: t.Text}
	case token.StringLit:
		t := p.advance()
		return &ast.StringLit{Sp: t.Span, Raw: t.Text, Value: cookString(t.Text)}
	case token.TemplateLit:
		t := p.advance()
		tpl := p.parseTemplate(t)
		return tpl
	case token.KwTrue, token.KwFalse:
		t := p.advance()
		return &ast.BoolLit{Sp: t.Span, Value: t.Kind == token.KwTrue}
	case token.KwNull, token.KwUndefined:
		t := p.advance()
		return &ast.NullLit{Sp: t.Span, Raw: t.Text}
	case token.KwNew:
		return p.parseNew()
	case token.KwFunction:
		return p.parseFuncExpr(false, tok.Span)
	case token.KwAsync:
		return p.parseAsyncExpr()
	case token.LParen:
		if p.aheadIsArrow() {
			return p.parseParenArrow(false, tok.Span)
		}
		start := p.advance().Span
		x := p.parseExpr()
		p.eat(token.RParen)
		return &ast.Paren{Sp: p.spanFrom(start), X: x}
	case token.LBracket:
		return p.parseArray()
	case token.LBrace:
		return p.parseObject()
	default:
		// unusable token; consume it so callers always make progress
		t := p.advance()
		return &ast.Bad{Sp: t.Span}
	}
}

func (p *Parser) parseAsyncExpr() ast.Expr {
	start := p.advance().Span // 'async'
	switch p.lx.Peek().Kind {
	case token.KwFunction:
		return p.parseFuncExpr(true, start)
	case token.LParen:
		if p.aheadIsArrow() {
			return p.parseParenArrow(true, start)
		}
	case token.Ident:
		// `async input => ...`
		identStart := p.lx.Peek().Span
		id := p.advance()
		if p.at(token.Arrow) {
			fn := p.parseArrowFrom(&ast.Ident{Sp: id.Span, Name: id.Text}, identStart).(*ast.FuncLit)
			fn.Async = true
			fn.Sp = p.spanFrom(start)
			return fn
		}
		// plain identifier literally named 'async' followed by another
		// identifier is nonsense anyway; keep the second one
		return &ast.Ident{Sp: id.Span, Name: id.Text}
	}
	return &ast.Ident{Sp: start, Name: "async"}
}

func (p *Parser) parseFuncExpr(async bool, start source.Span) ast.Expr {
	p.advance() // 'function'
	name := ""
	if p.at(token.Ident) {
		name = p.advance().Text
	}
	params := p.parseParams()
	var body *ast.Block
	if p.at(token.LBrace) {
		body = p.parseBlock().(*ast.Block)
	}
	return &ast.FuncLit{
		Sp:     p.spanFrom(start),
		Name:   name,
		Params: params,
		Body:   body,
		Async:  async,
	}
}

func (p *Parser) parseParenArrow(async bool, start source.Span) ast.Expr {
	params := p.parseParams()
	fn := &ast.FuncLit{
		Params: params,
		Arrow:  true,
		Async:  async,
	}
	if p.eat(token.Arrow) {
		if p.at(token.LBrace) {
			fn.Body = p.parseBlock().(*ast.Block)
		} else {
			fn.Expr = p.parseAssignExpr()
		}
	}
	fn.Sp = p.spanFrom(start)
	return fn
}

// parseParams parses '(name, name = default, {pattern})'. Only plain names
// are recorded; defaults, type annotations, and destructuring patterns are
// skipped but contribute to the parameter count.
func (p *Parser) parseParams() []ast.Param {
	params := make([]ast.Param, 0, 2)
	if !p.eat(token.LParen) {
		return params
	}
	for !p.at(token.RParen) && !p.at(token.EOF) {
		before := p.lx.Offset()
		pStart := p.lx.Peek().Span

		switch p.lx.Peek().Kind {
		case token.Ident:
			t := p.advance()
			params = append(params, ast.Param{Sp: t.Span, Name: t.Text})
		case token.LBrace, token.LBracket:
			p.skipBalanced()
			params = append(params, ast.Param{Sp: p.spanFrom(pStart)})
		case token.DotDotDot:
			p.advance()
			if p.at(token.Ident) {
				t := p.advance()
				params = append(params, ast.Param{Sp: p.spanFrom(pStart), Name: t.Text})
			} else {
				params = append(params, ast.Param{Sp: p.spanFrom(pStart)})
			}
		}

		// default value or type annotation: skip to ',' or ')'
		p.skipToParamEnd()

		if !p.eat(token.Comma) && p.lx.Offset() == before {
			p.advance()
		}
	}
	p.eat(token.RParen)
	return params
}

// skipToParamEnd consumes everything up to the next top-level ',' or ')'.
func (p *Parser) skipToParamEnd() {
	for {
		switch p.lx.Peek().Kind {
		case token.Comma, token.RParen, token.EOF:
			return
		case token.LParen, token.LBrace, token.LBracket:
			p.skipBalanced()
		default:
			p.advance()
		}
	}
}

func (p *Parser) parseArray() ast.Expr {
	start := p.advance().Span // '['
	elems := make([]ast.Expr, 0, 4)
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		before := p.lx.Offset()
		if p.at(token.DotDotDot) {
			spreadStart := p.advance().Span
			inner := p.parseAssignExpr()
			elems = append(elems, &ast.Unary{Sp: p.spanFrom(spreadStart), Op: token.DotDotDot, X: inner})
		} else {
			elems = append(elems, p.parseAssignExpr())
		}
		if !p.eat(token.Comma) && !p.at(token.RBracket) {
			if p.lx.Offset() == before {
				p.advance()
			}
		}
	}
	p.eat(token.RBracket)
	return &ast.Array{Sp: p.spanFrom(start), Elems: elems}
}

func (p *Parser) parseObject() ast.Expr {
	start := p.advance().Span // '{'
	props := make([]ast.Property, 0, 8)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.lx.Offset()
		if prop, ok := p.parseProperty(); ok {
			props = append(props, prop)
		}
		if !p.eat(token.Comma) && !p.at(token.RBrace) {
			if p.lx.Offset() == before {
				p.advance()
			}
		}
	}
	p.eat(token.RBrace)
	return &ast.Object{Sp: p.spanFrom(start), Props: props}
}

func (p *Parser) parseProperty() (ast.Property, bool) {
	start := p.lx.Peek().Span

	if p.at(token.DotDotDot) {
		p.advance()
		inner := p.parseAssignExpr()
		return ast.Property{Sp: p.spanFrom(start), Spread: inner}, true
	}

	async := false
	if p.at(token.KwAsync) {
		// `async run() {...}` method shorthand; 'async' followed by ':' or
		// ',' would instead be a property literally named async
		save := p.advance()
		if p.at(token.Colon) || p.at(token.Comma) || p.at(token.RBrace) || p.at(token.LParen) {
			return p.finishProperty(start, save.Text, save.Span, false)
		}
		async = true
	}

	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Ident || tok.IsKeyword():
		p.advance()
		return p.finishProperty(start, tok.Text, tok.Span, async)
	case tok.Kind == token.StringLit:
		p.advance()
		return p.finishProperty(start, cookString(tok.Text), tok.Span, async)
	case tok.Kind == token.NumberLit:
		p.advance()
		return p.finishProperty(start, tok.Text, tok.Span, async)
	case tok.Kind == token.LBracket:
		// computed key: record the span, not the name
		keyStart := tok.Span
		p.skipBalanced()
		return p.finishProperty(start, "", p.spanFrom(keyStart), async)
	default:
		return ast.Property{}, false
	}
}

func (p *Parser) finishProperty(start source.Span, key string, keySpan source.Span, async bool) (ast.Property, bool) {
	prop := ast.Property{Key: key, KeySpan: keySpan}
	switch p.lx.Peek().Kind {
	case token.Colon:
		p.advance()
		prop.Value = p.parseAssignExpr()
		// an anonymous function assigned to a key takes the key as its name,
		// matching how method shorthand is recorded
		if fn, ok := prop.Value.(*ast.FuncLit); ok && fn.Name == "" {
			fn.Name = key
		}
	case token.LParen:
		// method shorthand
		params := p.parseParams()
		var body *ast.Block
		if p.at(token.LBrace) {
			body = p.parseBlock().(*ast.Block)
		}
		prop.Method = true
		prop.Value = &ast.FuncLit{
			Sp:     p.spanFrom(start),
			Name:   key,
			Params: params,
			Body:   body,
			Async:  async,
		}
	default:
		// shorthand property {name}
		prop.Value = &ast.Ident{Sp: keySpan, Name: key}
	}
	prop.Sp = p.spanFrom(start)
	return prop, true
}

// cookString strips the surrounding quotes and resolves the escapes that
// matter for key comparison. Unknown escapes keep their literal character.
func cookString(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}
