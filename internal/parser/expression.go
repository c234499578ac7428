package parser

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/lexer"
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

func (p *Parser) subLexerAt(start uint32) *lexer.Lexer {
	limit, err := safecast.Conv[uint32](len(p.file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	sub := lexer.New(p.file)
	sub.SetRange(start, limit)
	return sub
}

// parseExpr parses a full expression. Comma sequences are parsed as their
// first element; the rest resynchronizes at statement level.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignExpr()
}

// parseAssignExpr parses assignment-level expressions, including arrow
// functions with a single unparenthesized parameter.
func (p *Parser) parseAssignExpr() ast.Expr {
	start := p.lx.Peek().Span
	left := p.parseTernary()

	switch p.lx.Peek().Kind {
	case token.Arrow:
		return p.parseArrowFrom(left, start)
	case token.Assign, token.PlusAssign, token.MinusAssign, token.OrOrAssign, token.QuestionQuestionAssign:
		op := p.advance().Kind
		right := p.parseAssignExpr()
		return &ast.Assign{Sp: p.spanFrom(start), Op: op, X: left, Y: right}
	}
	return left
}

// parseArrowFrom builds an arrow function whose parameter was already
// parsed as an expression (the `input => ...` single-parameter form).
func (p *Parser) parseArrowFrom(paramExpr ast.Expr, start source.Span) ast.Expr {
	p.advance() // '=>'
	fn := &ast.FuncLit{Arrow: true}
	if id, ok := ast.Unparen(paramExpr).(*ast.Ident); ok {
		fn.Params = []ast.Param{{Sp: id.Sp, Name: id.Name}}
	}
	if p.at(token.LBrace) {
		fn.Body = p.parseBlock().(*ast.Block)
	} else {
		fn.Expr = p.parseAssignExpr()
	}
	fn.Sp = p.spanFrom(start)
	return fn
}

func (p *Parser) parseTernary() ast.Expr {
	start := p.lx.Peek().Span
	cond := p.parseBinary(1)
	if !p.at(token.Question) {
		return cond
	}
	p.advance()
	then := p.parseAssignExpr()
	var els ast.Expr
	if p.eat(token.Colon) {
		els = p.parseAssignExpr()
	}
	return &ast.Cond{Sp: p.spanFrom(start), Cond: cond, Then: then, Else: els}
}

// binaryPrec returns the precedence of an infix operator, 0 for
// non-operators. Higher binds tighter.
func binaryPrec(k token.Kind) int {
	switch k {
	case token.QuestionQuestion:
		return 1
	case token.OrOr:
		return 2
	case token.AndAnd:
		return 3
	case token.EqEq, token.EqEqEq, token.BangEq, token.BangEqEq:
		return 4
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return 5
	case token.Plus, token.Minus:
		return 6
	case token.Star, token.Slash, token.Percent:
		return 7
	default:
		return 0
	}
}

// parseBinary is precedence-climbing over the operator table.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	start := p.lx.Peek().Span
	left := p.parseUnary()
	for {
		op := p.lx.Peek().Kind
		prec := binaryPrec(op)
		if prec < minPrec || prec == 0 {
			return left
		}
		p.advance()
		right := p.parseBinary(prec + 1)
		left = &ast.Binary{Sp: p.spanFrom(start), Op: op, X: left, Y: right}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Bang, token.Minus, token.Plus, token.KwTypeof, token.KwAwait:
		start := p.advance().Span
		x := p.parseUnary()
		return &ast.Unary{Sp: p.spanFrom(start), Op: tok.Kind, X: x}
	default:
		return p.parsePostfix()
	}
}
