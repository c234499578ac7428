// Package parser builds a best-effort syntax tree for config source files.
// It never fails on malformed input: unparseable stretches become Bad nodes
// and parsing resynchronizes at the next statement boundary, so rules always
// receive a tree to walk.
package parser

import (
	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/lexer"
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

// Parser holds per-file parsing state.
type Parser struct {
	file     *source.File
	lx       *lexer.Lexer
	lastSpan source.Span
}

// ParseFile parses one config source file into a tree.
func ParseFile(f *source.File) *ast.File {
	p := &Parser{
		file:     f,
		lx:       lexer.New(f),
		lastSpan: source.Span{File: f.ID},
	}
	return p.parseFile()
}

func (p *Parser) parseFile() *ast.File {
	start := p.lx.Peek().Span
	stmts := p.parseStmts(token.EOF)
	return &ast.File{
		Sp:    p.spanFrom(start),
		Stmts: stmts,
	}
}

// parseStmts parses statements until the stop kind (EOF or RBrace) is
// reached. The stop token itself is not consumed.
func (p *Parser) parseStmts(stop token.Kind) []ast.Stmt {
	stmts := make([]ast.Stmt, 0, 8)
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF || tok.Kind == stop {
			return stmts
		}
		if tok.Kind == token.Semicolon {
			p.advance()
			continue
		}
		before := p.lx.Offset()
		stmts = append(stmts, p.parseStmt()...)
		if p.lx.Offset() == before {
			// no progress; drop one token so the loop always terminates
			bad := p.advance()
			stmts = append(stmts, &ast.BadStmt{Sp: bad.Span})
		}
	}
}

func (p *Parser) parseStmt() []ast.Stmt {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwConst, token.KwLet, token.KwVar:
		return p.parseVarDecl()
	case token.KwFunction:
		return []ast.Stmt{p.parseFuncDecl(false, tok.Span)}
	case token.KwAsync:
		return p.parseAsyncStmt()
	case token.KwReturn:
		return []ast.Stmt{p.parseReturn()}
	case token.KwExport:
		return p.parseExport()
	case token.KwImport:
		return []ast.Stmt{p.skipImport()}
	case token.KwIf:
		return []ast.Stmt{p.parseIf()}
	case token.KwFor, token.KwWhile:
		return []ast.Stmt{p.parseLooseLoop()}
	case token.LBrace:
		return []ast.Stmt{p.parseBlock()}
	default:
		return []ast.Stmt{p.parseExprStmt()}
	}
}

func (p *Parser) parseVarDecl() []ast.Stmt {
	kw := p.advance()
	out := make([]ast.Stmt, 0, 1)
	for {
		declStart := kw.Span
		if len(out) > 0 {
			declStart = p.lx.Peek().Span
		}

		decl := &ast.VarDecl{Kind: kw.Kind}
		switch p.lx.Peek().Kind {
		case token.Ident:
			name := p.advance()
			decl.Name = name.Text
			decl.NameSpan = name.Span
		case token.LBrace, token.LBracket:
			// destructuring pattern: keep the span, skip the names
			patStart := p.lx.Peek().Span
			p.skipBalanced()
			decl.NameSpan = p.spanFrom(patStart)
		default:
			// not a declarator; bail out with what we have
			decl.Sp = p.spanFrom(declStart)
			out = append(out, decl)
			return out
		}

		if p.at(token.Assign) {
			p.advance()
			decl.Init = p.parseAssignExpr()
		}
		decl.Sp = p.spanFrom(declStart)
		out = append(out, decl)

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.eat(token.Semicolon)
	return out
}

func (p *Parser) parseFuncDecl(async bool, start source.Span) ast.Stmt {
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
	fn := &ast.FuncLit{
		Sp:     p.spanFrom(start),
		Name:   name,
		Params: params,
		Body:   body,
		Async:  async,
	}
	return &ast.FuncDecl{Sp: fn.Sp, Fn: fn, Name: name}
}

// parseAsyncStmt handles statements starting with 'async': either an async
// function declaration or an async arrow expression statement.
func (p *Parser) parseAsyncStmt() []ast.Stmt {
	start := p.lx.Peek().Span
	p.advance() // 'async'
	if p.at(token.KwFunction) {
		return []ast.Stmt{p.parseFuncDecl(true, start)}
	}
	expr := p.parseAssignExpr()
	if fn, ok := expr.(*ast.FuncLit); ok {
		fn.Async = true
	}
	p.eat(token.Semicolon)
	return []ast.Stmt{&ast.ExprStmt{Sp: p.spanFrom(start), X: expr}}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.advance().Span // 'return'
	var x ast.Expr
	switch p.lx.Peek().Kind {
	case token.Semicolon, token.RBrace, token.EOF:
	default:
		x = p.parseExpr()
	}
	p.eat(token.Semicolon)
	return &ast.Return{Sp: p.spanFrom(start), X: x}
}

func (p *Parser) parseExport() []ast.Stmt {
	start := p.advance().Span // 'export'
	if p.at(token.KwDefault) {
		p.advance()
		x := p.parseExpr()
		p.eat(token.Semicolon)
		return []ast.Stmt{&ast.ExportDefault{Sp: p.spanFrom(start), X: x}}
	}
	// `export const ...` and friends: the export modifier carries no
	// meaning for detection, parse the rest as a plain statement
	return p.parseStmt()
}

// skipImport tolerates import statements by skipping to the end of the
// line or the next semicolon.
func (p *Parser) skipImport() ast.Stmt {
	start := p.advance().Span // 'import'
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF || tok.Kind == token.Semicolon {
			p.eat(token.Semicolon)
			break
		}
		startLC := p.file.Pos(start.Start)
		tokLC := p.file.Pos(tok.Span.Start)
		if tokLC.Line != startLC.Line {
			break
		}
		p.advance()
	}
	return &ast.BadStmt{Sp: p.spanFrom(start)}
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.advance().Span // 'if'
	var cond ast.Expr
	if p.eat(token.LParen) {
		cond = p.parseExpr()
		p.eat(token.RParen)
	}
	then := p.parseSingleStmt()
	var els ast.Stmt
	if p.at(token.KwElse) {
		p.advance()
		els = p.parseSingleStmt()
	}
	return &ast.If{Sp: p.spanFrom(start), Cond: cond, Then: then, Else: els}
}

// parseLooseLoop skips a for/while header and parses the body, so resource
// declarations inside loops still reach the rules.
func (p *Parser) parseLooseLoop() ast.Stmt {
	p.advance() // 'for' or 'while'
	if p.at(token.LParen) {
		p.skipBalanced()
	}
	return p.parseSingleStmt()
}

func (p *Parser) parseSingleStmt() ast.Stmt {
	stmts := p.parseStmt()
	if len(stmts) == 1 {
		return stmts[0]
	}
	if len(stmts) == 0 {
		return &ast.BadStmt{Sp: p.lastSpan}
	}
	sp := stmts[0].Span().Cover(stmts[len(stmts)-1].Span())
	return &ast.Block{Sp: sp, Stmts: stmts}
}

func (p *Parser) parseBlock() ast.Stmt {
	start := p.advance().Span // '{'
	stmts := p.parseStmts(token.RBrace)
	p.eat(token.RBrace)
	return &ast.Block{Sp: p.spanFrom(start), Stmts: stmts}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.lx.Peek().Span
	x := p.parseExpr()
	p.eat(token.Semicolon)
	return &ast.ExprStmt{Sp: p.spanFrom(start), X: x}
}
