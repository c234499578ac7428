package ast

import (
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

// VarDecl is a single-name const/let/var declaration. Destructuring
// declarations are represented with an empty Name and a Bad pattern span.
type VarDecl struct {
	Sp       source.Span
	Kind     token.Kind // KwConst, KwLet, or KwVar
	Name     string
	NameSpan source.Span
	Init     Expr // may be nil
}

// FuncDecl is a top-level or nested `function name(...) {...}` declaration.
type FuncDecl struct {
	Sp   source.Span
	Fn   *FuncLit // Fn.Name is the declared name
	Name string
}

// Return is a return statement.
type Return struct {
	Sp source.Span
	X  Expr // may be nil
}

// ExportDefault is `export default expr`.
type ExportDefault struct {
	Sp source.Span
	X  Expr
}

// If is an if/else statement, kept only so bodies keep getting walked.
type If struct {
	Sp   source.Span
	Cond Expr
	Then Stmt
	Else Stmt // may be nil
}

// Block is a braced statement list.
type Block struct {
	Sp    source.Span
	Stmts []Stmt
}

// ExprStmt is a bare expression statement.
type ExprStmt struct {
	Sp source.Span
	X  Expr
}

// BadStmt covers source text skipped during error recovery.
type BadStmt struct {
	Sp source.Span
}

func (n *VarDecl) Span() source.Span       { return n.Sp }
func (n *FuncDecl) Span() source.Span      { return n.Sp }
func (n *Return) Span() source.Span        { return n.Sp }
func (n *ExportDefault) Span() source.Span { return n.Sp }
func (n *If) Span() source.Span            { return n.Sp }
func (n *Block) Span() source.Span         { return n.Sp }
func (n *ExprStmt) Span() source.Span      { return n.Sp }
func (n *BadStmt) Span() source.Span       { return n.Sp }

func (*VarDecl) stmtNode()       {}
func (*FuncDecl) stmtNode()      {}
func (*Return) stmtNode()        {}
func (*ExportDefault) stmtNode() {}
func (*If) stmtNode()            {}
func (*Block) stmtNode()         {}
func (*ExprStmt) stmtNode()      {}
func (*BadStmt) stmtNode()       {}
