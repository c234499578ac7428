// Package ast defines the syntax tree for config source files. Every node
// carries the exact byte span of the text it was parsed from; rules and the
// auto-fixer rely on those offsets being valid against the file snapshot
// that produced the tree.
package ast

import (
	"github.com/duersjefen/deploy-kit/internal/source"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// File is the root of one parsed config source file.
type File struct {
	Sp    source.Span
	Stmts []Stmt
}

func (f *File) Span() source.Span { return f.Sp }
