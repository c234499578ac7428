package ast

import (
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

// Ident is a bare identifier, including '$'-prefixed globals like $app.
type Ident struct {
	Sp   source.Span
	Name string
}

// StringLit is a single- or double-quoted string literal.
type StringLit struct {
	Sp    source.Span
	Raw   string // including quotes
	Value string // cooked
}

// NumberLit is a numeric literal; the raw text is kept, never evaluated.
type NumberLit struct {
	Sp  source.Span
	Raw string
}

// BoolLit is 'true' or 'false'.
type BoolLit struct {
	Sp    source.Span
	Value bool
}

// NullLit is 'null' or 'undefined'.
type NullLit struct {
	Sp  source.Span
	Raw string
}

// TemplateQuasi is one literal chunk of a template literal (the text
// between substitutions). Cooked is the chunk with escapes left as-is.
type TemplateQuasi struct {
	Sp     source.Span
	Cooked string
}

// TemplateLit is a backtick template literal. Quasis always has exactly
// len(Exprs)+1 entries; empty chunks are present as empty Cooked strings.
// Tag is non-nil for tagged templates such as $interpolate`...`.
type TemplateLit struct {
	Sp     source.Span
	Tag    Expr
	Quasis []TemplateQuasi
	Exprs  []Expr
}

// Member is a property access: X.Prop or X?.Prop or X[Index].
type Member struct {
	Sp       source.Span
	X        Expr
	Prop     string // empty for computed access
	PropSpan source.Span
	Index    Expr // non-nil for computed access
	Optional bool // true for ?.
}

// Call is a function call: Fn(Args...).
type Call struct {
	Sp   source.Span
	Fn   Expr
	Args []Expr
}

// New is a constructor call: new Callee(Args...).
type New struct {
	Sp     source.Span
	Callee Expr
	Args   []Expr
}

// Binary is an infix expression X Op Y.
type Binary struct {
	Sp source.Span
	Op token.Kind
	X  Expr
	Y  Expr
}

// Unary is a prefix expression Op X ('!', '-', '+', 'typeof', 'await').
type Unary struct {
	Sp source.Span
	Op token.Kind
	X  Expr
}

// Cond is a ternary: Cond ? Then : Else.
type Cond struct {
	Sp   source.Span
	Cond Expr
	Then Expr
	Else Expr
}

// Assign is an assignment expression X = Y (or a compound assignment).
type Assign struct {
	Sp source.Span
	Op token.Kind
	X  Expr
	Y  Expr
}

// Property is one entry of an object literal.
type Property struct {
	Sp      source.Span
	Key     string // cooked key for identifier/string/number keys
	KeySpan source.Span
	Value   Expr // for methods, a *FuncLit; nil for spread entries
	Spread  Expr // non-nil for `...expr` entries
	Method  bool
}

// Object is an object literal.
type Object struct {
	Sp    source.Span
	Props []Property
}

// Array is an array literal.
type Array struct {
	Sp    source.Span
	Elems []Expr
}

// Param is one function parameter. Only the name matters to analysis;
// defaults and destructuring are kept as raw spans.
type Param struct {
	Sp   source.Span
	Name string
}

// FuncLit is a function expression, object method, or arrow function.
// Name is the method key for object method shorthand, the declared name
// for named function expressions, or empty.
type FuncLit struct {
	Sp     source.Span
	Name   string
	Params []Param
	Body   *Block // nil when an arrow body is a bare expression
	Expr   Expr   // arrow `=> expr` body
	Arrow  bool
	Async  bool
}

// Paren is a parenthesized expression.
type Paren struct {
	Sp source.Span
	X  Expr
}

// Bad is a placeholder for source text the parser could not make sense of.
// Rules must tolerate it anywhere an expression can appear.
type Bad struct {
	Sp source.Span
}

func (n *Ident) Span() source.Span       { return n.Sp }
func (n *StringLit) Span() source.Span   { return n.Sp }
func (n *NumberLit) Span() source.Span   { return n.Sp }
func (n *BoolLit) Span() source.Span     { return n.Sp }
func (n *NullLit) Span() source.Span     { return n.Sp }
func (n *TemplateLit) Span() source.Span { return n.Sp }
func (n *Member) Span() source.Span      { return n.Sp }
func (n *Call) Span() source.Span        { return n.Sp }
func (n *New) Span() source.Span         { return n.Sp }
func (n *Binary) Span() source.Span      { return n.Sp }
func (n *Unary) Span() source.Span       { return n.Sp }
func (n *Cond) Span() source.Span        { return n.Sp }
func (n *Assign) Span() source.Span      { return n.Sp }
func (n *Object) Span() source.Span      { return n.Sp }
func (n *Array) Span() source.Span       { return n.Sp }
func (n *FuncLit) Span() source.Span     { return n.Sp }
func (n *Paren) Span() source.Span       { return n.Sp }
func (n *Bad) Span() source.Span         { return n.Sp }

func (*Ident) exprNode()       {}
func (*StringLit) exprNode()   {}
func (*NumberLit) exprNode()   {}
func (*BoolLit) exprNode()     {}
func (*NullLit) exprNode()     {}
func (*TemplateLit) exprNode() {}
func (*Member) exprNode()      {}
func (*Call) exprNode()        {}
func (*New) exprNode()         {}
func (*Binary) exprNode()      {}
func (*Unary) exprNode()       {}
func (*Cond) exprNode()        {}
func (*Assign) exprNode()      {}
func (*Object) exprNode()      {}
func (*Array) exprNode()       {}
func (*FuncLit) exprNode()     {}
func (*Paren) exprNode()       {}
func (*Bad) exprNode()         {}
