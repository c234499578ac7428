package ast

// Inspect traverses the tree in depth-first preorder, calling f for every
// non-nil node. If f returns false the node's children are skipped.
// Traversal cost is linear in node count; rules build on this to stay
// near-linear per file.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

// Children returns the direct child nodes of n in source order. Nil
// children are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	addExpr := func(e Expr) {
		if e != nil {
			out = append(out, e)
		}
	}
	addStmt := func(s Stmt) {
		if s != nil {
			out = append(out, s)
		}
	}

	switch v := n.(type) {
	case *File:
		for _, s := range v.Stmts {
			addStmt(s)
		}
	case *VarDecl:
		addExpr(v.Init)
	case *FuncDecl:
		if v.Fn != nil {
			add(v.Fn)
		}
	case *Return:
		addExpr(v.X)
	case *ExportDefault:
		addExpr(v.X)
	case *If:
		addExpr(v.Cond)
		addStmt(v.Then)
		addStmt(v.Else)
	case *Block:
		for _, s := range v.Stmts {
			addStmt(s)
		}
	case *ExprStmt:
		addExpr(v.X)
	case *TemplateLit:
		addExpr(v.Tag)
		for _, e := range v.Exprs {
			addExpr(e)
		}
	case *Member:
		addExpr(v.X)
		addExpr(v.Index)
	case *Call:
		addExpr(v.Fn)
		for _, a := range v.Args {
			addExpr(a)
		}
	case *New:
		addExpr(v.Callee)
		for _, a := range v.Args {
			addExpr(a)
		}
	case *Binary:
		addExpr(v.X)
		addExpr(v.Y)
	case *Unary:
		addExpr(v.X)
	case *Cond:
		addExpr(v.Cond)
		addExpr(v.Then)
		addExpr(v.Else)
	case *Assign:
		addExpr(v.X)
		addExpr(v.Y)
	case *Object:
		for i := range v.Props {
			p := &v.Props[i]
			addExpr(p.Spread)
			addExpr(p.Value)
		}
	case *Array:
		for _, e := range v.Elems {
			addExpr(e)
		}
	case *FuncLit:
		if v.Body != nil {
			add(v.Body)
		}
		addExpr(v.Expr)
	case *Paren:
		addExpr(v.X)
	}
	return out
}

// RootIdent returns the leftmost identifier of a member-access chain, or
// nil when the expression does not bottom out in one.
func RootIdent(e Expr) *Ident {
	for {
		switch v := e.(type) {
		case *Ident:
			return v
		case *Member:
			e = v.X
		case *Paren:
			e = v.X
		case *Call:
			e = v.Fn
		default:
			return nil
		}
	}
}

// Unparen strips any number of surrounding Paren nodes.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*Paren)
		if !ok {
			return e
		}
		e = p.X
	}
}
