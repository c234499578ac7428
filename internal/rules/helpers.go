package rules

import (
	"strings"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/source"
)

// ResourceDecl is a classified `const x = new ns.sub.Type("Name", {...})`
// declaration. Config is nil when the constructor takes no config object.
type ResourceDecl struct {
	VarName  string
	NameSpan source.Span
	Name     string // logical name, the first constructor argument
	Type     string // last segment of the constructor chain
	Callee   string // full dotted constructor chain
	Config   *ast.Object
	New      *ast.New
	Decl     *ast.VarDecl
}

// classifyResource matches the resource constructor shape: a variable
// initialized with `new` on a dotted member chain whose first argument is
// a string literal. Anything else is not a resource declaration.
func classifyResource(decl *ast.VarDecl) (ResourceDecl, bool) {
	nw, ok := ast.Unparen(decl.Init).(*ast.New)
	if !ok {
		return ResourceDecl{}, false
	}
	callee, typ, ok := flattenCallee(nw.Callee)
	if !ok {
		return ResourceDecl{}, false
	}
	if len(nw.Args) == 0 {
		return ResourceDecl{}, false
	}
	name, ok := ast.Unparen(nw.Args[0]).(*ast.StringLit)
	if !ok {
		return ResourceDecl{}, false
	}
	rd := ResourceDecl{
		VarName:  decl.Name,
		NameSpan: decl.NameSpan,
		Name:     name.Value,
		Type:     typ,
		Callee:   callee,
		New:      nw,
		Decl:     decl,
	}
	if len(nw.Args) > 1 {
		if obj, ok := ast.Unparen(nw.Args[1]).(*ast.Object); ok {
			rd.Config = obj
		}
	}
	return rd, true
}

// flattenCallee turns a member chain like sst.aws.Function into its dotted
// text and last segment. A bare identifier is rejected: resource
// constructors are always namespaced.
func flattenCallee(e ast.Expr) (full, last string, ok bool) {
	var parts []string
	for {
		switch x := e.(type) {
		case *ast.Member:
			if x.Index != nil || x.Prop == "" {
				return "", "", false
			}
			parts = append(parts, x.Prop)
			e = x.X
		case *ast.Ident:
			parts = append(parts, x.Name)
			if len(parts) < 2 {
				return "", "", false
			}
			for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
				parts[i], parts[j] = parts[j], parts[i]
			}
			return strings.Join(parts, "."), parts[len(parts)-1], true
		default:
			return "", "", false
		}
	}
}

// collectResources walks the whole tree so resources declared inside the
// run() body are found as well as top-level ones.
func collectResources(tree *ast.File) []ResourceDecl {
	var out []ResourceDecl
	ast.Inspect(tree, func(n ast.Node) bool {
		decl, ok := n.(*ast.VarDecl)
		if !ok {
			return true
		}
		if rd, ok := classifyResource(decl); ok {
			out = append(out, rd)
		}
		return true
	})
	return out
}

// objectProp finds a plain property with the given key name. Spread and
// method entries never match.
func objectProp(obj *ast.Object, key string) (*ast.Property, bool) {
	for i := range obj.Props {
		p := &obj.Props[i]
		if p.Spread != nil || p.Method {
			continue
		}
		if p.Key == key {
			return p, true
		}
	}
	return nil, false
}

// stringValue unwraps a plain string literal expression.
func stringValue(e ast.Expr) (string, *ast.StringLit, bool) {
	lit, ok := ast.Unparen(e).(*ast.StringLit)
	if !ok {
		return "", nil, false
	}
	return lit.Value, lit, true
}

// replaceSpan builds a fix that swaps the exact text at span for newCode.
// OldCode is captured from the current file snapshot so the fixer can
// detect stale offsets before splicing.
func replaceSpan(ctx *Context, span source.Span, newCode string, conf diag.Confidence, desc string) *diag.Fix {
	return &diag.Fix{
		OldCode:     ctx.Text(span),
		NewCode:     newCode,
		Confidence:  conf,
		Description: desc,
		Start:       span.Start,
		End:         span.End,
	}
}

// enclosingResource attributes a span to the smallest resource constructor
// that contains it, or "" when the span sits outside every resource.
func enclosingResource(resources []ResourceDecl, span source.Span) string {
	name := ""
	best := ^uint32(0)
	for _, r := range resources {
		rs := r.New.Span()
		if rs.Start <= span.Start && span.End <= rs.End && rs.Len() < best {
			name = r.Name
			best = rs.Len()
		}
	}
	return name
}
