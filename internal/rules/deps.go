package rules

import (
	"fmt"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/source"
)

// DependencyRule reads the link arrays of every resource declaration and
// flags relationship problems the deploy engine only reports deep into a
// deployment: two resources linking each other, and links referencing a
// resource declared further down the file.
type DependencyRule struct{}

func (DependencyRule) ID() string              { return "resource-dependency" }
func (DependencyRule) Category() diag.Category { return diag.CategoryDependency }

// linkRef is one entry of a link array, resolved to the variable it
// bottoms out in.
type linkRef struct {
	target string
	span   source.Span
}

func (DependencyRule) Detect(ctx *Context) []diag.Violation {
	resources := ctx.Resources()

	// Pass 1: index declarations and their link references by variable
	// name. Pass 2 is then pairwise lookups, keeping the whole rule
	// linear in resources times links.
	byVar := make(map[string]*ResourceDecl, len(resources))
	links := make(map[string][]linkRef, len(resources))
	for i := range resources {
		r := &resources[i]
		if r.VarName == "" {
			continue
		}
		byVar[r.VarName] = r
		links[r.VarName] = linkRefs(r)
	}

	var out []diag.Violation
	seenPair := map[[2]string]bool{}
	for i := range resources {
		r := &resources[i]
		seenDep := map[string]bool{}
		for _, ref := range links[r.VarName] {
			if seenDep[ref.target] {
				continue
			}
			seenDep[ref.target] = true
			other, ok := byVar[ref.target]
			if !ok {
				continue
			}
			if ref.target == r.VarName || linksBack(links[ref.target], r.VarName) {
				pair := [2]string{r.VarName, ref.target}
				if seenPair[pair] {
					continue
				}
				seenPair[pair] = true
				out = append(out, diag.NewViolation(
					diag.CodeCircularDependency, diag.SevError,
					ctx.File, ref.span,
					fmt.Sprintf("%s and %s link to each other; the dependency graph must be acyclic", r.Name, other.Name),
				).OnResource(r.Name).OnProperty("link").WithRelated(diag.CodeUseBeforeDeclare).Build())
				continue
			}
			if other.Decl.Sp.Start > r.Decl.Sp.Start {
				out = append(out, diag.NewViolation(
					diag.CodeUseBeforeDeclare, diag.SevWarning,
					ctx.File, ref.span,
					fmt.Sprintf("%s links to %s before it is declared; move the declaration of %s up", r.Name, other.Name, other.Name),
				).OnResource(r.Name).OnProperty("link").Build())
			}
		}
	}
	return out
}

// linkRefs extracts the variables referenced by a resource's link array.
// Bare identifiers count, and member chains count through their root, so
// `link: [table, api.url]` references table and api.
func linkRefs(r *ResourceDecl) []linkRef {
	if r.Config == nil {
		return nil
	}
	prop, ok := objectProp(r.Config, "link")
	if !ok {
		return nil
	}
	arr, ok := ast.Unparen(prop.Value).(*ast.Array)
	if !ok {
		return nil
	}
	var out []linkRef
	for _, elem := range arr.Elems {
		if id := ast.RootIdent(elem); id != nil {
			out = append(out, linkRef{target: id.Name, span: elem.Span()})
		}
	}
	return out
}

func linksBack(refs []linkRef, varName string) bool {
	for _, ref := range refs {
		if ref.target == varName {
			return true
		}
	}
	return false
}
