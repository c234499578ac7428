package rules

import (
	"fmt"
	"strings"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
)

// DomainConfigRule checks custom-domain configuration: domain values that
// carry a URL scheme or a DNS trailing dot, and the old domainName key
// that current components no longer read.
type DomainConfigRule struct{}

func (DomainConfigRule) ID() string              { return "domain-config" }
func (DomainConfigRule) Category() diag.Category { return diag.CategoryDomain }

func (DomainConfigRule) Detect(ctx *Context) []diag.Violation {
	var out []diag.Violation
	resources := ctx.Resources()
	ast.Inspect(ctx.Tree, func(n ast.Node) bool {
		obj, ok := n.(*ast.Object)
		if !ok {
			return true
		}
		for i := range obj.Props {
			p := &obj.Props[i]
			if p.Spread != nil || p.Method {
				continue
			}
			switch p.Key {
			case "domain":
				out = append(out, checkDomainValue(ctx, resources, p)...)
			case "domainName":
				out = append(out, diag.NewViolation(
					diag.CodeDomainWrongProperty, diag.SevError,
					ctx.File, p.KeySpan,
					"domainName is not a recognized property; the domain property configures custom domains",
				).OnResource(enclosingResource(resources, p.KeySpan)).
					OnProperty(p.Key).
					WithFix(replaceSpan(
						ctx, p.KeySpan, "domain", diag.ConfHigh,
						"rename domainName to domain",
					)).Build())
			}
		}
		return true
	})
	return out
}

// checkDomainValue validates the literal a domain resolves to, whether
// given directly or via the object form's name property.
func checkDomainValue(ctx *Context, resources []ResourceDecl, p *ast.Property) []diag.Violation {
	lit, propName := domainLiteral(p)
	if lit == nil {
		return nil
	}
	cleaned, why := cleanDomain(lit.Value)
	if why == "" {
		return nil
	}
	quote := "\""
	if len(lit.Raw) > 0 {
		quote = string(lit.Raw[0])
	}
	return []diag.Violation{diag.NewViolation(
		diag.CodeDomainMalformed, diag.SevError,
		ctx.File, lit.Sp,
		fmt.Sprintf("domain %s %s; certificate lookup wants the bare name %q", lit.Raw, why, cleaned),
	).OnResource(enclosingResource(resources, lit.Sp)).
		OnProperty(propName).
		WithFix(replaceSpan(
			ctx, lit.Sp, quote+cleaned+quote, diag.ConfHigh,
			"strip the scheme and trailing dot from the domain",
		)).Build()}
}

// domainLiteral unwraps `domain: "..."` or `domain: { name: "..." }`.
func domainLiteral(p *ast.Property) (*ast.StringLit, string) {
	if _, lit, ok := stringValue(p.Value); ok {
		return lit, "domain"
	}
	if obj, ok := ast.Unparen(p.Value).(*ast.Object); ok {
		if name, ok := objectProp(obj, "name"); ok {
			if _, lit, ok := stringValue(name.Value); ok {
				return lit, "domain.name"
			}
		}
	}
	return nil, ""
}

// cleanDomain strips a URL scheme and trailing dot, reporting what was
// wrong. An empty reason means the value is already a bare name.
func cleanDomain(v string) (cleaned, reason string) {
	cleaned = v
	var reasons []string
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(cleaned, scheme) {
			cleaned = strings.TrimPrefix(cleaned, scheme)
			reasons = append(reasons, "includes a URL scheme")
			break
		}
	}
	if strings.HasSuffix(cleaned, ".") {
		cleaned = strings.TrimSuffix(cleaned, ".")
		reasons = append(reasons, "has a trailing dot")
	}
	return cleaned, strings.Join(reasons, " and ")
}
