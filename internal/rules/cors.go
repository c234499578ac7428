package rules

import (
	"fmt"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
)

// CorsNamingRule flags v2-era CORS property names inside cors blocks. The
// deploy engine ignores unknown properties, so a renamed-but-not-updated
// cors config ships with CORS silently unconfigured.
type CorsNamingRule struct{}

func (CorsNamingRule) ID() string              { return "cors-naming" }
func (CorsNamingRule) Category() diag.Category { return diag.CategoryCors }

// corsRenames maps each legacy property name to its current spelling.
var corsRenames = map[string]string{
	"allowedOrigins": "allowOrigins",
	"allowedMethods": "allowMethods",
	"allowedHeaders": "allowHeaders",
	"exposedHeaders": "exposeHeaders",
}

func (CorsNamingRule) Detect(ctx *Context) []diag.Violation {
	var out []diag.Violation
	resources := ctx.Resources()
	ast.Inspect(ctx.Tree, func(n ast.Node) bool {
		obj, ok := n.(*ast.Object)
		if !ok {
			return true
		}
		prop, ok := objectProp(obj, "cors")
		if !ok {
			return true
		}
		cors, ok := ast.Unparen(prop.Value).(*ast.Object)
		if !ok {
			return true
		}
		for i := range cors.Props {
			p := &cors.Props[i]
			if p.Spread != nil || p.Method {
				continue
			}
			current, legacy := corsRenames[p.Key]
			if !legacy {
				continue
			}
			out = append(out, diag.NewViolation(
				diag.CodeCorsLegacyName, diag.SevError,
				ctx.File, p.KeySpan,
				fmt.Sprintf("cors property %s is ignored; the current name is %s", p.Key, current),
			).OnResource(enclosingResource(resources, p.KeySpan)).
				OnProperty(p.Key).
				WithFix(replaceSpan(
					ctx, p.KeySpan, current, diag.ConfHigh,
					fmt.Sprintf("rename %s to %s", p.Key, current),
				)).Build())
		}
		return true
	})
	return out
}
