package rules

import (
	"fmt"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
)

// ReservedEnvRule flags environment blocks that set variable names the
// Lambda runtime reserves for itself. Depending on the name, deployment
// either fails late or the value is dropped on the floor.
type ReservedEnvRule struct{}

func (ReservedEnvRule) ID() string              { return "reserved-env" }
func (ReservedEnvRule) Category() diag.Category { return diag.CategoryReservedEnv }

// reservedEnvVars is the Lambda runtime's reserved set. There is no safe
// rewrite for these, so the rule never offers a fix.
var reservedEnvVars = map[string]bool{
	"AWS_REGION":                  true,
	"AWS_DEFAULT_REGION":          true,
	"AWS_ACCESS_KEY_ID":           true,
	"AWS_SECRET_ACCESS_KEY":       true,
	"AWS_SESSION_TOKEN":           true,
	"AWS_LAMBDA_FUNCTION_NAME":    true,
	"AWS_LAMBDA_FUNCTION_VERSION": true,
	"AWS_LAMBDA_RUNTIME_API":      true,
	"AWS_EXECUTION_ENV":           true,
	"_HANDLER":                    true,
	"_X_AMZN_TRACE_ID":            true,
	"LAMBDA_TASK_ROOT":            true,
	"LAMBDA_RUNTIME_DIR":          true,
}

func (ReservedEnvRule) Detect(ctx *Context) []diag.Violation {
	var out []diag.Violation
	resources := ctx.Resources()
	ast.Inspect(ctx.Tree, func(n ast.Node) bool {
		obj, ok := n.(*ast.Object)
		if !ok {
			return true
		}
		prop, ok := objectProp(obj, "environment")
		if !ok {
			return true
		}
		env, ok := ast.Unparen(prop.Value).(*ast.Object)
		if !ok {
			return true
		}
		for i := range env.Props {
			p := &env.Props[i]
			if p.Spread != nil || p.Method || !reservedEnvVars[p.Key] {
				continue
			}
			out = append(out, diag.NewViolation(
				diag.CodeReservedEnvVar, diag.SevError,
				ctx.File, p.KeySpan,
				fmt.Sprintf("%s is reserved by the Lambda runtime and cannot be set; choose a different variable name", p.Key),
			).OnResource(enclosingResource(resources, p.KeySpan)).
				OnProperty(p.Key).Build())
		}
		return true
	})
	return out
}
