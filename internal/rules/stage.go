package rules

import (
	"fmt"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
)

// StageVariableRule flags stage context reaching resource code through the
// wrong channel: the app() input object leaking past app(), run() accepting
// arguments, and stage names frozen into local constants. At deploy time
// all three read as working code but resolve to the wrong stage.
type StageVariableRule struct{}

func (StageVariableRule) ID() string              { return "stage-variable" }
func (StageVariableRule) Category() diag.Category { return diag.CategoryStage }

// hardcodedStages are the literal values treated as stage names when
// assigned to a variable called "stage". Arbitrary strings stay untouched.
var hardcodedStages = map[string]bool{
	"dev":         true,
	"development": true,
	"staging":     true,
	"production":  true,
	"prod":        true,
	"test":        true,
}

func (StageVariableRule) Detect(ctx *Context) []diag.Violation {
	var out []diag.Violation
	appParam := appInputName(ctx.Tree)

	var walk func(n ast.Node, fnName string)
	walk = func(n ast.Node, fnName string) {
		switch v := n.(type) {
		case *ast.FuncLit:
			// Named functions and methods open a new scope name;
			// anonymous arrows inherit the enclosing one.
			inner := fnName
			if v.Name != "" {
				inner = v.Name
			}
			if v.Name == "run" && len(v.Params) > 0 {
				out = append(out, diag.NewViolation(
					diag.CodeRunWithParams, diag.SevError,
					ctx.File, v.Params[0].Sp,
					"run() takes no arguments; read the active stage from $app.stage instead",
				).OnProperty(v.Params[0].Name).Build())
			}
			for _, c := range ast.Children(v) {
				walk(c, inner)
			}
			return
		case *ast.Member:
			if v.Prop == "stage" && fnName != "app" {
				if id, ok := ast.Unparen(v.X).(*ast.Ident); ok && id.Name == appParam {
					out = append(out, diag.NewViolation(
						diag.CodeStageOutsideApp, diag.SevError,
						ctx.File, v.Sp,
						fmt.Sprintf("%s.stage is only defined inside app(); use $app.stage here", id.Name),
					).OnProperty("stage").WithFix(replaceSpan(
						ctx, v.Sp, "$app.stage", diag.ConfHigh,
						"replace the app() input access with the $app.stage global",
					)).Build())
				}
			}
		case *ast.VarDecl:
			if v.Name == "stage" {
				if _, lit, ok := stringValue(v.Init); ok && hardcodedStages[lit.Value] {
					out = append(out, diag.NewViolation(
						diag.CodeHardcodedStage, diag.SevWarning,
						ctx.File, lit.Sp,
						fmt.Sprintf("stage is hardcoded to %s; deployments to other stages will silently reuse it", lit.Raw),
					).OnProperty("stage").WithFix(replaceSpan(
						ctx, lit.Sp, "$app.stage", diag.ConfMedium,
						"derive the stage from the deployment context",
					)).Build())
				}
			}
		}
		for _, c := range ast.Children(n) {
			walk(c, fnName)
		}
	}
	walk(ctx.Tree, "")
	return out
}

// appInputName finds the parameter name of the app() method so the leak
// check tracks renamed inputs. Falls back to the conventional "input".
func appInputName(tree *ast.File) string {
	name := "input"
	ast.Inspect(tree, func(n ast.Node) bool {
		fn, ok := n.(*ast.FuncLit)
		if !ok {
			return true
		}
		if fn.Name == "app" && len(fn.Params) > 0 && fn.Params[0].Name != "" {
			name = fn.Params[0].Name
			return false
		}
		return true
	})
	return name
}
