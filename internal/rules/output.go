package rules

import (
	"fmt"
	"strings"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/token"
)

// AsyncOutputRule flags misuse of deferred resource outputs: wrapping a
// single bare output in $interpolate for no reason, and concatenating an
// output with + as if it were a plain string. The second renders as
// "[object Object]" at deploy time without any error.
type AsyncOutputRule struct{}

func (AsyncOutputRule) ID() string              { return "async-output" }
func (AsyncOutputRule) Category() diag.Category { return diag.CategoryAsyncOutput }

// outputSuffixes mark member accesses that conventionally resolve to
// deferred provider outputs. Matching is a suffix heuristic over the
// property name, case-insensitive.
var outputSuffixes = []string{"arn", "name", "id", "url", "domain", "endpoint"}

func (AsyncOutputRule) Detect(ctx *Context) []diag.Violation {
	var out []diag.Violation

	// Top-level + chains only: reporting every nested Binary of a long
	// concatenation would flag the same expression several times.
	inner := map[*ast.Binary]bool{}
	ast.Inspect(ctx.Tree, func(n ast.Node) bool {
		if b, ok := n.(*ast.Binary); ok && isPlus(b) {
			if x, ok := ast.Unparen(b.X).(*ast.Binary); ok && isPlus(x) {
				inner[x] = true
			}
			if y, ok := ast.Unparen(b.Y).(*ast.Binary); ok && isPlus(y) {
				inner[y] = true
			}
		}
		return true
	})

	ast.Inspect(ctx.Tree, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.TemplateLit:
			if vio, ok := uselessInterpolate(ctx, v); ok {
				out = append(out, vio)
			}
		case *ast.Binary:
			if isPlus(v) && !inner[v] {
				if vio, ok := outputConcat(ctx, v); ok {
					out = append(out, vio)
				}
			}
		}
		return true
	})
	return out
}

func isPlus(b *ast.Binary) bool {
	return b.Op == token.Plus
}

// uselessInterpolate matches $interpolate`${expr}`: a tagged template with
// exactly one substitution and nothing but empty literal chunks around it.
func uselessInterpolate(ctx *Context, t *ast.TemplateLit) (diag.Violation, bool) {
	tag, ok := ast.Unparen(t.Tag).(*ast.Ident)
	if !ok || tag.Name != "$interpolate" {
		return diag.Violation{}, false
	}
	if len(t.Exprs) != 1 {
		return diag.Violation{}, false
	}
	for _, q := range t.Quasis {
		if q.Cooked != "" {
			return diag.Violation{}, false
		}
	}
	exprText := ctx.Text(t.Exprs[0].Span())
	return diag.NewViolation(
		diag.CodeUselessInterpolate, diag.SevWarning,
		ctx.File, t.Sp,
		fmt.Sprintf("$interpolate wraps a single value; use %s directly", exprText),
	).WithFix(replaceSpan(
		ctx, t.Sp, exprText, diag.ConfHigh,
		"unwrap the single-value interpolation",
	)).Build(), true
}

// outputConcat matches a + chain where some operand looks like a deferred
// output access and the expression is not already routed through
// $interpolate or .apply(). A fix is offered only for the unambiguous
// two-operand literal+output shape.
func outputConcat(ctx *Context, b *ast.Binary) (diag.Violation, bool) {
	var outputs []*ast.Member
	collectOutputOperands(b, &outputs)
	if len(outputs) == 0 {
		return diag.Violation{}, false
	}
	text := ctx.Text(b.Sp)
	if strings.Contains(text, "$interpolate") || strings.Contains(text, ".apply(") {
		return diag.Violation{}, false
	}

	prop := outputs[0].Prop
	builder := diag.NewViolation(
		diag.CodeOutputConcat, diag.SevError,
		ctx.File, b.Sp,
		fmt.Sprintf("concatenating the deferred output .%s with + produces \"[object Object]\"; use $interpolate", prop),
	).OnProperty(prop)

	if newCode, ok := interpolateRewrite(ctx, b); ok {
		builder = builder.WithFix(replaceSpan(
			ctx, b.Sp, newCode, diag.ConfMedium,
			"rewrite the concatenation as a template interpolation",
		))
	}
	return builder.Build(), true
}

// collectOutputOperands gathers output-looking member accesses across a
// whole + chain.
func collectOutputOperands(e ast.Expr, out *[]*ast.Member) {
	switch v := ast.Unparen(e).(type) {
	case *ast.Binary:
		if isPlus(v) {
			collectOutputOperands(v.X, out)
			collectOutputOperands(v.Y, out)
		}
	case *ast.Member:
		if looksLikeOutput(v) {
			*out = append(*out, v)
		}
	}
}

func looksLikeOutput(m *ast.Member) bool {
	p := strings.ToLower(m.Prop)
	if p == "" {
		return false
	}
	for _, suf := range outputSuffixes {
		if strings.HasSuffix(p, suf) {
			return true
		}
	}
	return false
}

// interpolateRewrite builds the $interpolate replacement for the simple
// `lit + output` / `output + lit` shape. The non-literal side must itself
// be an output member access: embedding a nested concatenation in the
// substitution would just move the problem inside the template. Literals
// containing backticks or a substitution opener cannot be embedded safely,
// so those get no fix either.
func interpolateRewrite(ctx *Context, b *ast.Binary) (string, bool) {
	x, y := ast.Unparen(b.X), ast.Unparen(b.Y)
	litX, isLitX := x.(*ast.StringLit)
	litY, isLitY := y.(*ast.StringLit)
	switch {
	case isLitX && isOutputMember(y):
		if !templateSafe(litX.Value) {
			return "", false
		}
		return fmt.Sprintf("$interpolate`%s${%s}`", litX.Value, ctx.Text(y.Span())), true
	case isLitY && isOutputMember(x):
		if !templateSafe(litY.Value) {
			return "", false
		}
		return fmt.Sprintf("$interpolate`${%s}%s`", ctx.Text(x.Span()), litY.Value), true
	}
	return "", false
}

func isOutputMember(e ast.Expr) bool {
	m, ok := e.(*ast.Member)
	return ok && looksLikeOutput(m)
}

func templateSafe(s string) bool {
	return !strings.Contains(s, "`") && !strings.Contains(s, "${") && !strings.Contains(s, "\\")
}
