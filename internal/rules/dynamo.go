package rules

import (
	"fmt"
	"strings"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
)

// DynamoIndexRule checks table declarations for fields that no index uses.
// The provider accepts such fields without complaint and then rejects
// writes at runtime, so this is one of the quieter failure modes.
type DynamoIndexRule struct{}

func (DynamoIndexRule) ID() string              { return "dynamo-indexing" }
func (DynamoIndexRule) Category() diag.Category { return diag.CategoryIndexing }

func (DynamoIndexRule) Detect(ctx *Context) []diag.Violation {
	var out []diag.Violation
	resources := ctx.Resources()
	for i := range resources {
		r := &resources[i]
		if !isTableType(r.Type) || r.Config == nil {
			continue
		}
		fieldsProp, ok := objectProp(r.Config, "fields")
		if !ok {
			continue
		}
		fieldsObj, ok := ast.Unparen(fieldsProp.Value).(*ast.Object)
		if !ok || len(fieldsObj.Props) == 0 {
			continue
		}

		indexed := indexedFields(r.Config)
		var unindexed []string
		var kept []*ast.Property
		for j := range fieldsObj.Props {
			p := &fieldsObj.Props[j]
			if p.Spread != nil || p.Method || p.Key == "" {
				// Not a plain field entry; keep it and make no claim.
				kept = append(kept, p)
				continue
			}
			if indexed[p.Key] {
				kept = append(kept, p)
			} else {
				unindexed = append(unindexed, p.Key)
			}
		}
		if len(unindexed) == 0 {
			continue
		}

		b := diag.NewViolation(
			diag.CodeUnindexedField, diag.SevWarning,
			ctx.File, fieldsObj.Sp,
			fmt.Sprintf("fields %s are not used by any index; Dynamo only stores attributes reachable through a key or index", strings.Join(unindexed, ", ")),
		).OnResource(r.Name).OnProperty(strings.Join(unindexed, ", "))

		if len(kept) > 0 {
			b = b.WithFix(replaceSpan(
				ctx, fieldsObj.Sp, rewriteFields(ctx, fieldsObj, kept), diag.ConfMedium,
				"drop the field declarations no index references",
			))
		}
		out = append(out, b.Build())
	}
	return out
}

func isTableType(typ string) bool {
	return strings.Contains(typ, "Dynamo") || strings.Contains(typ, "Table")
}

// indexedFields collects every field name the table's keys, secondary
// indexes, or ttl setting reference.
func indexedFields(cfg *ast.Object) map[string]bool {
	indexed := map[string]bool{}
	addKeys := func(obj *ast.Object) {
		for _, key := range []string{"hashKey", "rangeKey"} {
			if p, ok := objectProp(obj, key); ok {
				if v, _, ok := stringValue(p.Value); ok {
					indexed[v] = true
				}
			}
		}
	}
	if p, ok := objectProp(cfg, "primaryIndex"); ok {
		if obj, ok := ast.Unparen(p.Value).(*ast.Object); ok {
			addKeys(obj)
		}
	}
	for _, group := range []string{"globalIndexes", "localIndexes"} {
		p, ok := objectProp(cfg, group)
		if !ok {
			continue
		}
		obj, ok := ast.Unparen(p.Value).(*ast.Object)
		if !ok {
			continue
		}
		for i := range obj.Props {
			if idx, ok := ast.Unparen(obj.Props[i].Value).(*ast.Object); ok {
				addKeys(idx)
			}
		}
	}
	if p, ok := objectProp(cfg, "ttl"); ok {
		if v, _, ok := stringValue(p.Value); ok {
			indexed[v] = true
		}
	}
	return indexed
}

// rewriteFields rebuilds the fields object with only the kept entries, in
// their original order and original raw text. Single-line objects stay on
// one line; multi-line objects keep the indentation of their first entry.
func rewriteFields(ctx *Context, obj *ast.Object, kept []*ast.Property) string {
	orig := ctx.Text(obj.Sp)
	if !strings.Contains(orig, "\n") {
		parts := make([]string, len(kept))
		for i, p := range kept {
			parts[i] = ctx.Text(p.Sp)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	}

	entryIndent := lineIndent(ctx, obj.Props[0].Sp.Start)
	closeIndent := lineIndent(ctx, obj.Sp.Start)
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, p := range kept {
		sb.WriteString(entryIndent)
		sb.WriteString(ctx.Text(p.Sp))
		sb.WriteString(",\n")
	}
	sb.WriteString(closeIndent)
	sb.WriteString("}")
	return sb.String()
}

// lineIndent returns the leading whitespace of the line containing off.
func lineIndent(ctx *Context, off uint32) string {
	line := ctx.File.GetLine(ctx.File.Pos(off).Line)
	trimmed := strings.TrimLeft(line, " \t")
	return line[:len(line)-len(trimmed)]
}
