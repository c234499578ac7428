package parser

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/lexer"
	"github.com/duersjefen/deploy-kit/internal/source"
	"github.com/duersjefen/deploy-kit/internal/token"
)

// parseTemplate splits a TemplateLit token into literal chunks and parsed
// substitution expressions. Substitutions get their own sub-lexer over the
// exact byte range, so every inner node keeps exact file offsets.
func (p *Parser) parseTemplate(tok token.Token) *ast.TemplateLit {
	tpl := &ast.TemplateLit{Sp: tok.Span}
	raw := tok.Text
	if len(raw) < 2 || raw[0] != '`' {
		tpl.Quasis = []ast.TemplateQuasi{{Sp: tok.Span, Cooked: raw}}
		return tpl
	}

	content := raw[1 : len(raw)-1]
	base := tok.Span.Start + 1
	off := func(i int) uint32 {
		v, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(fmt.Errorf("template offset overflow: %w", err))
		}
		return base + v
	}
	quasi := func(from, to int) ast.TemplateQuasi {
		return ast.TemplateQuasi{
			Sp:     source.Span{File: tok.Span.File, Start: off(from), End: off(to)},
			Cooked: content[from:to],
		}
	}

	chunkStart := 0
	i := 0
	for i < len(content) {
		if content[i] == '\\' {
			i += 2
			continue
		}
		if content[i] == '$' && i+1 < len(content) && content[i+1] == '{' {
			end := findSubstitutionEnd(content, i+2)
			if end < 0 {
				// unbalanced; swallow the rest as literal text
				break
			}
			tpl.Quasis = append(tpl.Quasis, quasi(chunkStart, i))
			tpl.Exprs = append(tpl.Exprs, p.parseSubstitution(off(i+2), off(end)))
			i = end + 1
			chunkStart = i
			continue
		}
		i++
	}
	tpl.Quasis = append(tpl.Quasis, quasi(chunkStart, len(content)))
	return tpl
}

// parseSubstitution parses one `${...}` body with a fresh lexer restricted
// to the substitution's byte range.
func (p *Parser) parseSubstitution(start, end uint32) ast.Expr {
	sub := lexer.New(p.file)
	sub.SetRange(start, end)
	subParser := &Parser{
		file:     p.file,
		lx:       sub,
		lastSpan: source.Span{File: p.file.ID, Start: start, End: start},
	}
	return subParser.parseAssignExpr()
}

// findSubstitutionEnd returns the index of the '}' closing a substitution
// whose body starts at i, or -1. Mirrors the lexer's balancing: nested
// braces, quoted strings, and nested templates are skipped over.
func findSubstitutionEnd(content string, i int) int {
	depth := 1
	for i < len(content) {
		switch content[i] {
		case '{':
			depth++
			i++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
			i++
		case '\'', '"':
			i = skipQuotedString(content, i)
		case '`':
			i = skipNestedTemplate(content, i+1)
		case '\\':
			i += 2
		default:
			i++
		}
	}
	return -1
}

func skipQuotedString(content string, i int) int {
	quote := content[i]
	i++
	for i < len(content) {
		switch content[i] {
		case quote:
			return i + 1
		case '\\':
			i += 2
		case '\n':
			return i
		default:
			i++
		}
	}
	return i
}

// skipNestedTemplate consumes a backtick template body starting just after
// its opening backtick and returns the index after the closing backtick.
func skipNestedTemplate(content string, i int) int {
	for i < len(content) {
		switch content[i] {
		case '`':
			return i + 1
		case '\\':
			i += 2
		case '$':
			if i+1 < len(content) && content[i+1] == '{' {
				end := findSubstitutionEnd(content, i+2)
				if end < 0 {
					return len(content)
				}
				i = end + 1
				continue
			}
			i++
		default:
			i++
		}
	}
	return i
}
