// Package ui renders scan results for terminals. It sits strictly outside
// the detection core: everything here consumes finished results and
// touches nothing but the writer it is given.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/duersjefen/deploy-kit/internal/catalog"
	"github.com/duersjefen/deploy-kit/internal/detect"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/fix"
	"github.com/duersjefen/deploy-kit/internal/source"
)

// Renderer writes human-readable output. Colors are decided once at
// construction so piped output stays clean.
type Renderer struct {
	out io.Writer

	errColor  *color.Color
	warnColor *color.Color
	posColor  *color.Color
	fixColor  *color.Color
	dimColor  *color.Color
	addColor  *color.Color
	delColor  *color.Color
}

func NewRenderer(out io.Writer, colorize bool) *Renderer {
	r := &Renderer{
		out:       out,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow, color.Bold),
		posColor:  color.New(color.FgCyan),
		fixColor:  color.New(color.FgGreen),
		dimColor:  color.New(color.Faint),
		addColor:  color.New(color.FgGreen),
		delColor:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.errColor, r.warnColor, r.posColor, r.fixColor, r.dimColor, r.addColor, r.delColor} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Result prints every violation of one scan with source excerpts. f may be
// nil (unreadable file, cached result); excerpts are skipped then.
func (r *Renderer) Result(f *source.File, res *detect.Result) {
	for i := range res.Violations {
		r.violation(f, res.Path, &res.Violations[i])
	}
	if res.Truncated {
		fmt.Fprintln(r.out, r.dimColor.Sprint("output truncated; raise max_violations to see the rest"))
	}
}

func (r *Renderer) violation(f *source.File, path string, v *diag.Violation) {
	sev := r.warnColor.Sprint("WARN ")
	if v.Severity == diag.SevError {
		sev = r.errColor.Sprint("ERROR")
	}
	pos := path
	if v.Line > 0 {
		pos = fmt.Sprintf("%s:%d:%d", path, v.Line, v.Column)
	}
	fmt.Fprintf(r.out, "%s %s %s\n", sev, v.Code, r.posColor.Sprint(pos))
	fmt.Fprintf(r.out, "  %s\n", v.Message)
	if v.Resource != "" {
		fmt.Fprintf(r.out, "  %s %s\n", r.dimColor.Sprint("resource:"), v.Resource)
	}
	if f != nil && v.Line > 0 {
		r.excerpt(f, v)
	}
	if v.Fix != nil {
		fmt.Fprintf(r.out, "  %s %s (%s confidence)\n",
			r.fixColor.Sprint("fix:"), v.Fix.Description, v.Fix.Confidence)
	}
	fmt.Fprintln(r.out)
}

// excerpt prints the offending line with a caret under the violation
// start. The caret column is computed from display width, so tabs and
// wide characters in config text keep it aligned.
func (r *Renderer) excerpt(f *source.File, v *diag.Violation) {
	line := f.GetLine(v.Line)
	if line == "" {
		return
	}
	prefix := fmt.Sprintf("  %4d | ", v.Line)
	fmt.Fprintf(r.out, "%s%s\n", r.dimColor.Sprint(prefix), strings.TrimRight(line, "\r\n"))
	if int(v.Column) <= len(line)+1 {
		lead := runewidth.StringWidth(line[:v.Column-1])
		fmt.Fprintf(r.out, "%s%s\n",
			strings.Repeat(" ", runewidth.StringWidth(prefix)+lead),
			r.errColor.Sprint("^"))
	}
}

// Summary prints the one-line scan totals.
func (r *Renderer) Summary(res *detect.Result) {
	if len(res.Violations) == 0 {
		fmt.Fprintf(r.out, "%s %s (%dms)\n", r.fixColor.Sprint("ok"), res.Path, res.DurationMs)
		return
	}
	fmt.Fprintf(r.out, "%s: %s, %s, %d auto-fixable (%dms)\n",
		res.Path,
		r.errColor.Sprintf("%d errors", res.ErrorCount),
		r.warnColor.Sprintf("%d warnings", res.WarningCount),
		res.AutoFixableCount,
		res.DurationMs,
	)
}

// Diff prints a fix preview diff with +/- coloring.
func (r *Renderer) Diff(diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "- "):
			fmt.Fprintln(r.out, r.delColor.Sprint(line))
		case strings.HasPrefix(line, "+ "):
			fmt.Fprintln(r.out, r.addColor.Sprint(line))
		default:
			fmt.Fprintln(r.out, r.dimColor.Sprint(line))
		}
	}
}

// FixReport prints what a fix run did and why the rest was skipped.
func (r *Renderer) FixReport(res *fix.Result) {
	verb := "would apply"
	if res.Applied {
		verb = "applied"
	}
	fmt.Fprintf(r.out, "%s %d %s\n", verb, res.FixCount, plural(res.FixCount, "fix", "fixes"))
	for _, s := range res.Skipped {
		fmt.Fprintf(r.out, "  %s %s at line %d: %s\n", r.dimColor.Sprint("skipped"), s.Code, s.Line, s.Reason)
	}
}

// RuleTable prints the rule listing with aligned columns.
func (r *Renderer) RuleTable(rows [][2]string) {
	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}
	for _, row := range rows {
		fmt.Fprintf(r.out, "  %s  %s\n", runewidth.FillRight(row[0], width), r.dimColor.Sprint(row[1]))
	}
}

// Explain prints one catalog entry in full.
func (r *Renderer) Explain(e catalog.Entry) {
	fmt.Fprintf(r.out, "%s %s\n\n", r.posColor.Sprint(e.Code), e.Title)
	fmt.Fprintf(r.out, "%s\n", e.Description)
	if e.Example != "" {
		fmt.Fprintf(r.out, "\n%s\n%s\n", r.dimColor.Sprint("example:"), indent(e.Example, "  "))
	}
	if e.DocsURL != "" {
		fmt.Fprintf(r.out, "\n%s %s\n", r.dimColor.Sprint("docs:"), e.DocsURL)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
