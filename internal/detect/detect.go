// Package detect orchestrates one scan: load, parse, run the rule set,
// aggregate. It is the only entry point the CLI and the cache use, and it
// never writes anything anywhere.
package detect

import (
	"fmt"
	"time"

	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/parser"
	"github.com/duersjefen/deploy-kit/internal/rules"
	"github.com/duersjefen/deploy-kit/internal/source"
)

// Options tunes one detector. The zero value runs every rule with no
// violation cap.
type Options struct {
	// DisabledRules holds rule IDs to skip.
	DisabledRules map[string]bool
	// MaxViolations truncates the aggregated list when positive.
	MaxViolations int
}

// RuleFailure records a rule that blew up instead of returning. The scan
// carries on; a broken rule must never take down the whole run.
type RuleFailure struct {
	RuleID string `json:"ruleId"`
	Err    string `json:"error"`
}

// Result is the aggregate outcome of scanning one file.
type Result struct {
	Path             string           `json:"path"`
	Violations       []diag.Violation `json:"violations"`
	ErrorCount       int              `json:"errorCount"`
	WarningCount     int              `json:"warningCount"`
	AutoFixableCount int              `json:"autoFixableCount"`
	DurationMs       int64            `json:"durationMs"`
	Failures         []RuleFailure    `json:"ruleFailures,omitempty"`
	Truncated        bool             `json:"truncated,omitempty"`
}

// HasBlocking reports whether any error-severity violation was found.
func (r *Result) HasBlocking() bool {
	return r.ErrorCount > 0
}

// ByCategory groups the already-computed violations for display. No rule
// re-runs.
func (r *Result) ByCategory() map[diag.Category][]diag.Violation {
	out := map[diag.Category][]diag.Violation{}
	for _, v := range r.Violations {
		out[v.Category] = append(out[v.Category], v)
	}
	return out
}

// Detector runs the rule registry over files. It is stateless and safe
// for concurrent use.
type Detector struct {
	opts  Options
	rules []rules.Rule
}

func New(opts Options) *Detector {
	var active []rules.Rule
	for _, r := range rules.Registry() {
		if !opts.DisabledRules[r.ID()] {
			active = append(active, r)
		}
	}
	return &Detector{opts: opts, rules: active}
}

// Detect loads and scans one file. An unreadable path is itself a finding,
// not an error: callers always get a renderable result.
func (d *Detector) Detect(fs *source.FileSet, path, projectRoot string) *Result {
	started := time.Now()
	id, err := fs.Load(path)
	if err != nil {
		res := &Result{
			Path: path,
			Violations: []diag.Violation{
				diag.NewViolation(
					diag.CodeFileNotFound, diag.SevError,
					nil, source.Span{},
					fmt.Sprintf("cannot read %s: %v", path, err),
				).Build(),
			},
		}
		finish(res, started)
		return res
	}
	res := d.DetectFile(fs.Get(id), projectRoot)
	res.DurationMs = time.Since(started).Milliseconds()
	return res
}

// DetectFile scans an already-loaded file snapshot.
func (d *Detector) DetectFile(f *source.File, projectRoot string) *Result {
	started := time.Now()
	res := &Result{Path: f.Path}

	tree, err := safeParse(f)
	if err != nil {
		// A parser bug is an internal failure, never a user-facing
		// violation. Record it and return an empty scan.
		res.Failures = append(res.Failures, RuleFailure{RuleID: "parser", Err: err.Error()})
		finish(res, started)
		return res
	}

	ctx := &rules.Context{File: f, Tree: tree, ProjectRoot: projectRoot}
	for _, rule := range d.rules {
		vs, err := safeDetect(rule, ctx)
		if err != nil {
			res.Failures = append(res.Failures, RuleFailure{RuleID: rule.ID(), Err: err.Error()})
			continue
		}
		res.Violations = append(res.Violations, vs...)
	}

	diag.Sort(res.Violations)
	if d.opts.MaxViolations > 0 && len(res.Violations) > d.opts.MaxViolations {
		res.Violations = res.Violations[:d.opts.MaxViolations]
		res.Truncated = true
	}
	finish(res, started)
	return res
}

func finish(res *Result, started time.Time) {
	for i := range res.Violations {
		switch res.Violations[i].Severity {
		case diag.SevError:
			res.ErrorCount++
		default:
			res.WarningCount++
		}
		if res.Violations[i].Fix != nil {
			res.AutoFixableCount++
		}
	}
	res.DurationMs = time.Since(started).Milliseconds()
}

func safeParse(f *source.File) (tree *ast.File, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("parse panic: %v", rec)
		}
	}()
	return parser.ParseFile(f), nil
}

func safeDetect(rule rules.Rule, ctx *rules.Context) (vs []diag.Violation, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			vs = nil
			err = fmt.Errorf("rule panic: %v", rec)
		}
	}()
	return rule.Detect(ctx), nil
}
