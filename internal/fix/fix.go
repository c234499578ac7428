// Package fix applies machine-generated remediations to a file snapshot.
// The pipeline mirrors how the findings were produced: gather candidates,
// filter by confidence and consent, resolve overlaps, validate against the
// exact snapshot text, then splice. Either every selected fix lands or
// none does.
package fix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/source"
)

// ErrStaleFix aborts the whole operation: if any fix's recorded text no
// longer matches the file, every offset in the batch is suspect.
var ErrStaleFix = errors.New("fix does not match current file content")

// Options controls one fix run.
type Options struct {
	// Apply writes the result back to disk. When false the run is a dry
	// run: FixedCode is computed but nothing on disk changes.
	Apply bool
	// MinConfidence filters out fixes graded below it.
	MinConfidence diag.Confidence
	// Prompt, when non-nil, is consulted per fix; returning false skips
	// it. Used for interactive mode.
	Prompt func(v diag.Violation, fix *diag.Fix) bool
}

// SkipReason classifies why a candidate fix was not applied.
type SkipReason string

const (
	SkipLowConfidence SkipReason = "below confidence threshold"
	SkipOverlap       SkipReason = "overlaps a higher-priority fix"
	SkipDeclined      SkipReason = "declined"
)

// SkippedFix records one candidate left out of the batch.
type SkippedFix struct {
	Code   diag.Code  `json:"code"`
	Line   uint32     `json:"line"`
	Reason SkipReason `json:"reason"`
}

// Result reports what one run did. FixedCode is always the full post-fix
// text, also on dry runs.
type Result struct {
	Applied   bool         `json:"applied"`
	FixCount  int          `json:"fixCount"`
	FixedCode string       `json:"-"`
	Skipped   []SkippedFix `json:"skipped,omitempty"`
}

type candidate struct {
	v   diag.Violation
	fix *diag.Fix
}

// Apply runs the fix pipeline for one file snapshot against the
// violations detected on that same snapshot.
func Apply(f *source.File, violations []diag.Violation, opts Options) (*Result, error) {
	res := &Result{FixedCode: string(f.Content)}

	var selected []candidate
	for _, v := range violations {
		if v.Fix == nil {
			continue
		}
		if v.Fix.Confidence < opts.MinConfidence {
			res.Skipped = append(res.Skipped, SkippedFix{Code: v.Code, Line: v.Line, Reason: SkipLowConfidence})
			continue
		}
		if opts.Prompt != nil && !opts.Prompt(v, v.Fix) {
			res.Skipped = append(res.Skipped, SkippedFix{Code: v.Code, Line: v.Line, Reason: SkipDeclined})
			continue
		}
		selected = append(selected, candidate{v: v, fix: v.Fix})
	}
	if len(selected) == 0 {
		return res, nil
	}

	selected = resolveOverlaps(selected, res)

	// Validate the whole batch before touching anything.
	for _, c := range selected {
		if err := validate(f, c.fix); err != nil {
			return &Result{FixedCode: string(f.Content)}, err
		}
	}

	// Splice back to front so earlier offsets stay valid.
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].fix.Start > selected[j].fix.Start
	})
	text := make([]byte, len(f.Content))
	copy(text, f.Content)
	for _, c := range selected {
		text = append(text[:c.fix.Start], append([]byte(c.fix.NewCode), text[c.fix.End:]...)...)
	}
	res.FixedCode = string(text)
	res.FixCount = len(selected)

	if opts.Apply {
		if err := writeAtomic(f.Path, text); err != nil {
			return &Result{FixedCode: string(f.Content), Skipped: res.Skipped},
				fmt.Errorf("write %s: %w", f.Path, err)
		}
		res.Applied = true
	}
	return res, nil
}

// resolveOverlaps drops the lower-priority fix of every overlapping pair.
// Higher confidence wins; on a tie the earlier fix wins.
func resolveOverlaps(cands []candidate, res *Result) []candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].fix.Start != cands[j].fix.Start {
			return cands[i].fix.Start < cands[j].fix.Start
		}
		return cands[i].fix.Confidence > cands[j].fix.Confidence
	})
	var out []candidate
	for _, c := range cands {
		if len(out) > 0 {
			prev := out[len(out)-1]
			if c.fix.Start < prev.fix.End {
				if c.fix.Confidence > prev.fix.Confidence {
					res.Skipped = append(res.Skipped, SkippedFix{Code: prev.v.Code, Line: prev.v.Line, Reason: SkipOverlap})
					out[len(out)-1] = c
				} else {
					res.Skipped = append(res.Skipped, SkippedFix{Code: c.v.Code, Line: c.v.Line, Reason: SkipOverlap})
				}
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func validate(f *source.File, fix *diag.Fix) error {
	if fix.Start > fix.End || fix.End > uint32(len(f.Content)) {
		return fmt.Errorf("%w: range [%d,%d) outside file of %d bytes",
			ErrStaleFix, fix.Start, fix.End, len(f.Content))
	}
	if got := string(f.Content[fix.Start:fix.End]); got != fix.OldCode {
		return fmt.Errorf("%w: expected %q at offset %d, found %q",
			ErrStaleFix, fix.OldCode, fix.Start, got)
	}
	return nil
}

// writeAtomic replaces path via a same-directory temp file and rename, so
// a crash mid-write never leaves a half-fixed config behind.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".deploykit-fix-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpName, info.Mode())
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
