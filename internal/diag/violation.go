package diag

import (
	"sort"

	"github.com/duersjefen/deploy-kit/internal/source"
)

// Fix is a machine-generated textual replacement for the half-open byte
// range [Start, End) of the file that produced the violation. Offsets are
// valid only against that exact file snapshot; once any fix is applied the
// file must be re-parsed before further fixes are computed.
type Fix struct {
	OldCode     string     `json:"oldCode"`
	NewCode     string     `json:"newCode"`
	Confidence  Confidence `json:"confidence"`
	Description string     `json:"description"`
	Start       uint32     `json:"start"`
	End         uint32     `json:"end"`
}

// Violation is a structured finding with a stable code and location.
type Violation struct {
	Code     Code        `json:"code"`
	Severity Severity    `json:"severity"`
	Category Category    `json:"category"`
	Resource string      `json:"resource,omitempty"`
	Property string      `json:"property,omitempty"`
	Message  string      `json:"message"`
	Line     uint32      `json:"line"`
	Column   uint32      `json:"column"`
	Span     source.Span `json:"-"`
	Fix      *Fix        `json:"fix,omitempty"`
	Related  []Code      `json:"relatedCodes,omitempty"`
	DocsURL  string      `json:"docsUrl,omitempty"`
}

// New builds a violation at the given span, deriving category, line, and
// column. file may be nil for synthetic violations (no position then).
type Builder struct {
	v Violation
}

// NewViolation starts a violation builder for the given code and span.
func NewViolation(code Code, sev Severity, f *source.File, span source.Span, msg string) *Builder {
	v := Violation{
		Code:     code,
		Severity: sev,
		Category: CategoryOf(code),
		Message:  msg,
		Span:     span,
	}
	if f != nil {
		lc := f.Pos(span.Start)
		v.Line = lc.Line
		v.Column = lc.Col
	}
	return &Builder{v: v}
}

// OnResource records the resource name the finding belongs to.
func (b *Builder) OnResource(name string) *Builder {
	b.v.Resource = name
	return b
}

// OnProperty records the property name the finding belongs to.
func (b *Builder) OnProperty(name string) *Builder {
	b.v.Property = name
	return b
}

// WithFix attaches a machine-generated fix.
func (b *Builder) WithFix(fix *Fix) *Builder {
	b.v.Fix = fix
	return b
}

// WithRelated records related violation codes.
func (b *Builder) WithRelated(codes ...Code) *Builder {
	b.v.Related = append(b.v.Related, codes...)
	return b
}

// WithDocs records a documentation URL.
func (b *Builder) WithDocs(url string) *Builder {
	b.v.DocsURL = url
	return b
}

// Build returns the assembled violation.
func (b *Builder) Build() Violation {
	return b.v
}

// Sort orders violations by file position, then severity (errors first),
// then code, for stable deterministic output.
func Sort(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		vi, vj := violations[i], violations[j]
		if vi.Span.Start != vj.Span.Start {
			return vi.Span.Start < vj.Span.Start
		}
		if vi.Span.End != vj.Span.End {
			return vi.Span.End < vj.Span.End
		}
		if vi.Severity != vj.Severity {
			return vi.Severity > vj.Severity
		}
		return vi.Code < vj.Code
	})
}
