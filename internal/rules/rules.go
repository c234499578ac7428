// Package rules contains the misconfiguration detectors. Each rule is a
// stateless structural check over one parsed config file: given the tree,
// the raw text, and the project root, it returns violations and nothing
// else. Rules never share mutable state, so any number of files can be
// scanned concurrently.
package rules

import (
	"github.com/duersjefen/deploy-kit/internal/ast"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/source"
)

// Context carries everything a rule may look at during one detection run.
type Context struct {
	File        *source.File
	Tree        *ast.File
	ProjectRoot string

	// resources is the lazily-built resource declaration index shared by
	// the rules of one run; see Resources.
	resources     []ResourceDecl
	resourcesDone bool
}

// Text returns the raw source text covered by span.
func (c *Context) Text(span source.Span) string {
	return c.File.Text(span)
}

// Resources returns every resource constructor declaration in the file.
// The index is built once per context and reused by all rules.
func (c *Context) Resources() []ResourceDecl {
	if !c.resourcesDone {
		c.resources = collectResources(c.Tree)
		c.resourcesDone = true
	}
	return c.resources
}

// Rule is one independent misconfiguration detector. The rule set is
// closed: it ships with the tool and is assembled statically by Registry,
// not discovered at runtime.
type Rule interface {
	// ID is the stable rule identifier used for enable/disable config.
	ID() string
	// Category is the violation category the rule reports under.
	Category() diag.Category
	// Detect runs the rule against one parsed file.
	Detect(ctx *Context) []diag.Violation
}

// Registry returns the versioned rule list in reporting order.
func Registry() []Rule {
	return []Rule{
		StageVariableRule{},
		AsyncOutputRule{},
		DependencyRule{},
		DynamoIndexRule{},
		CorsNamingRule{},
		ReservedEnvRule{},
		DomainConfigRule{},
	}
}
