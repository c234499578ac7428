package rules

import (
	"testing"

	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/parser"
	"github.com/duersjefen/deploy-kit/internal/source"
)

// parseSrc builds a detection context from inline source text.
func parseSrc(t *testing.T, src string) *Context {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("sst.config.ts", []byte(src))
	f := fs.Get(id)
	return &Context{File: f, Tree: parser.ParseFile(f)}
}

// codesOf is a small assertion helper for detection results.
func codesOf(vs []diag.Violation) []diag.Code {
	out := make([]diag.Code, len(vs))
	for i, v := range vs {
		out[i] = v.Code
	}
	return out
}

func requireCodes(t *testing.T, vs []diag.Violation, want ...diag.Code) {
	t.Helper()
	got := codesOf(vs)
	if len(got) != len(want) {
		t.Fatalf("got %d violations %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("violation %d: got %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestRegistryIsStable(t *testing.T) {
	rules := Registry()
	if len(rules) != 7 {
		t.Fatalf("registry has %d rules, want 7", len(rules))
	}
	seen := map[string]bool{}
	for _, r := range rules {
		if r.ID() == "" {
			t.Fatalf("rule %T has empty ID", r)
		}
		if seen[r.ID()] {
			t.Fatalf("duplicate rule ID %s", r.ID())
		}
		seen[r.ID()] = true
		if r.Category() == "" {
			t.Fatalf("rule %s has empty category", r.ID())
		}
	}
}

func TestClassifyResource(t *testing.T) {
	ctx := parseSrc(t, `
const bucket = new sst.aws.Bucket("Uploads");
const table = new sst.aws.dynamo.Table("Users", { fields: { id: "string" } });
const notRes = makeThing("x");
const plain = new Thing("y");
`)
	rs := ctx.Resources()
	if len(rs) != 2 {
		t.Fatalf("got %d resources, want 2", len(rs))
	}
	if rs[0].VarName != "bucket" || rs[0].Name != "Uploads" || rs[0].Type != "Bucket" {
		t.Fatalf("bucket classified as %+v", rs[0])
	}
	if rs[0].Callee != "sst.aws.Bucket" {
		t.Fatalf("callee = %q", rs[0].Callee)
	}
	if rs[1].Type != "Table" || rs[1].Config == nil {
		t.Fatalf("table classified as %+v", rs[1])
	}
}

// Rule detection must not mutate the context or the tree; running the
// whole registry twice over one context yields identical results.
func TestDetectionIsIdempotent(t *testing.T) {
	ctx := parseSrc(t, `
export default $config({
  app(input) { return { name: "demo" }; },
  async run() {
    const stage = "dev";
    const a = new sst.aws.Bucket("A", { link: [b] });
    const b = new sst.aws.Function("B", {
      link: [a],
      environment: { AWS_REGION: "eu-central-1" },
    });
  },
});
`)
	run := func() []diag.Violation {
		var all []diag.Violation
		for _, r := range Registry() {
			all = append(all, r.Detect(ctx)...)
		}
		diag.Sort(all)
		return all
	}
	first := run()
	second := run()
	if len(first) == 0 {
		t.Fatal("expected violations in fixture")
	}
	if len(first) != len(second) {
		t.Fatalf("run 1 found %d violations, run 2 found %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Code != second[i].Code || first[i].Span != second[i].Span {
			t.Fatalf("run mismatch at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
