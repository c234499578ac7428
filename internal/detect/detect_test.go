package detect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/rules"
	"github.com/duersjefen/deploy-kit/internal/source"
)

const brokenConfig = `
export default $config({
  app(input) {
    return { name: "demo", home: "aws" };
  },
  async run(input) {
    const stage = input?.stage || "dev";
    const table = new sst.aws.Dynamo("Users", {
      fields: { id: "string", extra: "string" },
      primaryIndex: { hashKey: "id" },
    });
    const api = new sst.aws.ApiGatewayV2("Api", {
      cors: { allowedOrigins: ["*"] },
      link: [table],
    });
  },
});
`

func scan(t *testing.T, src string, opts Options) *Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("sst.config.ts", []byte(src))
	return New(opts).DetectFile(fs.Get(id), ".")
}

func TestDetectAggregates(t *testing.T) {
	res := scan(t, brokenConfig, Options{})
	if len(res.Violations) == 0 {
		t.Fatal("expected violations")
	}
	codes := map[diag.Code]int{}
	for _, v := range res.Violations {
		codes[v.Code]++
	}
	for _, want := range []diag.Code{
		diag.CodeRunWithParams,
		diag.CodeStageOutsideApp,
		diag.CodeUnindexedField,
		diag.CodeCorsLegacyName,
	} {
		if codes[want] == 0 {
			t.Fatalf("missing %s in %v", want, codes)
		}
	}
	if res.ErrorCount+res.WarningCount != len(res.Violations) {
		t.Fatalf("counts %d+%d do not cover %d violations",
			res.ErrorCount, res.WarningCount, len(res.Violations))
	}
	if res.AutoFixableCount == 0 {
		t.Fatal("expected fixable violations")
	}
	if len(res.Failures) != 0 {
		t.Fatalf("unexpected rule failures: %v", res.Failures)
	}
}

func TestViolationsAreSorted(t *testing.T) {
	res := scan(t, brokenConfig, Options{})
	for i := 1; i < len(res.Violations); i++ {
		if res.Violations[i].Span.Start < res.Violations[i-1].Span.Start {
			t.Fatalf("violations out of order at %d", i)
		}
	}
}

func TestCleanFileIsClean(t *testing.T) {
	res := scan(t, `
export default $config({
  app(input) {
    return { name: "demo", home: "aws" };
  },
  async run() {
    const table = new sst.aws.Dynamo("Users", {
      fields: { id: "string" },
      primaryIndex: { hashKey: "id" },
    });
    const api = new sst.aws.ApiGatewayV2("Api", { link: [table] });
  },
});
`, Options{})
	if len(res.Violations) != 0 {
		t.Fatalf("clean config produced %+v", res.Violations)
	}
	if res.HasBlocking() {
		t.Fatal("clean config reported as blocking")
	}
}

// Unparseable text must produce zero violations: a finding the parser only
// hallucinated from garbage would erode all trust in real ones.
func TestGarbageProducesNoViolations(t *testing.T) {
	for _, src := range []string{
		"const = = = ;;;",
		"}}}}{{{{",
		"new new new (((",
		"const x = `unterminated ${",
	} {
		res := scan(t, src, Options{})
		if len(res.Violations) != 0 {
			t.Fatalf("%q produced %+v", src, res.Violations)
		}
	}
}

func TestMissingFileIsSyntheticViolation(t *testing.T) {
	fs := source.NewFileSet()
	res := New(Options{}).Detect(fs, filepath.Join(t.TempDir(), "nope.ts"), ".")
	if len(res.Violations) != 1 || res.Violations[0].Code != diag.CodeFileNotFound {
		t.Fatalf("got %+v", res.Violations)
	}
	if res.Violations[0].Severity != diag.SevError || !res.HasBlocking() {
		t.Fatal("missing file must be a blocking error")
	}
}

func TestDetectFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sst.config.ts")
	if err := os.WriteFile(path, []byte(brokenConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	res := New(Options{}).Detect(fs, path, dir)
	if len(res.Violations) == 0 {
		t.Fatal("expected violations from on-disk scan")
	}
	if res.Path != path {
		t.Fatalf("path = %q", res.Path)
	}
}

func TestDisabledRules(t *testing.T) {
	res := scan(t, brokenConfig, Options{
		DisabledRules: map[string]bool{"cors-naming": true},
	})
	for _, v := range res.Violations {
		if v.Code == diag.CodeCorsLegacyName {
			t.Fatal("disabled rule still reported")
		}
	}
	if len(res.Violations) == 0 {
		t.Fatal("other rules must keep running")
	}
}

func TestMaxViolations(t *testing.T) {
	res := scan(t, brokenConfig, Options{MaxViolations: 2})
	if len(res.Violations) != 2 || !res.Truncated {
		t.Fatalf("got %d violations, truncated=%v", len(res.Violations), res.Truncated)
	}
}

func TestByCategory(t *testing.T) {
	res := scan(t, brokenConfig, Options{})
	grouped := res.ByCategory()
	total := 0
	for cat, vs := range grouped {
		for _, v := range vs {
			if v.Category != cat {
				t.Fatalf("violation %s grouped under %s", v.Code, cat)
			}
		}
		total += len(vs)
	}
	if total != len(res.Violations) {
		t.Fatalf("grouping lost violations: %d != %d", total, len(res.Violations))
	}
}

// crashingRule blows up on every file; the scan must record the failure
// and keep the other rules' findings.
type crashingRule struct{}

func (crashingRule) ID() string              { return "crashing" }
func (crashingRule) Category() diag.Category { return diag.CategoryGeneral }
func (crashingRule) Detect(*rules.Context) []diag.Violation {
	panic("boom")
}

func TestRulePanicIsIsolated(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sst.config.ts", []byte(brokenConfig))

	d := New(Options{})
	d.rules = append(d.rules, crashingRule{})
	res := d.DetectFile(fs.Get(id), ".")

	if len(res.Failures) != 1 {
		t.Fatalf("failures = %+v, want exactly one", res.Failures)
	}
	if res.Failures[0].RuleID != "crashing" {
		t.Errorf("failure attributed to %q", res.Failures[0].RuleID)
	}
	if !strings.Contains(res.Failures[0].Err, "boom") {
		t.Errorf("failure message %q should carry the panic value", res.Failures[0].Err)
	}
	if len(res.Violations) == 0 {
		t.Fatal("remaining rules must still report violations")
	}
}
