package cache

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/duersjefen/deploy-kit/internal/detect"
	"github.com/duersjefen/deploy-kit/internal/diag"
	"github.com/duersjefen/deploy-kit/internal/source"
)

func testResult() *detect.Result {
	return &detect.Result{
		Path: "sst.config.ts",
		Violations: []diag.Violation{
			{
				Code:     diag.CodeCorsLegacyName,
				Severity: diag.SevError,
				Category: diag.CategoryCors,
				Resource: "Api",
				Property: "allowedOrigins",
				Message:  "cors property allowedOrigins is ignored",
				Line:     4,
				Column:   5,
				Span:     source.Span{Start: 40, End: 54},
				Fix: &diag.Fix{
					OldCode:    "allowedOrigins",
					NewCode:    "allowOrigins",
					Confidence: diag.ConfHigh,
					Start:      40,
					End:        54,
				},
			},
		},
		ErrorCount:       1,
		AutoFixableCount: 1,
		DurationMs:       3,
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	hash := sha256.Sum256([]byte("content"))
	if _, ok := c.Get(hash, ""); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	want := testResult()
	if err := c.Put(hash, "", want); err != nil {
		t.Fatal(err)
	}
	got, ok := c.Get(hash, "")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Path != want.Path || got.ErrorCount != 1 || len(got.Violations) != 1 {
		t.Fatalf("got %+v", got)
	}
	v := got.Violations[0]
	if v.Code != diag.CodeCorsLegacyName || v.Span.Start != 40 {
		t.Fatalf("violation = %+v", v)
	}
	if v.Fix == nil || v.Fix.NewCode != "allowOrigins" || v.Fix.Confidence != diag.ConfHigh {
		t.Fatalf("fix = %+v", v.Fix)
	}
}

func TestDifferentContentMisses(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put(sha256.Sum256([]byte("a")), "", testResult()); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(sha256.Sum256([]byte("b")), ""); ok {
		t.Fatal("different content must miss")
	}
}

func TestSaltSeparatesEntries(t *testing.T) {
	// Disabling a rule changes the result, so it must change the key.
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	hash := sha256.Sum256([]byte("content"))
	if err := c.Put(hash, "cors-naming", testResult()); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(hash, ""); ok {
		t.Fatal("entry leaked across option fingerprints")
	}
	if _, ok := c.Get(hash, "cors-naming"); !ok {
		t.Fatal("expected hit for matching fingerprint")
	}
}

func TestCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	hash := sha256.Sum256([]byte("content"))
	if err := c.Put(hash, "", testResult()); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if err := os.WriteFile(filepath.Join(dir, e.Name()), []byte("garbage"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok := c.Get(hash, ""); ok {
		t.Fatal("corrupt entry must read as a miss")
	}
}
