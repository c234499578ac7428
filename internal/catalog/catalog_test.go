package catalog

import (
	"testing"

	"github.com/duersjefen/deploy-kit/internal/diag"
)

// Every shipped code must have a catalog entry and vice versa; the code
// namespace is a published contract.
func TestCatalogCoversAllCodes(t *testing.T) {
	known := make(map[diag.Code]bool)
	for _, code := range diag.Codes() {
		known[code] = true
		if _, ok := Lookup(code); !ok {
			t.Errorf("code %s has no catalog entry", code)
		}
	}
	for _, e := range All() {
		if !known[e.Code] {
			t.Errorf("catalog entry %s is not a registered code", e.Code)
		}
	}
}

func TestEntriesAreComplete(t *testing.T) {
	for _, e := range All() {
		if e.Title == "" {
			t.Errorf("%s: empty title", e.Code)
		}
		if e.Description == "" {
			t.Errorf("%s: empty description", e.Code)
		}
		if e.Example == "" {
			t.Errorf("%s: empty example", e.Code)
		}
	}
}

func TestAllIsSorted(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Code >= all[i].Code {
			t.Fatalf("All() not sorted at %d: %s >= %s", i, all[i-1].Code, all[i].Code)
		}
	}
}
