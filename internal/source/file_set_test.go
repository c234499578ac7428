package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ts", []byte("const a = 1;\nconst b = 2;\n"))
	f := fs.Get(id)

	if f.Flags&FileVirtual == 0 {
		t.Fatalf("expected FileVirtual flag")
	}

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"start of file", 0, LineCol{Line: 1, Col: 1}},
		{"middle of first line", 6, LineCol{Line: 1, Col: 7}},
		{"newline belongs to its line", 12, LineCol{Line: 1, Col: 13}},
		{"start of second line", 13, LineCol{Line: 2, Col: 1}},
		{"middle of second line", 19, LineCol{Line: 2, Col: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Pos(tt.off)
			if got != tt.want {
				t.Errorf("Pos(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestResolveSpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ts", []byte("ab\ncd\nef"))
	start, end := fs.Resolve(Span{File: id, Start: 3, End: 7})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %+v", start)
	}
	if end != (LineCol{Line: 3, Col: 2}) {
		t.Errorf("end = %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ts", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sst.config.ts")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFconst a = 1;\r\nconst b = 2;\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if f.Flags&FileHadBOM == 0 {
		t.Errorf("expected FileHadBOM")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected FileNormalizedCRLF")
	}
	if want := "const a = 1;\nconst b = 2;\n"; string(f.Content) != want {
		t.Errorf("content = %q, want %q", f.Content, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.ts")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSpanText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.ts", []byte("const stage = \"dev\";"))
	f := fs.Get(id)
	if got := f.Text(Span{File: id, Start: 6, End: 11}); got != "stage" {
		t.Errorf("Text = %q", got)
	}
	if got := f.Text(Span{File: id, Start: 6, End: 999}); got != "" {
		t.Errorf("out of range Text = %q", got)
	}
}

func TestSpanOverlaps(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 10}
	tests := []struct {
		name  string
		other Span
		want  bool
	}{
		{"disjoint before", Span{File: 0, Start: 0, End: 5}, false},
		{"disjoint after", Span{File: 0, Start: 10, End: 12}, false},
		{"partial", Span{File: 0, Start: 8, End: 12}, true},
		{"contained", Span{File: 0, Start: 6, End: 7}, true},
		{"other file", Span{File: 1, Start: 5, End: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}
