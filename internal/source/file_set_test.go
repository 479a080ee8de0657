package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.c", []byte("int x;"), 0)
	id2 := fs.Add("main.c", []byte("int y;"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("unexpected ids %d, %d", id1, id2)
	}

	latest, ok := fs.GetLatest("./main.c")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	// старая версия остаётся доступной
	if got := fs.Get(id1).Text(); got != "int x;" {
		t.Errorf("first version content = %q", got)
	}
	if fs.Get(id1).Hash == fs.Get(id2).Hash {
		t.Error("different content must hash differently")
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("a.c", []byte("a\nb\n")))

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("LineIdx = %v, want %v", file.LineIdx, expected)
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if file.LineCount() != 2 {
		t.Errorf("LineCount = %d, want 2", file.LineCount())
	}
}

func TestFileLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("m.c", []byte("int main() {\n\n}\nfoo ();")))

	cases := []struct {
		row  int
		want string
	}{
		{0, "int main() {"},
		{1, ""},
		{2, "}"},
		{3, "foo ();"},
		{4, ""},
		{-1, ""},
	}
	for _, tc := range cases {
		if got := file.Line(tc.row); got != tc.want {
			t.Errorf("Line(%d) = %q, want %q", tc.row, got, tc.want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.c")
	raw := []byte("\xEF\xBB\xBFint\ta;\r\nint b;\r\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	fs.SetTabWidth(4)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if got, want := file.Text(), "int a;\nint b;\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	for _, flag := range []FileFlags{FileHadBOM, FileNormalizedCRLF, FileExpandedTabs} {
		if file.Flags&flag == 0 {
			t.Errorf("flag %b not set (flags %b)", flag, file.Flags)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.c")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if fs.Len() != 0 {
		t.Errorf("failed load must not add a file")
	}
}
