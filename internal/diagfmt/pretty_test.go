package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lint381/internal/diag"
	"lint381/internal/lexer"
	"lint381/internal/source"
)

func lintedFile(t *testing.T, path, text string) (*source.File, FileReport) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual(path, []byte(text)))
	toks, err := lexer.TokenizeFile(f)
	if err != nil {
		return f, FileReport{Path: path, File: f, Err: err}
	}
	r := FileReport{Path: path, File: f}
	if len(toks) >= 2 && toks[0].Value == "struct" {
		d := diag.New("Struct name 'foo' should be capitalized", toks[:2]).WithHint("Foo")
		d.Rule = "C002"
		d.File = path
		r.Diagnostics = append(r.Diagnostics, d)
	}
	return f, r
}

func TestPrettyExcerptAndHint(t *testing.T) {
	_, r := lintedFile(t, "a.c", "struct foo;\n")

	var buf bytes.Buffer
	if err := Pretty(&buf, []FileReport{r}, PrettyOpts{ShowHints: true}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"a.c:1:1: error: Struct name 'foo' should be capitalized [C002]",
		"1 | struct foo;",
		"  | ^~~~~~~~~",
		"  hint: Foo",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Pretty output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyHidesHintsByDefault(t *testing.T) {
	_, r := lintedFile(t, "a.c", "struct foo;\n")
	var buf bytes.Buffer
	_ = Pretty(&buf, []FileReport{r}, PrettyOpts{})
	if strings.Contains(buf.String(), "hint:") {
		t.Errorf("hint printed without ShowHints:\n%s", buf.String())
	}
}

func TestPrettyContextLines(t *testing.T) {
	_, r := lintedFile(t, "a.c", "struct foo;\n")
	// shift the diagnostic to row 2 of a three-line file
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("b.c", []byte("int x;\n\nstruct foo;\n")))
	toks, err := lexer.TokenizeFile(f)
	if err != nil {
		t.Fatal(err)
	}
	d := r.Diagnostics[0]
	d.Tokens = toks[3:5]
	r = FileReport{Path: "b.c", File: f, Diagnostics: []diag.Diagnostic{d}}

	var buf bytes.Buffer
	_ = Pretty(&buf, []FileReport{r}, PrettyOpts{Context: 2})
	out := buf.String()
	for _, want := range []string{"b.c:3:1:", "1 | int x;", "2 | \n", "3 | struct foo;"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestWriteExcerptWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("w.c", []byte("\"日本\" foo\n")))

	var buf bytes.Buffer
	writeExcerpt(&buf, newPalette(false), f, source.Position{Row: 0, Column: 5}, source.Position{Row: 0, Column: 7}, 0)
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 2 {
		t.Fatalf("short excerpt: %q", buf.String())
	}
	if want := "  | " + strings.Repeat(" ", 7) + "^~~"; lines[1] != want {
		t.Errorf("underline = %q, want %q", lines[1], want)
	}
}

func TestWriteExcerptMultiLineSpan(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("m.c", []byte("x /* a\nb */\n")))

	var buf bytes.Buffer
	writeExcerpt(&buf, newPalette(false), f, source.Position{Row: 0, Column: 2}, source.Position{Row: 1, Column: 3}, 0)
	if want := "  |   ^~~~\n"; !strings.HasSuffix(buf.String(), want) {
		t.Errorf("excerpt = %q, want suffix %q", buf.String(), want)
	}
}

func TestPrettyTokenizeFailure(t *testing.T) {
	_, r := lintedFile(t, "bad.c", "int `x;\n")
	if r.Err == nil {
		t.Fatal("expected tokenize failure")
	}
	var buf bytes.Buffer
	_ = Pretty(&buf, []FileReport{r}, PrettyOpts{})
	out := buf.String()
	if !strings.HasPrefix(out, "bad.c:1:5: error: could not tokenize: unexpected character") {
		t.Errorf("unexpected failure line:\n%s", out)
	}
	if !strings.Contains(out, "    ^\n") {
		t.Errorf("expected caret under the bad character:\n%s", out)
	}
}

func TestPrettySummary(t *testing.T) {
	_, ok := lintedFile(t, "a.c", "struct foo;\n")
	_, bad := lintedFile(t, "bad.c", "\"open\n")
	_, clean := lintedFile(t, "c.c", "int x;\n")

	var buf bytes.Buffer
	_ = Pretty(&buf, []FileReport{ok, bad, clean}, PrettyOpts{Summary: true})
	want := "1 problem (1 error) in 3 files, 1 could not be linted\n"
	if !strings.HasSuffix(buf.String(), want) {
		t.Errorf("summary mismatch:\n%s", buf.String())
	}
}

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name                                      string
		files, errs, warns, infos, failed, dropped int
		want                                      string
	}{
		{"clean", 2, 0, 0, 0, 0, 0, "no problems in 2 files"},
		{"mixed", 1, 2, 1, 0, 0, 0, "3 problems (2 errors, 1 warning) in 1 file"},
		{"info", 1, 0, 0, 3, 0, 0, "3 problems (3 info) in 1 file"},
		{"dropped", 4, 1, 0, 0, 0, 7, "1 problem (1 error) in 4 files, 7 more suppressed by the limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summaryLine(tt.files, tt.errs, tt.warns, tt.infos, tt.failed, tt.dropped); got != tt.want {
				t.Errorf("summaryLine = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestPathModes проверяет режимы отображения путей
func TestPathModes(t *testing.T) {
	long := "/very/long/absolute/path/to/some/nested/directory/file.c"
	tests := []struct {
		name string
		mode PathMode
		path string
		want string
	}{
		{"auto short", PathModeAuto, "test.c", "test.c"},
		{"auto long absolute", PathModeAuto, long, "file.c"},
		{"basename", PathModeBasename, "src/x/y.c", "y.c"},
		{"relative", PathModeRelative, "/base/src/y.c", "src/y.c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := displayPath(FileReport{Path: tt.path}, tt.mode, "/base")
			if got != tt.want {
				t.Errorf("displayPath(%q, %s) = %q, want %q", tt.path, tt.mode, got, tt.want)
			}
		})
	}
}

func TestParsePathMode(t *testing.T) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename} {
		got, err := ParsePathMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParsePathMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParsePathMode("sideways"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
