package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"lint381/internal/lint"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// inlineSeeds cover each token kind, every rule and each failure mode.
var inlineSeeds = []string{
	"",
	"int main() {\n    return 0;\n}\n",
	"a==b",
	"x <<= 2; y >>= 1; z = a && b || !c;",
	"#define __FOO__\n#define BAR\n",
	"struct foo;\nstruct Foo { int x; };\n",
	"#include \"foo.c\"\n#include <bar.c>\n#include \"baz.h\"\n",
	"/*** remove me ***/\n/* keep */\n// line\n",
	"using namespace std;\n",
	"int *p = NULL;\nstd::string s = \"a\\\"b\";\n",
	"char c = '\\'';\n",
	"\"unterminated",
	"/* unterminated",
	"int `x;",
	"é = 1.5e3;",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	exts := lint.SourceExtensions()
	// проходим по дереву testdata, добавляем все исходники C/C++
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if !slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
