package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"lint381/internal/lint"
	"lint381/internal/trace"
)

// Collect expands paths into the files to lint. Directories are walked
// recursively for C and C++ sources, each sorted for a deterministic order;
// hidden subdirectories are skipped. Other paths are kept as given, so
// missing files and unknown types are reported by LintFile.
func Collect(paths []string) ([]string, error) {
	exts := lint.SourceExtensions()
	seen := make(map[string]struct{}, len(paths))
	var files []string
	add := func(p string) {
		key := filepath.Clean(p)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			add(root)
			continue
		}
		var found []string
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
		slices.Sort(found)
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}

// LintFiles lints files concurrently, at most opts.Jobs at a time. Results
// keep the order of files. Only cancellation stops the run early; every
// other failure stays inside its own FileResult.
func LintFiles(ctx context.Context, files []string, opts Options) ([]*FileResult, error) {
	results := make([]*FileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "lint")
	defer span.End(fmt.Sprintf("%d files", len(files)))

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	sink := opts.progress()
	for _, path := range files {
		sink.OnEvent(Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			res, err := LintFile(gctx, path, opts)
			if err != nil {
				return err
			}
			// индекс i уникален, мьютекс не нужен
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// LintPaths is Collect followed by LintFiles.
func LintPaths(ctx context.Context, paths []string, opts Options) ([]*FileResult, error) {
	files, err := Collect(paths)
	if err != nil {
		return nil, err
	}
	return LintFiles(ctx, files, opts)
}
