package driver

import (
	"errors"
	"fmt"
	"path/filepath"

	"lint381/internal/diag"
	"lint381/internal/lint"
	"lint381/internal/rules"
)

// ErrUnknownFileType is reported for files whose language cannot be detected.
var ErrUnknownFileType = errors.New("unknown file type")

// Options configures a lint run.
type Options struct {
	// Lang forces a language; zero detects it per file from the extension.
	Lang lint.Language
	// Registry replaces the built-in rule set for every language.
	Registry *lint.Registry
	Disable  []string
	Severity map[string]diag.Severity

	Jobs          int // параллельных файлов, 0 = GOMAXPROCS
	ParallelRules bool
	RuleJobs      int // 0 = по горутине на правило

	MaxDiagnostics int // на файл, 0 = без ограничения
	TabWidth       int
	BaseDir        string

	Cache    *DiskCache
	Version  string // входит в ключ кэша
	Progress ProgressSink
	Timings  bool
	// Reporter sees every kept diagnostic as its file finishes; LintFiles
	// calls it from several goroutines.
	Reporter diag.Reporter
}

func (o *Options) progress() ProgressSink {
	if o.Progress == nil {
		return nopSink{}
	}
	return o.Progress
}

func (o *Options) language(path string) (lint.Language, error) {
	if o.Lang != 0 {
		return o.Lang, nil
	}
	lang, ok := lint.DetectLanguage(path)
	if !ok {
		ext := filepath.Ext(path)
		if ext == "" {
			ext = filepath.Base(path)
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownFileType, ext)
	}
	return lang, nil
}

func (o *Options) registry(lang lint.Language) (*lint.Registry, error) {
	reg := o.Registry
	if reg == nil {
		var err error
		if reg, err = rules.For(lang); err != nil {
			return nil, err
		}
	}
	if len(o.Disable) > 0 {
		reg = reg.Without(o.Disable...)
	}
	return reg, nil
}
