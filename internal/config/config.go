// Package config loads .lint381.toml, the per-project lint settings.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"lint381/internal/diag"
	"lint381/internal/lint"
	"lint381/internal/source"
)

// FileName is the config file looked up from the lint target upwards.
const FileName = ".lint381.toml"

// Config is the decoded file. Zero values mean "not set".
type Config struct {
	Lint     LintConfig        `toml:"lint"`
	Severity map[string]string `toml:"severity"`

	// Path is where the config came from; empty for defaults.
	Path string `toml:"-"`
}

// LintConfig is the [lint] table.
type LintConfig struct {
	Language       string   `toml:"language"`
	Disable        []string `toml:"disable"`
	TabWidth       int      `toml:"tab_width"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"`
	ParallelRules  bool     `toml:"parallel_rules"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Lint: LintConfig{
			Language: "auto",
			TabWidth: source.DefaultTabWidth,
		},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover returns the config governing startDir, or Default if there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes and validates one file. Unset keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that TOML types cannot express.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Language(); err != nil {
		errs = append(errs, err)
	}
	if c.Lint.TabWidth < 0 {
		errs = append(errs, fmt.Errorf("[lint].tab_width must not be negative"))
	}
	if c.Lint.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("[lint].max_diagnostics must not be negative"))
	}
	if c.Lint.Jobs < 0 {
		errs = append(errs, fmt.Errorf("[lint].jobs must not be negative"))
	}
	for _, id := range slices.Sorted(maps.Keys(c.Severity)) {
		if _, err := diag.ParseSeverity(c.Severity[id]); err != nil {
			errs = append(errs, fmt.Errorf("[severity].%s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// Language returns the forced language, or 0 for detection by extension.
func (c Config) Language() (lint.Language, error) {
	switch strings.ToLower(c.Lint.Language) {
	case "", "auto":
		return 0, nil
	}
	lang, err := lint.ParseLanguage(c.Lint.Language)
	if err != nil {
		return 0, fmt.Errorf("[lint].language: %w", err)
	}
	return lang, nil
}

// Severities returns the parsed [severity] table. Call after Validate.
func (c Config) Severities() map[string]diag.Severity {
	out := make(map[string]diag.Severity, len(c.Severity))
	for id, s := range c.Severity {
		if sev, err := diag.ParseSeverity(s); err == nil {
			out[id] = sev
		}
	}
	return out
}

// UnknownRules lists IDs in disable and [severity] that reg does not know.
func (c Config) UnknownRules(reg *lint.Registry) []string {
	var unknown []string
	for _, id := range append(slices.Clone(c.Lint.Disable), slices.Sorted(maps.Keys(c.Severity))...) {
		if _, ok := reg.Lookup(id); !ok && !slices.Contains(unknown, id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
