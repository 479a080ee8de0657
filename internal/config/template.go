package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Template is what "lint381 init" writes.
const Template = `# lint381 settings. Looked up from the linted path towards /.

[lint]
# auto picks C or C++ from the file extension (.h counts as C).
language = "auto"
# Rule IDs to skip, see "lint381 rules".
disable = []
# Tabs are expanded to this many columns before tokenizing.
tab_width = 8
# Per-file cap; 0 means unlimited.
max_diagnostics = 0
# Files linted at once; 0 means GOMAXPROCS.
jobs = 0
parallel_rules = false

[severity]
# C002 = "warning"
`

// ErrExists is returned by WriteTemplate when the file is already there.
var ErrExists = errors.New("config file already exists")

// WriteTemplate creates dir/.lint381.toml and returns its path.
func WriteTemplate(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s: %w", path, ErrExists)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil { //nolint:gosec
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
