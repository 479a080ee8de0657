package rules

import (
	"fmt"

	"lint381/internal/lint"
)

var (
	cRegistry   = lint.MustRegistry(CRules()...)
	cppRegistry = lint.MustRegistry(CPPRules()...)
)

// C returns the registry used for C sources.
func C() *lint.Registry { return cRegistry }

// CPP returns the registry used for C++ sources.
func CPP() *lint.Registry { return cppRegistry }

// All is the union of every rule, C++ order, used for listings and SARIF metadata.
func All() *lint.Registry { return cppRegistry }

// For returns the registry for lang.
func For(lang lint.Language) (*lint.Registry, error) {
	switch lang {
	case lint.C:
		return cRegistry, nil
	case lint.CPP:
		return cppRegistry, nil
	}
	return nil, fmt.Errorf("no rules for language %s", lang)
}
