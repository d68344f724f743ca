// Package project locates the enclosing Go project and reads its module
// identity from go.mod.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// FindRoot walks upward from dir looking for a go.mod file and returns
// the directory containing it.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(abs, "go.mod")); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		abs = parent
	}
}

// ModulePath returns the module path declared in the go.mod at root.
func ModulePath(root string) (string, error) {
	goModPath := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("no module declaration in %s", goModPath)
	}
	return path, nil
}
