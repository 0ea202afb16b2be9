package resolver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Resolve turns the -inspect argument into an absolute directory that sits
// inside a Go module, ready for the package loader.
func Resolve(input string, logger *slog.Logger) (string, error) {
	absPath, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", absPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", absPath)
	}

	modRoot, err := findModuleRoot(absPath)
	if err != nil {
		return "", err
	}

	logger.Info("resolved local directory", "input", input, "dir", absPath, "module_root", modRoot)
	return absPath, nil
}

// findModuleRoot walks up from dir to the nearest directory with a go.mod.
func findModuleRoot(dir string) (string, error) {
	current := dir
	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		current = parent
	}
}
