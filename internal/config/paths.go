package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefinitionNames are the file names FindDefinition looks for, in order.
var DefinitionNames = []string{"stepline.yaml", "stepline.yml", "stepline.json", "stepline.toml"}

// FindDefinition walks up from dir looking for a directory that contains a
// stepline definition file. Returns the absolute file path or an error if
// none is found before the filesystem root.
func FindDefinition(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		for _, name := range DefinitionNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding a definition.
			return "", fmt.Errorf("no stepline definition found in any parent directory")
		}
		dir = parent
	}
}

// ResolveDefinition returns path when it is set, otherwise the nearest
// definition above the working directory.
func ResolveDefinition(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("definition %s: %w", path, err)
		}
		return path, nil
	}
	return FindDefinition("")
}
