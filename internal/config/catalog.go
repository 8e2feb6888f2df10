// internal/config/catalog.go
package config

import (
	"os"
	"path/filepath"
)

// DataDirCandidates lists fixture directories in the order they are tried.
// An explicit DataDir always comes first.
func (c CatalogConfig) DataDirCandidates() []string {
	var candidates []string
	if c.DataDir != "" {
		candidates = append(candidates, c.DataDir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	candidates = append(candidates, filepath.Join(cwd, "data"))

	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "..", "data"))
	}

	candidates = append(candidates,
		"/var/task/data",
		filepath.Join(cwd, "..", "data"),
		filepath.Join(cwd, "..", "..", "data"),
	)
	return candidates
}
