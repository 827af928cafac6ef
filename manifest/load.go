package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a manifest YAML file from disk. It's a thin
// os.DirFS wrapper around LoadFS, the way the teacher's cli/cmd/dep.go
// wraps sqlcode.Include with os.DirFS(directory) rather than reading files
// itself.
func Load(path string) (Manifest, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return LoadFS(os.DirFS(filepath.Clean(dir)), name)
}

// LoadFS reads and validates the manifest YAML file named name out of fsys.
func LoadFS(fsys fs.FS, name string) (Manifest, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest file %s: %w", name, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest file %s: %w", name, err)
	}

	if err := Validate(m); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest file %s: %w", name, err)
	}

	return m, nil
}
