package layout

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a layout YAML file from disk and validates it. It's a thin
// os.DirFS wrapper around LoadFS, the way the teacher's cli/cmd/dep.go
// wraps sqlcode.Include with os.DirFS(directory) rather than reading files
// itself.
func Load(path string) (Layout, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return LoadFS(os.DirFS(filepath.Clean(dir)), name)
}

// LoadFS reads the layout YAML file named name out of fsys and validates
// it. Unknown keys in the file are ignored for forward compatibility;
// validation failures are returned as *ConfigError.
func LoadFS(fsys fs.FS, name string) (Layout, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout file %s: %w", name, err)
	}

	var l Layout
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return Layout{}, fmt.Errorf("parsing layout file %s: %w", name, err)
	}

	if err := Validate(&l); err != nil {
		return Layout{}, fmt.Errorf("invalid layout file %s: %w", name, err)
	}

	return l, nil
}
