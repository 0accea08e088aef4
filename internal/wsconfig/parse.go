package wsconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a pnpm-workspace.yaml file. A missing file surfaces as an
// error wrapping fs.ErrNotExist so callers can treat it as a non-fatal
// abort rather than a failure.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the workspace config path
	if err != nil {
		return nil, fmt.Errorf("reading workspace config: %w", err)
	}
	return Parse(data)
}

// Parse parses pnpm-workspace.yaml content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing workspace config YAML: %w", err)
	}
	return &f, nil
}

// Save writes the workspace config to disk. yaml.v3 emits map keys
// sorted, which keeps the catalog deterministic and diff-friendly.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling workspace config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config needs to be readable
		return fmt.Errorf("writing workspace config: %w", err)
	}
	return nil
}
