package wsconfig

// FileName is the workspace configuration file name at the workspace root.
const FileName = "pnpm-workspace.yaml"

// File represents pnpm-workspace.yaml.
type File struct {
	Packages []string          `yaml:"packages"`
	Catalog  map[string]string `yaml:"catalog,omitempty"`

	// Rest captures fields the tool does not model so they survive a
	// load/save round trip.
	Rest map[string]any `yaml:",inline"`
}
