package catalog

import "github.com/fbkclanna/catalogctl/internal/manifest"

// Edit pairs a manifest location with its rewritten content.
type Edit struct {
	Path    string
	Rel     string
	File    *manifest.File
	Changes []Change
}

// Plan is the immutable write set computed from the read phase: the
// merged catalog, the manifests that need rewriting, and the guarded
// tool version. Every decision is made here, against the phase-1
// snapshot, before any file is touched.
type Plan struct {
	Catalog     map[string]string
	Edits       []Edit
	ToolVersion string // new root packageManager pin, empty if untouched
}

// BuildPlan computes the full write set from the current catalog, the
// manifest snapshot, and the consolidation decision. Manifests without
// any change are omitted from the plan and never rewritten.
func BuildPlan(current map[string]string, sources []Source, dec Decision) *Plan {
	plan := &Plan{Catalog: Merge(current, dec.Selected)}
	for _, src := range sources {
		out, changes := Rewrite(src.File, dec.Selected)
		guarded := false
		if src.Root {
			if v, ok := GuardToolVersion(out.PackageManager); ok {
				out.PackageManager = v
				plan.ToolVersion = v
				guarded = true
			}
		}
		if len(changes) == 0 && !guarded {
			continue
		}
		plan.Edits = append(plan.Edits, Edit{Path: src.Path, Rel: src.Rel, File: out, Changes: changes})
	}
	return plan
}
