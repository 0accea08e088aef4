package catalog

import (
	"github.com/fbkclanna/catalogctl/internal/manifest"
	"github.com/fbkclanna/catalogctl/internal/specifier"
)

// Change records one manifest edit: which section, which dependency, and
// the specifier it used to pin.
type Change struct {
	Section string `json:"section"`
	Name    string `json:"name"`
	OldSpec string `json:"oldSpec"`
}

// Rewrite returns a copy of the manifest with every selected dependency
// pointed at the catalog sentinel, plus the change log. The input is
// never mutated. Dependencies not in selected, including conflicting
// ones, are left exactly as they were. Entries already on the sentinel
// produce no change.
func Rewrite(f *manifest.File, selected map[string]string) (*manifest.File, []Change) {
	out := f.Clone()
	var changes []Change
	for _, section := range manifest.Sections {
		deps := out.Section(section)
		for _, name := range sortedKeys(deps) {
			if _, ok := selected[name]; !ok {
				continue
			}
			old := deps[name]
			if old == specifier.CatalogRef {
				continue
			}
			deps[name] = specifier.CatalogRef
			changes = append(changes, Change{Section: section, Name: name, OldSpec: old})
		}
	}
	return out, changes
}
