package catalog

import (
	"sort"

	"github.com/fbkclanna/catalogctl/internal/manifest"
	"github.com/fbkclanna/catalogctl/internal/specifier"
)

// Source pairs a loaded manifest with its workspace location. Root marks
// the workspace root manifest, the only target of the tool-version guard.
type Source struct {
	Path string
	Rel  string
	Root bool
	File *manifest.File
}

// Observations maps dependency names to the distinct specifiers seen
// across all manifests, in first-seen order.
type Observations map[string][]string

// Names returns the observed dependency names, sorted.
func (o Observations) Names() []string {
	return sortedKeys(o)
}

// Scan builds the observation table from a snapshot of workspace
// manifests. Specifiers that are the workspace wildcard, or neither an
// alias nor a valid range, are excluded; the rest are collected as an
// ordered set per name. No side effects.
func Scan(sources []Source) Observations {
	obs := make(Observations)
	for _, src := range sources {
		for _, section := range manifest.Sections {
			deps := src.File.Section(section)
			for _, name := range sortedKeys(deps) {
				spec := deps[name]
				if !specifier.Consolidatable(spec) {
					continue
				}
				if !containsString(obs[name], spec) {
					obs[name] = append(obs[name], spec)
				}
			}
		}
	}
	return obs
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
