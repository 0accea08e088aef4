package catalog

// Merge returns the union of the existing catalog and the selected
// entries, with selections overwriting stale values for the same name.
// Entries untouched by this run are preserved; nothing is ever deleted.
func Merge(existing, selected map[string]string) map[string]string {
	merged := make(map[string]string, len(existing)+len(selected))
	for name, spec := range existing {
		merged[name] = spec
	}
	for name, spec := range selected {
		merged[name] = spec
	}
	return merged
}
