package catalog

import "fmt"

// Decision partitions observed dependencies into those safe to
// consolidate and those with conflicting specifiers. Every observed name
// lands in exactly one of the two maps.
type Decision struct {
	Selected    map[string]string
	Conflicting map[string][]string
}

// Partition splits the observation table: names with exactly one distinct
// specifier are selected, names with two or more are conflicting.
func Partition(obs Observations) Decision {
	dec := Decision{
		Selected:    make(map[string]string),
		Conflicting: make(map[string][]string),
	}
	for name, specs := range obs {
		if len(specs) == 1 {
			dec.Selected[name] = specs[0]
		} else {
			dec.Conflicting[name] = specs
		}
	}
	return dec
}

// SelectedNames returns the selected dependency names, sorted.
func (d Decision) SelectedNames() []string {
	return sortedKeys(d.Selected)
}

// ConflictingNames returns the conflicting dependency names, sorted.
func (d Decision) ConflictingNames() []string {
	return sortedKeys(d.Conflicting)
}

// Promote moves a conflicting dependency into the selected partition
// using one of its observed specifiers. Used by interactive conflict
// resolution; spec must be one of the specifiers seen in the workspace.
func (d Decision) Promote(name, spec string) error {
	specs, ok := d.Conflicting[name]
	if !ok {
		return fmt.Errorf("dependency %q is not conflicting", name)
	}
	if !containsString(specs, spec) {
		return fmt.Errorf("specifier %q was not observed for %q", spec, name)
	}
	d.Selected[name] = spec
	delete(d.Conflicting, name)
	return nil
}
