package manifest

import "encoding/json"

// Dependency section names as they appear in package.json.
const (
	SectionRuntime  = "dependencies"
	SectionDev      = "devDependencies"
	SectionOptional = "optionalDependencies"
)

// Sections lists the dependency sections in canonical order.
var Sections = []string{SectionRuntime, SectionDev, SectionOptional}

// File represents a package.json manifest.
type File struct {
	Name                 string
	PackageManager       string
	Dependencies         map[string]string
	DevDependencies      map[string]string
	OptionalDependencies map[string]string

	// extra holds fields the tool does not model, kept verbatim so a
	// save never drops anything.
	extra map[string]json.RawMessage
}

// Section returns the dependency map for the given section name, or nil
// if the section is absent.
func (f *File) Section(name string) map[string]string {
	switch name {
	case SectionRuntime:
		return f.Dependencies
	case SectionDev:
		return f.DevDependencies
	case SectionOptional:
		return f.OptionalDependencies
	}
	return nil
}

// setSection replaces the dependency map for the given section name.
func (f *File) setSection(name string, deps map[string]string) {
	switch name {
	case SectionRuntime:
		f.Dependencies = deps
	case SectionDev:
		f.DevDependencies = deps
	case SectionOptional:
		f.OptionalDependencies = deps
	}
}

// Clone returns a deep copy of the manifest. Rewrites operate on the copy
// so the scanned snapshot is never aliased by a write target.
func (f *File) Clone() *File {
	c := &File{
		Name:           f.Name,
		PackageManager: f.PackageManager,
	}
	c.Dependencies = cloneMap(f.Dependencies)
	c.DevDependencies = cloneMap(f.DevDependencies)
	c.OptionalDependencies = cloneMap(f.OptionalDependencies)
	if f.extra != nil {
		c.extra = make(map[string]json.RawMessage, len(f.extra))
		for k, v := range f.extra {
			c.extra[k] = v
		}
	}
	return c
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
