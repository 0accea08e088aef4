package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses a package.json file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from workspace glob expansion
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses package.json content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing manifest JSON: %w", err)
	}
	return &f, nil
}

// Save writes a manifest back to disk with two-space indentation and a
// trailing newline, matching the usual package.json formatting.
func Save(path string, f *File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // manifest needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// UnmarshalJSON splits the document into the fields the tool acts on and
// an opaque remainder that is carried through untouched.
func (f *File) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := popString(raw, "name", &f.Name); err != nil {
		return err
	}
	if err := popString(raw, "packageManager", &f.PackageManager); err != nil {
		return err
	}
	for _, section := range Sections {
		msg, ok := raw[section]
		if !ok {
			continue
		}
		delete(raw, section)
		var deps map[string]string
		if err := json.Unmarshal(msg, &deps); err != nil {
			return fmt.Errorf("field %s: %w", section, err)
		}
		f.setSection(section, deps)
	}

	if len(raw) > 0 {
		f.extra = raw
	}
	return nil
}

// MarshalJSON reassembles the modeled fields with the preserved remainder.
// encoding/json emits map keys sorted, so output is deterministic.
func (f *File) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(f.extra)+5)
	for k, v := range f.extra {
		out[k] = v
	}

	if f.Name != "" {
		out["name"] = mustRaw(f.Name)
	}
	if f.PackageManager != "" {
		out["packageManager"] = mustRaw(f.PackageManager)
	}
	for _, section := range Sections {
		if deps := f.Section(section); deps != nil {
			out[section] = mustRaw(deps)
		}
	}
	return json.Marshal(out)
}

func popString(raw map[string]json.RawMessage, key string, dst *string) error {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(msg, dst); err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	delete(raw, key)
	return nil
}

func mustRaw(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		// Only strings and string maps reach here.
		panic(err)
	}
	return data
}
