package catalog

import "testing"

func TestMerge_unionWithOverwrite(t *testing.T) {
	existing := map[string]string{
		"lodash": "^4.0.0",
		"axios":  "^1.7.0",
	}
	selected := map[string]string{
		"lodash": "^4.17.21",
		"zod":    "^3.23.0",
	}

	merged := Merge(existing, selected)

	if merged["lodash"] != "^4.17.21" {
		t.Errorf("lodash = %q, selected entry must win", merged["lodash"])
	}
	if merged["axios"] != "^1.7.0" {
		t.Error("untouched entries must be preserved")
	}
	if merged["zod"] != "^3.23.0" {
		t.Error("new selections must be added")
	}
	if len(existing) != 2 {
		t.Error("merge must not mutate the existing catalog")
	}
}

func TestMerge_emptySelectionIsIdentity(t *testing.T) {
	existing := map[string]string{"lodash": "^4.17.21"}
	merged := Merge(existing, nil)
	if len(merged) != 1 || merged["lodash"] != "^4.17.21" {
		t.Errorf("merged = %v", merged)
	}
}
