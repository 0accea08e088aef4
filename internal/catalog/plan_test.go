package catalog

import (
	"testing"

	"github.com/fbkclanna/catalogctl/internal/manifest"
	"github.com/fbkclanna/catalogctl/internal/specifier"
)

func TestBuildPlan(t *testing.T) {
	sources := []Source{
		{
			Path: "/ws/package.json",
			Rel:  "package.json",
			Root: true,
			File: &manifest.File{Name: "root", PackageManager: "pnpm@8.9.0"},
		},
		depsSource("a", map[string]string{"lodash": "^4.17.21", "react": "^18.0.0"}),
		depsSource("b", map[string]string{"lodash": "^4.17.21", "react": "^17.0.0"}),
	}
	dec := Partition(Scan(sources))
	current := map[string]string{"axios": "^1.7.0"}

	plan := BuildPlan(current, sources, dec)

	if plan.Catalog["lodash"] != "^4.17.21" {
		t.Errorf("catalog.lodash = %q", plan.Catalog["lodash"])
	}
	if plan.Catalog["axios"] != "^1.7.0" {
		t.Error("prior catalog entries must survive the merge")
	}
	if _, ok := plan.Catalog["react"]; ok {
		t.Error("conflicting dependency must not enter the catalog")
	}

	if plan.ToolVersion != "pnpm@9.5.0" {
		t.Errorf("tool version = %q, want pnpm@9.5.0", plan.ToolVersion)
	}

	// Root has no dep changes but a guard bump; a and b each rewrite lodash.
	if len(plan.Edits) != 3 {
		t.Fatalf("edits = %d, want 3", len(plan.Edits))
	}
	var rootEdit, aEdit *Edit
	for i := range plan.Edits {
		switch plan.Edits[i].Rel {
		case "package.json":
			rootEdit = &plan.Edits[i]
		case "a/package.json":
			aEdit = &plan.Edits[i]
		}
	}
	if rootEdit == nil {
		t.Fatal("root manifest should be planned for its guard bump")
	}
	if rootEdit.File.PackageManager != "pnpm@9.5.0" {
		t.Errorf("root packageManager = %q", rootEdit.File.PackageManager)
	}
	if aEdit == nil {
		t.Fatal("manifest a should be planned")
	}
	if aEdit.File.Dependencies["lodash"] != specifier.CatalogRef {
		t.Errorf("a lodash = %q", aEdit.File.Dependencies["lodash"])
	}
	if aEdit.File.Dependencies["react"] != "^18.0.0" {
		t.Error("conflicting react must stay untouched in manifest a")
	}
}

func TestBuildPlan_skipsUnchangedManifests(t *testing.T) {
	sources := []Source{
		depsSource("a", map[string]string{"lodash": "^4.17.21"}),
		depsSource("b", map[string]string{"other": "workspace:*"}),
	}
	dec := Partition(Scan(sources))

	plan := BuildPlan(nil, sources, dec)

	if len(plan.Edits) != 1 || plan.Edits[0].Rel != "a/package.json" {
		t.Errorf("edits = %+v, want only manifest a", plan.Edits)
	}
}

func TestBuildPlan_secondRunIsNoop(t *testing.T) {
	sources := []Source{
		depsSource("a", map[string]string{"lodash": "^4.17.21"}),
		depsSource("b", map[string]string{"lodash": "^4.17.21"}),
	}
	dec := Partition(Scan(sources))
	plan := BuildPlan(nil, sources, dec)

	// Re-scan the rewritten manifests, as a second pipeline run would.
	var second []Source
	for _, e := range plan.Edits {
		second = append(second, Source{Path: e.Path, Rel: e.Rel, File: e.File})
	}
	dec2 := Partition(Scan(second))
	if len(dec2.Selected) != 0 {
		t.Errorf("second run selected %v, want none", dec2.Selected)
	}
	plan2 := BuildPlan(plan.Catalog, second, dec2)
	if len(plan2.Edits) != 0 {
		t.Errorf("second run planned edits: %+v", plan2.Edits)
	}
	if plan2.Catalog["lodash"] != "^4.17.21" {
		t.Error("second run must preserve the catalog")
	}
}
