package catalog

import (
	"reflect"
	"testing"

	"github.com/fbkclanna/catalogctl/internal/manifest"
)

func depsSource(name string, deps map[string]string) Source {
	return Source{
		Path: "/" + name + "/package.json",
		Rel:  name + "/package.json",
		File: &manifest.File{Name: name, Dependencies: deps},
	}
}

func TestScan_collectsDistinctSpecifiers(t *testing.T) {
	obs := Scan([]Source{
		depsSource("a", map[string]string{"lodash": "^4.17.21", "react": "^18.0.0"}),
		depsSource("b", map[string]string{"lodash": "^4.17.21", "react": "^17.0.0"}),
	})

	if got := obs["lodash"]; !reflect.DeepEqual(got, []string{"^4.17.21"}) {
		t.Errorf("lodash = %v, want [^4.17.21]", got)
	}
	if got := obs["react"]; !reflect.DeepEqual(got, []string{"^18.0.0", "^17.0.0"}) {
		t.Errorf("react = %v, want [^18.0.0 ^17.0.0]", got)
	}
}

func TestScan_excludesWorkspaceWildcard(t *testing.T) {
	obs := Scan([]Source{
		depsSource("a", map[string]string{"shared-lib": "workspace:*"}),
		depsSource("b", map[string]string{"shared-lib": "workspace:*"}),
	})
	if _, ok := obs["shared-lib"]; ok {
		t.Error("workspace:* entries must not be observed")
	}
}

func TestScan_excludesInvalidSpecifiers(t *testing.T) {
	obs := Scan([]Source{
		depsSource("a", map[string]string{
			"left-pad": "latest",
			"local":    "file:../local",
			"migrated": "catalog:",
		}),
	})
	if len(obs) != 0 {
		t.Errorf("observations = %v, want none", obs)
	}
}

func TestScan_aliasAndRangeAreDistinct(t *testing.T) {
	obs := Scan([]Source{
		depsSource("a", map[string]string{"left-pad": "npm:left-pad@^1.0.0"}),
		depsSource("b", map[string]string{"left-pad": "^1.0.0"}),
	})
	if got := len(obs["left-pad"]); got != 2 {
		t.Errorf("left-pad distinct specifiers = %d, want 2", got)
	}
}

func TestScan_coversAllSections(t *testing.T) {
	obs := Scan([]Source{{
		Rel: "a/package.json",
		File: &manifest.File{
			Name:                 "a",
			Dependencies:         map[string]string{"runtime-dep": "^1.0.0"},
			DevDependencies:      map[string]string{"dev-dep": "^2.0.0"},
			OptionalDependencies: map[string]string{"opt-dep": "^3.0.0"},
		},
	}})
	for _, name := range []string{"runtime-dep", "dev-dep", "opt-dep"} {
		if _, ok := obs[name]; !ok {
			t.Errorf("%s not observed", name)
		}
	}
}
