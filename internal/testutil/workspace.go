// Package testutil provides temp-directory workspace fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfig writes a pnpm-workspace.yaml with the given content into dir.
func WriteConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "pnpm-workspace.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// WritePackage writes a package.json with the given content at rel under
// dir, creating intermediate directories.
func WritePackage(t *testing.T, dir, rel, content string) {
	t.Helper()
	pkgDir := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(pkgDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pkgDir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// WriteRootPackage writes the workspace root package.json.
func WriteRootPackage(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// Workspace creates a temp workspace with the given config and packages
// (keyed by workspace-relative directory) and returns its root.
func Workspace(t *testing.T, config string, packages map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	WriteConfig(t, dir, config)
	for rel, content := range packages {
		WritePackage(t, dir, rel, content)
	}
	return dir
}
