package workspace

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/fbkclanna/catalogctl/internal/testutil"
)

const config = "packages:\n  - \"packages/*\"\n"

func TestLoad_expandsPackageGlobs(t *testing.T) {
	dir := testutil.Workspace(t, config, map[string]string{
		"packages/a": `{"name": "a", "dependencies": {"lodash": "^4.17.21"}}`,
		"packages/b": `{"name": "b"}`,
	})
	testutil.WriteRootPackage(t, dir, `{"name": "root", "packageManager": "pnpm@9.5.0"}`)

	ctx, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ctx.Manifests) != 3 {
		t.Fatalf("manifests = %d, want 3", len(ctx.Manifests))
	}
	if !ctx.Manifests[0].Root || ctx.Manifests[0].Rel != "package.json" {
		t.Errorf("first manifest should be the root, got %+v", ctx.Manifests[0])
	}
	if ctx.Manifests[1].Rel != "packages/a/package.json" {
		t.Errorf("manifests not sorted: %q", ctx.Manifests[1].Rel)
	}
}

func TestLoad_missingConfig(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing workspace config")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestLoad_negatedPatterns(t *testing.T) {
	cfg := "packages:\n  - \"packages/*\"\n  - \"!packages/legacy\"\n"
	dir := testutil.Workspace(t, cfg, map[string]string{
		"packages/a":      `{"name": "a"}`,
		"packages/legacy": `{"name": "legacy"}`,
	})

	ctx, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range ctx.Manifests {
		if m.Rel == "packages/legacy/package.json" {
			t.Error("negated pattern should exclude packages/legacy")
		}
	}
	if len(ctx.Manifests) != 1 {
		t.Errorf("manifests = %d, want 1", len(ctx.Manifests))
	}
}

func TestLoad_unparseableManifestIsSkipped(t *testing.T) {
	dir := testutil.Workspace(t, config, map[string]string{
		"packages/a":   `{"name": "a"}`,
		"packages/bad": `{not json`,
	})

	ctx, err := Load(dir)
	if err != nil {
		t.Fatalf("a broken manifest must not fail the load: %v", err)
	}
	if len(ctx.Manifests) != 1 {
		t.Errorf("manifests = %d, want 1", len(ctx.Manifests))
	}
	if len(ctx.Warnings) != 1 {
		t.Errorf("warnings = %v, want one skip notice", ctx.Warnings)
	}
}

func TestLoad_dirWithoutManifestIsIgnored(t *testing.T) {
	dir := testutil.Workspace(t, config, map[string]string{
		"packages/a": `{"name": "a"}`,
	})
	testutil.WritePackage(t, dir, "packages/empty/sub", `{"name": "sub"}`)

	ctx, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// packages/* matches packages/empty, which has no package.json itself.
	if len(ctx.Manifests) != 1 {
		t.Errorf("manifests = %d, want 1", len(ctx.Manifests))
	}
	if len(ctx.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", ctx.Warnings)
	}
}
