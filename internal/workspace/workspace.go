package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fbkclanna/catalogctl/internal/catalog"
	"github.com/fbkclanna/catalogctl/internal/manifest"
	"github.com/fbkclanna/catalogctl/internal/wsconfig"
)

// readJobs bounds concurrent manifest reads during the snapshot phase.
const readJobs = 8

// Context holds the resolved paths and loaded state for a workspace.
// It is the phase-1 snapshot: nothing here changes once Load returns.
type Context struct {
	Root       string
	ConfigPath string
	Config     *wsconfig.File
	Manifests  []catalog.Source
	Warnings   []string
}

// Load resolves the workspace root, loads pnpm-workspace.yaml, and reads
// every manifest reachable from its package patterns plus the root
// manifest. Manifests that cannot be read or parsed contribute zero
// observations and are recorded as warnings.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	configPath := filepath.Join(root, wsconfig.FileName)
	cfg, err := wsconfig.Load(configPath)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Root:       root,
		ConfigPath: configPath,
		Config:     cfg,
	}

	paths, warnings := manifestPaths(root, cfg.Packages)
	ctx.Warnings = warnings

	sources, loadWarnings := loadManifests(root, paths)
	ctx.Manifests = sources
	ctx.Warnings = append(ctx.Warnings, loadWarnings...)

	return ctx, nil
}

// manifestPaths expands the package patterns to package.json paths. The
// root manifest is always first; the rest are sorted for deterministic
// scanning. Patterns starting with "!" exclude matching directories.
func manifestPaths(root string, patterns []string) (paths []string, warnings []string) {
	seen := make(map[string]bool)

	var includes, excludes []string
	for _, pat := range patterns {
		if rest, ok := strings.CutPrefix(pat, "!"); ok {
			excludes = append(excludes, rest)
		} else {
			includes = append(includes, pat)
		}
	}

	var pkgPaths []string
	for _, pat := range includes {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, filepath.FromSlash(pat)))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping pattern %q: %v", pat, err))
			continue
		}
		for _, dir := range matches {
			if excluded(root, dir, excludes) {
				continue
			}
			p := filepath.Join(dir, "package.json")
			if seen[p] {
				continue
			}
			if info, err := os.Stat(p); err != nil || info.IsDir() {
				continue
			}
			seen[p] = true
			pkgPaths = append(pkgPaths, p)
		}
	}
	sort.Strings(pkgPaths)

	rootManifest := filepath.Join(root, "package.json")
	if info, err := os.Stat(rootManifest); err == nil && !info.IsDir() && !seen[rootManifest] {
		paths = append(paths, rootManifest)
	}
	return append(paths, pkgPaths...), warnings
}

func excluded(root, dir string, excludes []string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pat := range excludes {
		if ok, err := doublestar.Match(pat, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// loadManifests reads manifests concurrently. Reads are independent, so
// order only matters for the result slice, which is indexed by path
// position to stay deterministic.
func loadManifests(root string, paths []string) ([]catalog.Source, []string) {
	type slot struct {
		src  catalog.Source
		warn string
		ok   bool
	}
	slots := make([]slot, len(paths))

	sem := make(chan struct{}, readJobs)
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rel, err := filepath.Rel(root, p)
			if err != nil {
				rel = p
			}
			rel = filepath.ToSlash(rel)

			f, err := manifest.Load(p)
			if err != nil {
				slots[i] = slot{warn: fmt.Sprintf("skipping %s: %v", rel, err)}
				return
			}
			slots[i] = slot{
				src: catalog.Source{Path: p, Rel: rel, Root: rel == "package.json", File: f},
				ok:  true,
			}
		}(i, p)
	}
	wg.Wait()

	var sources []catalog.Source
	var warnings []string
	for _, s := range slots {
		if s.ok {
			sources = append(sources, s.src)
		} else if s.warn != "" {
			warnings = append(warnings, s.warn)
		}
	}
	return sources, warnings
}
