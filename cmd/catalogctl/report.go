package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fbkclanna/catalogctl/internal/catalog"
	"github.com/fbkclanna/catalogctl/internal/specifier"
	"github.com/fbkclanna/catalogctl/internal/ui"
)

// emitReport renders a run report as text or JSON.
func emitReport(out io.Writer, rep catalog.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	if len(rep.Selected) > 0 {
		_, _ = fmt.Fprintln(out, "\nMoved to catalog:")
		tbl := ui.NewTable(out, "  NAME", "SPECIFIER")
		for _, name := range sortedKeys(rep.Selected) {
			tbl.Row("  "+name, rep.Selected[name])
		}
		if err := tbl.Flush(); err != nil {
			return err
		}
	}

	if len(rep.Conflicting) > 0 {
		_, _ = fmt.Fprintln(out, "\nLeft out (conflicting versions):")
		tbl := ui.NewTable(out, "  NAME", "SPECIFIERS")
		for _, name := range sortedKeys(rep.Conflicting) {
			tbl.Row("  "+name, strings.Join(rep.Conflicting[name], ", "))
		}
		if err := tbl.Flush(); err != nil {
			return err
		}
	}

	if len(rep.Changes) > 0 {
		_, _ = fmt.Fprintln(out, "\nManifest changes:")
		for _, rel := range sortedKeys(rep.Changes) {
			_, _ = fmt.Fprintf(out, "  %s:\n", rel)
			for _, c := range rep.Changes[rel] {
				_, _ = fmt.Fprintf(out, "    %s: %s %s -> %s\n", c.Section, c.Name, c.OldSpec, specifier.CatalogRef)
			}
		}
	}

	if rep.ToolVersion != "" {
		_, _ = fmt.Fprintf(out, "\npackageManager bumped to %s\n", rep.ToolVersion)
	}

	for _, w := range rep.Warnings {
		_, _ = fmt.Fprintf(out, "Warning: %s\n", w)
	}

	_, _ = fmt.Fprintf(out, "\n%d consolidated, %d conflicting.\n", len(rep.Selected), len(rep.Conflicting))
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
