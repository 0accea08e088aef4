package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fbkclanna/catalogctl/internal/catalog"
	"github.com/fbkclanna/catalogctl/internal/manifest"
	"github.com/fbkclanna/catalogctl/internal/ui"
	"github.com/fbkclanna/catalogctl/internal/workspace"
	"github.com/fbkclanna/catalogctl/internal/wsconfig"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newConsolidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Move agreed dependency versions into the workspace catalog",
		RunE:  runConsolidate,
	}
	cmd.Flags().Bool("dry-run", false, "Compute and print the plan without writing anything")
	cmd.Flags().Bool("no-install", false, "Skip running pnpm install after writing")
	cmd.Flags().Bool("choose", false, "Interactively resolve version conflicts")
	cmd.Flags().Bool("json", false, "Output the report as JSON")
	return cmd
}

func runConsolidate(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noInstall, _ := cmd.Flags().GetBool("no-install")
	choose, _ := cmd.Flags().GetBool("choose")
	asJSON, _ := cmd.Flags().GetBool("json")

	out := cmd.OutOrStdout()

	// Phase 1: read everything into a snapshot.
	ctx, err := workspace.Load(root)
	if errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(out, "No pnpm-workspace.yaml found. Nothing to do.")
		return nil
	}
	if err != nil {
		return err
	}

	dec := catalog.Partition(catalog.Scan(ctx.Manifests))

	if choose && len(dec.Conflicting) > 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--choose requires an interactive terminal")
		}
		if err := resolveConflicts(dec); err != nil {
			return err
		}
	}

	if len(dec.Selected) == 0 {
		_, _ = fmt.Fprintln(out, "No consolidatable dependencies found.")
		return emitReport(out, catalog.NewReport(dec, nil, ctx.Warnings), asJSON)
	}

	plan := catalog.BuildPlan(ctx.Config.Catalog, ctx.Manifests, dec)
	rep := catalog.NewReport(dec, plan, ctx.Warnings)

	if dryRun {
		_, _ = fmt.Fprintln(out, "Dry run: no files written.")
		return emitReport(out, rep, asJSON)
	}

	// Phase 2: apply the plan. The catalog goes first so a failure
	// between the two write steps is recoverable by re-running.
	ctx.Config.Catalog = plan.Catalog
	if err := wsconfig.Save(ctx.ConfigPath, ctx.Config); err != nil {
		return err
	}

	progress := ui.NewProgress(cmd.ErrOrStderr(), len(plan.Edits))
	for _, e := range plan.Edits {
		if err := manifest.Save(e.Path, e.File); err != nil {
			return fmt.Errorf("rewriting %s: %w", e.Rel, err)
		}
		progress.Done(e.Rel)
	}

	if !noInstall {
		if err := runInstall(ctx.Root); err != nil {
			return err
		}
	}

	return emitReport(out, rep, asJSON)
}
