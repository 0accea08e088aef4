package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/fbkclanna/catalogctl/internal/catalog"
	"github.com/fbkclanna/catalogctl/internal/workspace"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show what consolidate would do, without writing",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	out := cmd.OutOrStdout()

	ctx, err := workspace.Load(root)
	if errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(out, "No pnpm-workspace.yaml found.")
		return nil
	}
	if err != nil {
		return err
	}

	dec := catalog.Partition(catalog.Scan(ctx.Manifests))
	if !asJSON {
		_, _ = fmt.Fprintf(out, "Workspace: %s (%d manifests, %d catalog entries)\n",
			ctx.Root, len(ctx.Manifests), len(ctx.Config.Catalog))
	}
	return emitReport(out, catalog.NewReport(dec, nil, ctx.Warnings), asJSON)
}
