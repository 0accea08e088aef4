package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fbkclanna/catalogctl/internal/catalog"
	"github.com/fbkclanna/catalogctl/internal/workspace"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ok := true

	// Check pnpm.
	fmt.Print("Checking pnpm... ")
	pnpmPath, err := exec.LookPath("pnpm")
	if err != nil {
		fmt.Println("NOT FOUND")
		fmt.Println("  pnpm is required. Install it from https://pnpm.io/installation")
		ok = false
	} else {
		fmt.Printf("found at %s\n", pnpmPath)
	}

	// Check pnpm version against the catalog minimum.
	if err == nil {
		fmt.Print("Checking pnpm version... ")
		out, verr := exec.Command("pnpm", "--version").Output()
		if verr != nil {
			fmt.Println("ERROR")
			ok = false
		} else {
			ver := strings.TrimSpace(string(out))
			fmt.Println(ver)
			if below, perr := belowMinimum(ver); perr != nil {
				fmt.Printf("  Warning: cannot parse pnpm version %q\n", ver)
			} else if below {
				fmt.Printf("  Warning: catalogs need pnpm %s or newer\n", catalog.MinToolVersion)
			}
		}
	}

	// Check the workspace if run inside one.
	root, _ := cmd.Flags().GetString("root")
	ctx, loadErr := workspace.Load(root)
	if loadErr == nil {
		fmt.Printf("Workspace: %d manifests, %d catalog entries\n",
			len(ctx.Manifests), len(ctx.Config.Catalog))
		for _, w := range ctx.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	} else {
		fmt.Println("No workspace found in current directory (skipping workspace checks)")
	}

	if ok {
		fmt.Println("\nAll checks passed.")
		return nil
	}
	fmt.Println("\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// belowMinimum reports whether a pnpm version string is below the
// catalog minimum.
func belowMinimum(ver string) (bool, error) {
	v, err := semver.NewVersion(ver)
	if err != nil {
		return false, err
	}
	return v.LessThan(semver.MustParse(catalog.MinToolVersion)), nil
}
