package main

import (
	"fmt"
	"os"
	"os/exec"
)

// runInstall re-resolves the workspace after the catalog and manifests
// have been written. Its failure is the run's terminal error; the files
// are already durable, so retrying install alone is the recovery path.
func runInstall(dir string) error {
	cmd := exec.Command("pnpm", "install")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pnpm install: %w", err)
	}
	return nil
}
