// Package workspace resolves a pnpm workspace on disk: it loads the
// workspace configuration, expands the package glob patterns, and reads
// every reachable manifest into an in-memory snapshot for the engine.
package workspace
