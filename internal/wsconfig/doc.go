// Package wsconfig handles parsing and writing of pnpm-workspace.yaml.
// The tool reads the package patterns and the catalog, rewrites only the
// catalog, and carries every other field through unchanged.
package wsconfig
