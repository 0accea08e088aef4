// Package specifier classifies dependency version specifiers: semver
// ranges, npm: aliases, the workspace-local wildcard, and the catalog
// reference sentinel written by the rewriter.
package specifier
