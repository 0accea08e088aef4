// Package catalog implements the consolidation engine: aggregating
// version specifiers across workspace manifests, partitioning them into
// consolidatable and conflicting dependencies, merging selections into
// the workspace catalog, and computing the manifest rewrites. Everything
// here is pure; commands perform the I/O around it.
package catalog
