// Package manifest handles parsing and writing of package.json files.
// Only the fields the tool acts on are modeled; everything else is
// preserved verbatim across a load/save round trip.
package manifest
