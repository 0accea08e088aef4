package specifier

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	// CatalogRef is the sentinel specifier meaning "resolved via the
	// workspace catalog".
	CatalogRef = "catalog:"

	// WorkspaceWildcard denotes the sibling package in this workspace,
	// not a version.
	WorkspaceWildcard = "workspace:*"

	// AliasPrefix marks a specifier that redirects a dependency name to
	// a different underlying package.
	AliasPrefix = "npm:"
)

// IsAlias reports whether spec is an alias reference.
func IsAlias(spec string) bool {
	return strings.HasPrefix(spec, AliasPrefix)
}

// IsRange reports whether spec parses as a semantic-version range.
func IsRange(spec string) bool {
	_, err := semver.NewConstraint(spec)
	return err == nil
}

// Consolidatable reports whether spec may participate in version
// aggregation. The workspace wildcard is excluded outright; anything else
// must be an alias reference or a valid range. The catalog sentinel is
// neither, so entries already pointing at the catalog are never
// re-observed on later runs.
func Consolidatable(spec string) bool {
	if spec == WorkspaceWildcard {
		return false
	}
	return IsAlias(spec) || IsRange(spec)
}
