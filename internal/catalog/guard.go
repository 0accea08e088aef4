package catalog

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinToolVersion is the minimum packageManager version enforced on the
// root manifest; catalog references need pnpm 9.5.0.
const MinToolVersion = "9.5.0"

var minToolVersion = semver.MustParse(MinToolVersion)

// GuardToolVersion inspects a "<tool>@<version>" pin and bumps the
// version to the minimum if it is strictly below it. Pins at or above
// the minimum are returned as-is, as is anything that does not match the
// format: a malformed pin is nothing to guard, not an error.
func GuardToolVersion(field string) (string, bool) {
	tool, ver, ok := strings.Cut(field, "@")
	if !ok || tool == "" {
		return field, false
	}
	v, err := semver.StrictNewVersion(ver)
	if err != nil {
		return field, false
	}
	if v.LessThan(minToolVersion) {
		return tool + "@" + MinToolVersion, true
	}
	return field, false
}
