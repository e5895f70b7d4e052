package deps

import (
	"strings"

	"golang.org/x/mod/semver"
)

// LatestVersion returns the highest version in versions under loose
// semantic-version ordering. It reports false if versions is empty.
//
// Loose parsing tolerates surrounding spaces and a leading "=" or "v".
// Versions that still fail to parse, including shorthands such as "1.2",
// sort below every valid one; equal
// precedence (e.g. differing build metadata) falls back to plain string
// order so the result never depends on input order.
func LatestVersion(versions []string) (string, bool) {
	if len(versions) == 0 {
		return "", false
	}
	best := versions[0]
	for _, v := range versions[1:] {
		if CompareLoose(v, best) > 0 {
			best = v
		}
	}
	return best, true
}

// CompareLoose compares two version strings, returning -1, 0 or +1.
func CompareLoose(a, b string) int {
	if c := semver.Compare(canonical(a), canonical(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// canonical converts a loose version into the "vMAJOR.MINOR.PATCH" form the
// semver package expects, or "" if v is not a full three-part version.
// semver accepts the shorthands "v1" and "v1.2"; npm does not.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimSpace(strings.TrimLeft(v, "=v"))
	core, _, _ := strings.Cut(v, "+")
	core, _, _ = strings.Cut(core, "-")
	if strings.Count(core, ".") != 2 {
		return ""
	}
	return "v" + v
}
