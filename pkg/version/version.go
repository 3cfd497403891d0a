// Package version compares declared dependency versions against the latest
// published version of a package.
//
// # Normalization
//
// Manifests often declare a range rather than a bare version ("^1.2.3",
// "~2.0.0", "=3.1.4", "v1.0.0"). [Normalize] strips the leading
// range-indicator characters so the remaining string can be compared:
//
//	version.Normalize("^1.2.3")  // "1.2.3"
//	version.Normalize("1.2.3")   // "1.2.3"
//
// The recognized prefix characters are '^', '~', '=', 'v' and 'V', in any
// combination and repetition, plus surrounding whitespace. Normalize is
// idempotent. Operators that change the meaning of a constraint (">=", "<",
// "||", "x" wildcards) are left in place, so such constraints fail to parse
// and the package is skipped rather than compared incorrectly.
//
// # Comparison
//
// [IsOlder] follows semantic-versioning precedence: major, minor and patch are
// compared numerically and a pre-release sorts before its release. Build
// metadata is ignored. Inputs must be full MAJOR.MINOR.PATCH versions after
// normalization; anything else yields an [errors.ErrCodeInvalidVersion] error.
package version

import (
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/depscan/pkg/errors"
)

// rangePrefixes are removed from the start of a declared version, together
// with any whitespace mixed in between them.
const rangePrefixes = "^~=vV"

func isPrefixRune(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(rangePrefixes, r)
}

// Normalize strips leading range indicators and surrounding whitespace.
// Normalize(Normalize(v)) == Normalize(v) for every v.
func Normalize(v string) string {
	return strings.TrimRightFunc(strings.TrimLeftFunc(v, isPrefixRune), unicode.IsSpace)
}

// Parse normalizes v and parses it as a strict semantic version.
func Parse(v string) (*semver.Version, error) {
	n := Normalize(v)
	sv, err := semver.StrictNewVersion(n)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidVersion, err, "not a semantic version: %q", v)
	}
	return sv, nil
}

// IsOlder reports whether current is strictly lower than latest.
// Equal versions are not older. Either input failing to parse returns an
// INVALID_VERSION error and false.
func IsOlder(current, latest string) (bool, error) {
	cur, err := Parse(current)
	if err != nil {
		return false, err
	}
	lat, err := Parse(latest)
	if err != nil {
		return false, err
	}
	return cur.LessThan(lat), nil
}

// Compare returns -1, 0 or 1 depending on whether a is lower than, equal to,
// or greater than b.
func Compare(a, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return av.Compare(bv), nil
}
