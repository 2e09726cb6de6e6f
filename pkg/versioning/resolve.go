// Package versioning computes the new release version from the current
// version, the published version, and a bump specifier.
//
// Bump keywords apply standard semantic-versioning increment rules; an
// explicit X.Y.Z specifier is used verbatim. The consistency check between
// manifest and registry uses semantic comparison, so textual differences
// such as a leading "v" never fail spuriously.
package versioning

import (
	"fmt"
	"regexp"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"

	"github.com/ajxudir/npub/pkg/errors"
	"github.com/ajxudir/npub/pkg/verbose"
)

// Bump keywords recognized as increment specifiers.
const (
	// BumpMajor increments the major component and zeroes minor and patch.
	BumpMajor = "major"

	// BumpMinor increments the minor component and zeroes patch.
	BumpMinor = "minor"

	// BumpPatch increments the patch component only.
	BumpPatch = "patch"
)

var explicitVersionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsBumpKeyword reports whether spec is one of the increment keywords.
//
// Parameters:
//   - spec: The bump specifier to check
//
// Returns:
//   - bool: true for major, minor, or patch
func IsBumpKeyword(spec string) bool {
	switch spec {
	case BumpMajor, BumpMinor, BumpPatch:
		return true
	}
	return false
}

// IsExplicitVersion reports whether spec is an explicit X.Y.Z version string.
//
// Parameters:
//   - spec: The bump specifier to check
//
// Returns:
//   - bool: true if spec matches \d+\.\d+\.\d+
func IsExplicitVersion(spec string) bool {
	return explicitVersionPattern.MatchString(spec)
}

// Resolve computes the new version for a release.
//
// It performs the following operations:
//   - Verifies current and published are semantically equal (not string-equal)
//   - For major/minor/patch, applies the semver increment rule to current;
//     pre-release and build metadata are dropped by the increment
//   - For an explicit X.Y.Z specifier, returns it verbatim with no ordering
//     validation against current (intentional manual-override escape hatch,
//     preserved as-is)
//
// Parameters:
//   - current: The version declared in the manifest
//   - published: The latest version reported by the registry
//   - bumpSpec: One of major/minor/patch or an explicit X.Y.Z string
//
// Returns:
//   - string: The new version
//   - error: VersionMismatchError when current and published differ,
//     InvalidArgumentError when bumpSpec is not recognized
func Resolve(current, published, bumpSpec string) (string, error) {
	curCanonical := canonical(current)
	if curCanonical == "" {
		return "", fmt.Errorf("invalid manifest version %q", current)
	}
	pubCanonical := canonical(published)
	if pubCanonical == "" {
		return "", fmt.Errorf("invalid published version %q", published)
	}

	if semver.Compare(curCanonical, pubCanonical) != 0 {
		return "", errors.NewVersionMismatchError(current, published)
	}

	if IsBumpKeyword(bumpSpec) {
		return increment(current, bumpSpec)
	}

	if IsExplicitVersion(bumpSpec) {
		verbose.Debugf("using explicit version %s without ordering validation", bumpSpec)
		return bumpSpec, nil
	}

	return "", errors.NewInvalidArgumentError("invalid version or bump keyword: %s", bumpSpec)
}

// increment applies a semver increment rule to the current version.
//
// Parameters:
//   - current: The version to increment
//   - keyword: One of the bump keywords
//
// Returns:
//   - string: The incremented version
//   - error: Parse error when current is not valid semver
func increment(current, keyword string) (string, error) {
	v, err := mmsemver.NewVersion(current)
	if err != nil {
		return "", fmt.Errorf("invalid manifest version %q: %w", current, err)
	}

	var next mmsemver.Version
	switch keyword {
	case BumpMajor:
		next = v.IncMajor()
	case BumpMinor:
		next = v.IncMinor()
	case BumpPatch:
		next = v.IncPatch()
	}

	verbose.Debugf("bump %s: %s -> %s", keyword, current, next.String())
	return next.String(), nil
}

// canonical normalizes a version string to canonical semver with a "v"
// prefix, returning "" when the string is not valid semver.
//
// Parameters:
//   - version: Version string, with or without a leading "v"
//
// Returns:
//   - string: Canonical form (e.g. "v1.2.3"), empty when invalid
func canonical(version string) string {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
