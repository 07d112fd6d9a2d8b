package entities

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion is returned when a release version is not a semantic version.
var ErrInvalidVersion = errors.New("invalid version")

// NormalizeVersion ensures version has a 'v' prefix for semver compatibility.
func NormalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// IsSemanticVersion reports whether version parses as semver, with or without the 'v' prefix.
func IsSemanticVersion(version string) bool {
	return version != "" && semver.IsValid(NormalizeVersion(version))
}

// ValidateVersion returns ErrInvalidVersion unless version is a semantic version.
func ValidateVersion(version string) error {
	if !IsSemanticVersion(version) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	return nil
}

// CompareVersions compares two semantic versions, returning -1, 0 or +1.
// Invalid versions sort before valid ones.
func CompareVersions(a, b string) int {
	return semver.Compare(NormalizeVersion(a), NormalizeVersion(b))
}

// IsNewerVersion reports whether candidate is newer than current. A current
// version that is not semver (a development build) is always outdated.
func IsNewerVersion(current, candidate string) bool {
	if !IsSemanticVersion(current) {
		return true
	}
	return CompareVersions(candidate, current) > 0
}
