package entities

import (
	"fmt"
	"runtime"
	"strings"
)

// Build metadata, injected at link time:
//
//	go build -ldflags "-X github.com/hotaisle/hotaisle-cli/internal/domain/entities.Version=1.2.3"
//
//nolint:gochecknoglobals // set by the linker
var (
	Version   = "dev"
	Commit    = "none"
	Branch    = "none"
	BuildBy   = "unknown"
	BuildTime = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	Branch    string
	BuildBy   string
	BuildTime string
	GoVersion string
}

// NewBuildInfo returns the metadata linked into the binary.
func NewBuildInfo() *BuildInfo {
	return &BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Branch:    Branch,
		BuildBy:   BuildBy,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

// String is what `hotaisle --version` prints after "hotaisle version ".
// The first line starts with the version so the formula's assert_match holds.
func (it *BuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, branch: %s)\nBuilt by: %s at %s\nGo version: %s",
		it.Version, it.Commit, it.Branch, it.BuildBy, it.BuildTime, it.GoVersion)
}

// UserAgent is sent with every API request.
func (it *BuildInfo) UserAgent() string {
	return "hotaisle/" + it.Version
}

// IsRelease reports whether the binary was built from a tagged release.
func (it *BuildInfo) IsRelease() bool {
	return IsSemanticVersion(it.Version)
}

// TrimVersionPrefix drops a leading "v" from a tag.
func TrimVersionPrefix(version string) string {
	return strings.TrimPrefix(strings.TrimSpace(version), "v")
}
