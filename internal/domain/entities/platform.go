package entities

import (
	"fmt"
	"runtime"
)

const (
	OSDarwin = "darwin"
	OSLinux  = "linux"

	ArchARM64 = "arm64"
	ArchAMD64 = "amd64"

	// BinaryName is the name of the installed executable.
	BinaryName = "hotaisle"
	// ProjectName prefixes every release artifact.
	ProjectName = "hotaisle-cli"
)

// Platform identifies a release build target.
type Platform struct {
	OS   string
	Arch string
}

// SupportedPlatforms are the targets a release ships tarballs for.
//
//nolint:gochecknoglobals // read-only list
var SupportedPlatforms = []Platform{
	{OS: OSDarwin, Arch: ArchARM64},
	{OS: OSDarwin, Arch: ArchAMD64},
	{OS: OSLinux, Arch: ArchARM64},
	{OS: OSLinux, Arch: ArchAMD64},
}

// CurrentPlatform reports the platform the binary is running on.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// Normalized maps every architecture other than arm64 to amd64, the same
// fallback the Homebrew formula applies in its else branch.
func (it Platform) Normalized() Platform {
	if it.Arch == ArchARM64 {
		return it
	}
	return Platform{OS: it.OS, Arch: ArchAMD64}
}

// IsSupported reports whether releases ship an artifact for the normalized platform.
func (it Platform) IsSupported() bool {
	normalized := it.Normalized()
	for _, p := range SupportedPlatforms {
		if p == normalized {
			return true
		}
	}
	return false
}

// AssetName is the release tarball for this platform,
// e.g. hotaisle-cli-1.2.3-darwin-arm64.tar.gz.
func (it Platform) AssetName(version string) string {
	p := it.Normalized()
	return fmt.Sprintf("%s-%s-%s-%s.tar.gz", ProjectName, TrimVersionPrefix(version), p.OS, p.Arch)
}

// BinaryName is the executable packed inside the tarball, e.g. hotaisle-cli-darwin-arm64.
func (it Platform) BinaryName() string {
	p := it.Normalized()
	return fmt.Sprintf("%s-%s-%s", ProjectName, p.OS, p.Arch)
}

// DefaultBinDir is where Homebrew would link the binary on this platform.
func (it Platform) DefaultBinDir() string {
	if it.OS == OSDarwin && it.Arch == ArchARM64 {
		return "/opt/homebrew/bin"
	}
	return "/usr/local/bin"
}

func (it Platform) String() string {
	return it.OS + "/" + it.Arch
}
