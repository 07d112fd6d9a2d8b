package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// DefaultSmokeTestTimeout bounds the post-install `hotaisle --version` run.
const DefaultSmokeTestTimeout = 10 * time.Second

var (
	// ErrSmokeTestFailed is returned when the installed binary does not report the installed version.
	ErrSmokeTestFailed = errors.New("smoke test failed")
	// ErrUnsupportedPlatform is returned for operating systems no release is built for.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Install is the interface for installing or upgrading the CLI binary.
type Install interface {
	Execute(ctx context.Context, opts InstallOptions) (*InstallResult, error)
}

// InstallOptions holds runtime options for the install command.
type InstallOptions struct {
	Tag            string
	BinDir         string
	SHA256         string
	Force          bool
	CurrentVersion string
	Platform       entities.Platform
	Repository     entities.RepositoryRef
	Timeout        time.Duration
}

// InstallResult reports what the install command did.
type InstallResult struct {
	Version string `json:"version"`
	Path    string `json:"path,omitempty"`
	Skipped bool   `json:"skipped"`
}

// InstallCommand downloads a release tarball, verifies it and installs the binary it contains.
type InstallCommand struct {
	releases repositories.ReleaseRepository
	binaries repositories.BinaryRepository
}

// NewInstallCommand creates a new InstallCommand.
func NewInstallCommand(
	releases repositories.ReleaseRepository,
	binaries repositories.BinaryRepository,
) *InstallCommand {
	return &InstallCommand{releases: releases, binaries: binaries}
}

// Execute installs the requested release unless the running version is already current.
func (it *InstallCommand) Execute(ctx context.Context, opts InstallOptions) (*InstallResult, error) {
	platform := opts.Platform.Normalized()
	if !platform.IsSupported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, opts.Platform)
	}

	release, err := it.releases.GetRelease(ctx, opts.Repository, opts.Tag)
	if err != nil {
		return nil, fmt.Errorf("failed to get release: %w", err)
	}
	version := release.Version()
	result := &InstallResult{Version: version}

	if !opts.Force && !entities.IsNewerVersion(opts.CurrentVersion, version) {
		logger.Infof("hotaisle %s is up to date (latest release is %s)", opts.CurrentVersion, version)
		result.Skipped = true
		return result, nil
	}

	asset, err := release.PlatformAsset(platform)
	if err != nil {
		return nil, err
	}

	expected, err := it.expectedChecksum(ctx, release, asset, opts.SHA256)
	if err != nil {
		return nil, err
	}

	archive, err := it.download(ctx, asset, expected)
	if err != nil {
		return nil, err
	}
	defer os.Remove(archive)

	binDir := opts.BinDir
	if binDir == "" {
		binDir = platform.DefaultBinDir()
	}
	destination := filepath.Join(binDir, entities.BinaryName)
	if err = it.binaries.Install(ctx, archive, platform.BinaryName(), destination); err != nil {
		return nil, fmt.Errorf("failed to install %s: %w", destination, err)
	}
	logger.Infof("Installed hotaisle %s to %s", version, destination)
	result.Path = destination

	if err = it.smokeTest(ctx, destination, version, opts.Timeout); err != nil {
		return result, err
	}
	return result, nil
}

// expectedChecksum prefers an explicit digest and falls back to the release's checksums.txt.
func (it *InstallCommand) expectedChecksum(
	ctx context.Context, release *entities.Release, asset entities.ReleaseAsset, explicit string,
) (string, error) {
	if explicit != "" {
		digest := strings.ToLower(strings.TrimSpace(explicit))
		if err := entities.ValidateChecksum(digest); err != nil {
			return "", err
		}
		return digest, nil
	}

	manifest, err := release.Asset(entities.ChecksumsAssetName)
	if err != nil {
		return "", fmt.Errorf(
			"%w for %s: release %s has no %s, pass --sha256",
			entities.ErrChecksumUnavailable, asset.Name, release.Tag, entities.ChecksumsAssetName,
		)
	}
	checksums, err := downloadChecksums(ctx, it.releases, manifest)
	if err != nil {
		return "", err
	}
	digest, err := checksums.Lookup(asset.Name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrChecksumUnavailable, err)
	}
	return digest, nil
}

// download stores asset in a temporary file, hashing it on the way. The file is
// removed again when the digest does not match.
func (it *InstallCommand) download(ctx context.Context, asset entities.ReleaseAsset, expected string) (string, error) {
	file, err := os.CreateTemp("", "hotaisle-*.tar.gz")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	archive := file.Name()

	hasher := sha256.New()
	downloadErr := it.releases.Download(ctx, asset, io.MultiWriter(file, hasher))
	closeErr := file.Close()
	if err = errors.Join(downloadErr, closeErr); err != nil {
		_ = os.Remove(archive)
		return "", fmt.Errorf("failed to download %s: %w", asset.Name, err)
	}

	actual := hex.EncodeToString(hasher.Sum(nil))
	if actual != expected {
		_ = os.Remove(archive)
		return "", fmt.Errorf("%w: %s: expected %s, got %s", entities.ErrChecksumMismatch, asset.Name, expected, actual)
	}
	logger.Debugf("Verified %s (sha256 %s)", asset.Name, actual)
	return archive, nil
}

// smokeTest runs `<binary> --version` and expects the output to mention version.
func (it *InstallCommand) smokeTest(ctx context.Context, binary, version string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultSmokeTestTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := it.binaries.Run(runCtx, binary, "--version")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSmokeTestFailed, err)
	}
	if !strings.Contains(output, version) {
		return fmt.Errorf("%w: %q does not mention %s", ErrSmokeTestFailed, strings.TrimSpace(output), version)
	}
	logger.Debugf("Smoke test passed: %s", strings.TrimSpace(output))
	return nil
}
