package entities

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ChecksumsAssetName is the sha256sum-formatted manifest attached to releases.
const ChecksumsAssetName = "checksums.txt"

var (
	// ErrAssetNotFound is returned when a release lacks an expected artifact.
	ErrAssetNotFound = errors.New("release asset not found")
	// ErrInvalidChecksum is returned for anything that is not a hex-encoded SHA-256.
	ErrInvalidChecksum = errors.New("invalid sha256 checksum")
	// ErrChecksumMismatch is returned when a download does not hash to the expected digest.
	ErrChecksumMismatch = errors.New("sha256 checksum mismatch")
	// ErrChecksumUnavailable is returned when no expected digest is known for an artifact.
	ErrChecksumUnavailable = errors.New("no checksum available")
)

// Release is a published version of the CLI.
type Release struct {
	Tag    string
	Assets []ReleaseAsset
}

// ReleaseAsset is a downloadable artifact of a release.
type ReleaseAsset struct {
	Name string
	URL  string
	Size int64
}

// Version is the tag without its 'v' prefix.
func (it Release) Version() string {
	return TrimVersionPrefix(it.Tag)
}

// Asset finds an artifact by file name.
func (it Release) Asset(name string) (ReleaseAsset, error) {
	for _, asset := range it.Assets {
		if asset.Name == name {
			return asset, nil
		}
	}
	return ReleaseAsset{}, fmt.Errorf("%w: %s in release %s", ErrAssetNotFound, name, it.Tag)
}

// PlatformAsset finds the tarball built for platform.
func (it Release) PlatformAsset(platform Platform) (ReleaseAsset, error) {
	return it.Asset(platform.AssetName(it.Version()))
}

// Checksums maps artifact file names to lowercase hex SHA-256 digests.
type Checksums map[string]string

// ParseChecksums reads sha256sum output ("<hex>  <name>" or "<hex> *<name>").
// Blank lines are ignored; any malformed line is an error.
func ParseChecksums(reader io.Reader) (Checksums, error) {
	checksums := Checksums{}
	scanner := bufio.NewScanner(reader)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 { //nolint:mnd // digest and file name
			return nil, fmt.Errorf("checksums line %d: expected '<sha256>  <file>', got %q", line, text)
		}
		digest := strings.ToLower(fields[0])
		if err := ValidateChecksum(digest); err != nil {
			return nil, fmt.Errorf("checksums line %d: %w", line, err)
		}
		checksums[strings.TrimPrefix(fields[1], "*")] = digest
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checksums: %w", err)
	}
	return checksums, nil
}

// Lookup returns the digest recorded for name.
func (it Checksums) Lookup(name string) (string, error) {
	digest, ok := it[name]
	if !ok {
		return "", fmt.Errorf("%w: no checksum recorded for %s", ErrAssetNotFound, name)
	}
	return digest, nil
}

// ValidateChecksum accepts exactly 64 hex characters.
func ValidateChecksum(digest string) error {
	decoded, err := hex.DecodeString(digest)
	if err != nil || len(decoded) != 32 { //nolint:mnd // sha256 size
		return fmt.Errorf("%w: %q", ErrInvalidChecksum, digest)
	}
	return nil
}
