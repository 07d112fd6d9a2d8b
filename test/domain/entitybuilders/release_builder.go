//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// ReleaseBuilder helps create test releases with a fluent interface.
type ReleaseBuilder struct {
	*testkit.BaseBuilder
	tag        string
	repository entities.RepositoryRef
	platforms  []entities.Platform
	checksums  bool
	extra      []entities.ReleaseAsset
}

// NewReleaseBuilder creates a new release builder with sensible defaults:
// tag v1.2.3 carrying a tarball for every supported platform and no checksums.txt.
func NewReleaseBuilder() *ReleaseBuilder {
	return &ReleaseBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		tag:         "v1.2.3",
		repository:  entities.DefaultRepository,
		platforms:   append([]entities.Platform(nil), entities.SupportedPlatforms...),
	}
}

// WithTag sets the release tag.
func (b *ReleaseBuilder) WithTag(tag string) *ReleaseBuilder {
	b.tag = tag
	return b
}

// WithPlatforms replaces the platforms a tarball is attached for.
func (b *ReleaseBuilder) WithPlatforms(platforms ...entities.Platform) *ReleaseBuilder {
	b.platforms = platforms
	return b
}

// WithChecksums attaches a checksums.txt asset.
func (b *ReleaseBuilder) WithChecksums() *ReleaseBuilder {
	b.checksums = true
	return b
}

// WithAsset attaches an arbitrary asset.
func (b *ReleaseBuilder) WithAsset(name string, size int64) *ReleaseBuilder {
	b.extra = append(b.extra, entities.ReleaseAsset{
		Name: name,
		URL:  b.repository.DownloadURL(b.tag, name),
		Size: size,
	})
	return b
}

// Build creates the release (satisfies testkit.Builder interface).
func (b *ReleaseBuilder) Build() interface{} {
	return b.BuildRelease()
}

// BuildRelease creates the release with a concrete return type.
func (b *ReleaseBuilder) BuildRelease() *entities.Release {
	release := &entities.Release{Tag: b.tag}
	for _, platform := range b.platforms {
		name := platform.AssetName(release.Version())
		release.Assets = append(release.Assets, entities.ReleaseAsset{
			Name: name,
			URL:  b.repository.DownloadURL(b.tag, name),
		})
	}
	if b.checksums {
		release.Assets = append(release.Assets, entities.ReleaseAsset{
			Name: entities.ChecksumsAssetName,
			URL:  b.repository.DownloadURL(b.tag, entities.ChecksumsAssetName),
		})
	}
	release.Assets = append(release.Assets, b.extra...)
	return release
}

// Reset clears the builder state, allowing it to be reused.
func (b *ReleaseBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.tag = "v1.2.3"
	b.repository = entities.DefaultRepository
	b.platforms = append([]entities.Platform(nil), entities.SupportedPlatforms...)
	b.checksums = false
	b.extra = nil
	return b
}

// Clone creates a deep copy of the ReleaseBuilder.
func (b *ReleaseBuilder) Clone() testkit.Builder {
	return &ReleaseBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		tag:         b.tag,
		repository:  b.repository,
		platforms:   append([]entities.Platform(nil), b.platforms...),
		checksums:   b.checksums,
		extra:       append([]entities.ReleaseAsset(nil), b.extra...),
	}
}
