//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/test/domain/entitybuilders"
	doubles "github.com/hotaisle/hotaisle-cli/test/infrastructure/repositorydoubles"
)

const (
	testARM64Digest = "1111111111111111111111111111111111111111111111111111111111111111"
	testAMD64Digest = "2222222222222222222222222222222222222222222222222222222222222222"
)

func darwinAssets(version string) (string, string) {
	return entities.Platform{OS: entities.OSDarwin, Arch: entities.ArchARM64}.AssetName(version),
		entities.Platform{OS: entities.OSDarwin, Arch: entities.ArchAMD64}.AssetName(version)
}

func TestFormulaCommandRender(t *testing.T) {
	t.Parallel()

	t.Run("should render the built-in formula from the given checksums", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewFormulaCommand(&doubles.SpyReleaseRepository{})
		var output bytes.Buffer

		// when
		err := cmd.Render(commands.FormulaRenderOptions{
			Version:     "v1.2.3",
			ARM64SHA256: testARM64Digest,
			AMD64SHA256: testAMD64Digest,
			Repository:  entities.DefaultRepository,
		}, &output)

		// then
		require.NoError(t, err)
		assert.Contains(t, output.String(), `version "1.2.3"`)
		assert.Contains(t, output.String(), testARM64Digest)
		assert.Contains(t, output.String(), testAMD64Digest)
	})

	t.Run("should substitute the placeholders of a template", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewFormulaCommand(&doubles.SpyReleaseRepository{})
		var output bytes.Buffer

		// when
		err := cmd.Render(commands.FormulaRenderOptions{
			Version:     "1.2.3",
			ARM64SHA256: testARM64Digest,
			AMD64SHA256: testAMD64Digest,
			Template:    "VERSION ARM64_SHA256 AMD64_SHA256",
		}, &output)

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.2.3 "+testARM64Digest+" "+testAMD64Digest, output.String())
	})

	t.Run("should reject an invalid checksum", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewFormulaCommand(&doubles.SpyReleaseRepository{})
		var output bytes.Buffer

		// when
		err := cmd.Render(commands.FormulaRenderOptions{
			Version:     "1.2.3",
			ARM64SHA256: "abc",
			AMD64SHA256: testAMD64Digest,
			Repository:  entities.DefaultRepository,
		}, &output)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidChecksum)
		assert.Empty(t, output.String())
	})
}

func TestFormulaCommandGenerate(t *testing.T) {
	t.Parallel()

	arm64Body, amd64Body := []byte("arm64 tarball"), []byte("amd64 tarball")

	t.Run("should hash both macOS tarballs and render the formula", func(t *testing.T) {
		t.Parallel()

		// given
		arm64Name, amd64Name := darwinAssets("2.0.0")
		releases := &doubles.SpyReleaseRepository{
			Release:  entitybuilders.NewReleaseBuilder().WithTag("v2.0.0").BuildRelease(),
			Contents: map[string][]byte{arm64Name: arm64Body, amd64Name: amd64Body},
		}
		cmd := commands.NewFormulaCommand(releases)
		var output bytes.Buffer

		// when
		err := cmd.Generate(context.Background(), commands.FormulaGenerateOptions{
			Tag:        "v2.0.0",
			Repository: entities.DefaultRepository,
		}, &output)

		// then
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{arm64Name, amd64Name}, releases.Downloaded)
		assert.Contains(t, output.String(), `sha256 "`+sha256Hex(arm64Body)+`"`)
		assert.Contains(t, output.String(), `sha256 "`+sha256Hex(amd64Body)+`"`)
		assert.Contains(t, output.String(), `version "2.0.0"`)
	})

	t.Run("should cross-check the published checksums", func(t *testing.T) {
		t.Parallel()

		// given
		arm64Name, amd64Name := darwinAssets("2.0.0")
		manifest := sha256Hex([]byte("tampered")) + "  " + arm64Name + "\n" + sha256Hex(amd64Body) + "  " + amd64Name + "\n"
		releases := &doubles.SpyReleaseRepository{
			Release: entitybuilders.NewReleaseBuilder().WithTag("v2.0.0").WithChecksums().BuildRelease(),
			Contents: map[string][]byte{
				arm64Name:                   arm64Body,
				amd64Name:                   amd64Body,
				entities.ChecksumsAssetName: []byte(manifest),
			},
		}
		cmd := commands.NewFormulaCommand(releases)
		var output bytes.Buffer

		// when
		err := cmd.Generate(context.Background(), commands.FormulaGenerateOptions{
			Repository: entities.DefaultRepository,
		}, &output)

		// then
		require.ErrorIs(t, err, entities.ErrChecksumMismatch)
		assert.Empty(t, output.String())
	})

	t.Run("should fail when one download fails", func(t *testing.T) {
		t.Parallel()

		// given
		arm64Name, amd64Name := darwinAssets("2.0.0")
		downloadErr := errors.New("connection reset")
		releases := &doubles.SpyReleaseRepository{
			Release:     entitybuilders.NewReleaseBuilder().WithTag("v2.0.0").BuildRelease(),
			Contents:    map[string][]byte{arm64Name: arm64Body},
			DownloadErr: map[string]error{amd64Name: downloadErr},
		}
		cmd := commands.NewFormulaCommand(releases)
		var output bytes.Buffer

		// when
		err := cmd.Generate(context.Background(), commands.FormulaGenerateOptions{
			Repository: entities.DefaultRepository,
		}, &output)

		// then
		require.ErrorIs(t, err, downloadErr)
		assert.Empty(t, output.String())
	})

	t.Run("should fail when a macOS tarball is not attached", func(t *testing.T) {
		t.Parallel()

		// given
		releases := &doubles.SpyReleaseRepository{
			Release: entitybuilders.NewReleaseBuilder().
				WithPlatforms(entities.Platform{OS: entities.OSLinux, Arch: entities.ArchAMD64}).
				BuildRelease(),
		}
		cmd := commands.NewFormulaCommand(releases)

		// when
		err := cmd.Generate(context.Background(), commands.FormulaGenerateOptions{
			Repository: entities.DefaultRepository,
		}, &bytes.Buffer{})

		// then
		require.ErrorIs(t, err, entities.ErrAssetNotFound)
		assert.Zero(t, releases.DownloadCount())
	})
}
