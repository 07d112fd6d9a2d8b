//go:build unit

package entities_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

func darwinChecksums(version string) entities.Checksums {
	return entities.Checksums{
		entities.Platform{OS: entities.OSDarwin, Arch: entities.ArchARM64}.AssetName(version): digestA,
		entities.Platform{OS: entities.OSDarwin, Arch: entities.ArchAMD64}.AssetName(version): digestB,
	}
}

func TestNewFormula(t *testing.T) {
	t.Parallel()

	t.Run("should render both architectures, the rename and the version assertion", func(t *testing.T) {
		t.Parallel()

		// given
		formula, err := entities.NewFormula(entities.DefaultRepository, "v1.2.3", darwinChecksums("1.2.3"))
		require.NoError(t, err)
		var output bytes.Buffer

		// when
		err = formula.Render(&output)

		// then
		require.NoError(t, err)
		rendered := output.String()
		assert.Contains(t, rendered, "class HotaisleCli < Formula")
		assert.Contains(t, rendered, `version "1.2.3"`)
		assert.Contains(t, rendered,
			`url "https://github.com/hotaisle/hotaisle-cli/releases/download/v1.2.3/hotaisle-cli-1.2.3-darwin-arm64.tar.gz"`)
		assert.Contains(t, rendered,
			`url "https://github.com/hotaisle/hotaisle-cli/releases/download/v1.2.3/hotaisle-cli-1.2.3-darwin-amd64.tar.gz"`)
		assert.Contains(t, rendered, `sha256 "`+digestA+`"`)
		assert.Contains(t, rendered, `sha256 "`+digestB+`"`)
		assert.Contains(t, rendered, `bin.install "hotaisle-cli-darwin-arm64" => "hotaisle"`)
		assert.Contains(t, rendered, `bin.install "hotaisle-cli-darwin-amd64" => "hotaisle"`)
		assert.Contains(t, rendered, `assert_match version.to_s, shell_output("#{bin}/hotaisle --version")`)
		assert.Less(t, strings.Index(rendered, digestA), strings.Index(rendered, "else"),
			"the arm64 checksum belongs to the Hardware::CPU.arm? branch")
	})

	t.Run("should fail when a macOS checksum is missing", func(t *testing.T) {
		t.Parallel()

		// given
		checksums := darwinChecksums("1.2.3")
		delete(checksums, "hotaisle-cli-1.2.3-darwin-amd64.tar.gz")

		// when
		_, err := entities.NewFormula(entities.DefaultRepository, "1.2.3", checksums)

		// then
		require.ErrorIs(t, err, entities.ErrAssetNotFound)
	})

	t.Run("should reject invalid versions and checksums", func(t *testing.T) {
		t.Parallel()

		// given
		checksums := darwinChecksums("1.2.3")
		checksums["hotaisle-cli-1.2.3-darwin-arm64.tar.gz"] = "deadbeef"

		// when
		_, versionErr := entities.NewFormula(entities.DefaultRepository, "latest", darwinChecksums("latest"))
		_, checksumErr := entities.NewFormula(entities.DefaultRepository, "1.2.3", checksums)

		// then
		require.ErrorIs(t, versionErr, entities.ErrInvalidVersion)
		require.ErrorIs(t, checksumErr, entities.ErrInvalidChecksum)
	})

	t.Run("should point at another repository when asked", func(t *testing.T) {
		t.Parallel()

		// given
		repository := entities.RepositoryRef{Owner: "acme", Name: "hotaisle-cli"}
		formula, err := entities.NewFormula(repository, "1.2.3", darwinChecksums("1.2.3"))
		require.NoError(t, err)

		// when / then
		assert.Equal(t, "https://github.com/acme/hotaisle-cli", formula.Homepage)
		assert.True(t, strings.HasPrefix(formula.ARM64.URL, "https://github.com/acme/hotaisle-cli/releases/download/"))
	})
}

func TestSubstitutePlaceholders(t *testing.T) {
	t.Parallel()

	t.Run("should leave no placeholder behind", func(t *testing.T) {
		t.Parallel()

		// given
		template := `version "VERSION"
url ".../vVERSION/hotaisle-cli-VERSION-darwin-arm64.tar.gz"
sha256 "ARM64_SHA256"
sha256 "AMD64_SHA256"
`

		// when
		rendered, err := entities.SubstitutePlaceholders(template, "v1.2.3", strings.ToUpper(digestA), digestB)

		// then
		require.NoError(t, err)
		for _, placeholder := range []string{
			entities.PlaceholderVersion, entities.PlaceholderARM64SHA256, entities.PlaceholderAMD64SHA256,
		} {
			assert.NotContains(t, rendered, placeholder)
		}
		assert.Contains(t, rendered, `version "1.2.3"`)
		assert.Contains(t, rendered, "/v1.2.3/hotaisle-cli-1.2.3-darwin-arm64.tar.gz")
		assert.Contains(t, rendered, `sha256 "`+digestA+`"`)
		assert.Contains(t, rendered, `sha256 "`+digestB+`"`)
	})

	t.Run("should render the shipped template without touching its comments", func(t *testing.T) {
		t.Parallel()

		// given
		data, err := os.ReadFile(filepath.Join("..", "..", "..", "package", "brew-formula.rb"))
		require.NoError(t, err)

		// when
		rendered, err := entities.SubstitutePlaceholders(string(data), "1.2.3", digestA, digestB)

		// then
		require.NoError(t, err)
		lines := strings.Split(rendered, "\n")
		assert.Equal(t, "# The version and both macOS digests are substituted at release time.", lines[1])
		for _, line := range lines {
			if strings.HasPrefix(strings.TrimSpace(line), "#") {
				assert.NotContains(t, line, digestA)
				assert.NotContains(t, line, digestB)
			}
		}
		assert.Contains(t, rendered, `version "1.2.3"`)
		assert.Contains(t, rendered,
			"/releases/download/v1.2.3/hotaisle-cli-1.2.3-darwin-arm64.tar.gz")
		assert.Contains(t, rendered, `sha256 "`+digestA+`"`)
		assert.Contains(t, rendered, `sha256 "`+digestB+`"`)
	})

	t.Run("should validate its inputs", func(t *testing.T) {
		t.Parallel()

		// when
		_, versionErr := entities.SubstitutePlaceholders("VERSION", "next", digestA, digestB)
		_, checksumErr := entities.SubstitutePlaceholders("VERSION", "1.0.0", digestA, "")

		// then
		require.ErrorIs(t, versionErr, entities.ErrInvalidVersion)
		require.ErrorIs(t, checksumErr, entities.ErrInvalidChecksum)
	})
}
