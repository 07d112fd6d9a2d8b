//go:build unit

package binary_test

import (
	"archive/tar"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/infrastructure/repositories/binary"
)

// writeArchive builds a tar.gz holding files and returns its path.
func writeArchive(t *testing.T, files map[string]string) string {
	t.Helper()
	archivePath := filepath.Join(t.TempDir(), "release.tar.gz")
	file, err := os.Create(archivePath)
	require.NoError(t, err)
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	tarWriter := tar.NewWriter(gzWriter)
	for name, content := range files {
		require.NoError(t, tarWriter.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o644,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}))
		_, err = tarWriter.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tarWriter.Close())
	require.NoError(t, gzWriter.Close())
	return archivePath
}

func TestLocalBinaryRepository_Install(t *testing.T) {
	t.Parallel()

	t.Run("should extract the member as an executable", func(t *testing.T) {
		t.Parallel()

		// given
		archive := writeArchive(t, map[string]string{
			"README.md":               "docs",
			"hotaisle_1.2.3/hotaisle": "#!/bin/sh\necho hotaisle 1.2.3\n",
		})
		destination := filepath.Join(t.TempDir(), "bin", "hotaisle")
		repository := binary.NewLocalBinaryRepository()

		// when
		err := repository.Install(context.Background(), archive, "hotaisle", destination)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(destination)
		require.NoError(t, readErr)
		assert.Equal(t, "#!/bin/sh\necho hotaisle 1.2.3\n", string(content))
		info, statErr := os.Stat(destination)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("should replace an existing binary", func(t *testing.T) {
		t.Parallel()

		// given
		archive := writeArchive(t, map[string]string{"hotaisle": "new"})
		destination := filepath.Join(t.TempDir(), "hotaisle")
		require.NoError(t, os.WriteFile(destination, []byte("old"), 0o755))
		repository := binary.NewLocalBinaryRepository()

		// when
		err := repository.Install(context.Background(), archive, "hotaisle", destination)

		// then
		require.NoError(t, err)
		content, _ := os.ReadFile(destination)
		assert.Equal(t, "new", string(content))
	})

	t.Run("should fail when the member is missing", func(t *testing.T) {
		t.Parallel()

		// given
		archive := writeArchive(t, map[string]string{"other": "x"})
		destination := filepath.Join(t.TempDir(), "hotaisle")
		repository := binary.NewLocalBinaryRepository()

		// when
		err := repository.Install(context.Background(), archive, "hotaisle", destination)

		// then
		require.ErrorIs(t, err, entities.ErrAssetNotFound)
		assert.NoFileExists(t, destination)
	})

	t.Run("should fail on a file that is not gzip", func(t *testing.T) {
		t.Parallel()

		// given
		archive := filepath.Join(t.TempDir(), "broken.tar.gz")
		require.NoError(t, os.WriteFile(archive, []byte("not an archive"), 0o600))
		repository := binary.NewLocalBinaryRepository()

		// when
		err := repository.Install(context.Background(), archive, "hotaisle", filepath.Join(t.TempDir(), "hotaisle"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gzip")
	})
}

func TestLocalBinaryRepository_Run(t *testing.T) {
	// not parallel: executing a freshly written file races with concurrent forks
	t.Run("should return the combined output", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("requires a POSIX shell")
		}

		// given
		script := filepath.Join(t.TempDir(), "hotaisle")
		require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"hotaisle $1\"\n"), 0o755))
		repository := binary.NewLocalBinaryRepository()

		// when
		output, err := repository.Run(context.Background(), script, "--version")

		// then
		require.NoError(t, err)
		assert.Equal(t, "hotaisle --version\n", output)
	})

	t.Run("should fail for a missing executable", func(t *testing.T) {

		// given
		repository := binary.NewLocalBinaryRepository()

		// when
		_, err := repository.Run(context.Background(), filepath.Join(t.TempDir(), "missing"))

		// then
		require.Error(t, err)
	})
}
