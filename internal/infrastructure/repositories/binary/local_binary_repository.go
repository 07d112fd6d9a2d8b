package binary

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/klauspost/compress/gzip"
	logger "github.com/sirupsen/logrus"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

const (
	executableMode = 0o755
	binDirMode     = 0o755
)

// LocalBinaryRepository implements repositories.BinaryRepository on the local filesystem.
type LocalBinaryRepository struct{}

// NewLocalBinaryRepository creates a LocalBinaryRepository.
func NewLocalBinaryRepository() repositories.BinaryRepository {
	return &LocalBinaryRepository{}
}

// Install extracts member from a tar.gz archive and atomically replaces destination with it.
func (r *LocalBinaryRepository) Install(ctx context.Context, archivePath, member, destination string) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		header, nextErr := tarReader.Next()
		if errors.Is(nextErr, io.EOF) {
			return fmt.Errorf("%w: %s not found in %s", entities.ErrAssetNotFound, member, filepath.Base(archivePath))
		}
		if nextErr != nil {
			return fmt.Errorf("failed to read tar entry: %w", nextErr)
		}

		if header.Typeflag != tar.TypeReg || path.Base(header.Name) != member {
			continue
		}

		logger.Debugf("Extracting %s (%d bytes) to %s", header.Name, header.Size, destination)
		return writeExecutable(destination, io.LimitReader(tarReader, header.Size))
	}
}

func writeExecutable(destination string, content io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(destination), binDirMode); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(destination), err)
	}

	pendingFile, err := renameio.NewPendingFile(destination, renameio.WithPermissions(executableMode))
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", destination, err)
	}
	defer func() {
		if cleanupErr := pendingFile.Cleanup(); cleanupErr != nil {
			logger.Debugf("cleanup pending file: %v", cleanupErr)
		}
	}()

	if _, err = io.Copy(pendingFile, content); err != nil {
		return fmt.Errorf("write %s: %w", destination, err)
	}

	if err = pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", destination, err)
	}
	return nil
}

// Run executes executable with args and returns its combined output.
func (r *LocalBinaryRepository) Run(ctx context.Context, executable string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, executable, args...).CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("failed to run %s: %w", executable, err)
	}
	return string(output), nil
}
