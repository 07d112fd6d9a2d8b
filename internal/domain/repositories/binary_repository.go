package repositories

import (
	"context"
)

// BinaryRepository places executables on disk and runs them.
type BinaryRepository interface {
	// Install extracts member from the tar.gz archive at archivePath and
	// atomically writes it to destination as an executable.
	Install(ctx context.Context, archivePath, member, destination string) error

	// Run executes path with args and returns its combined output.
	Run(ctx context.Context, path string, args ...string) (string, error)
}
