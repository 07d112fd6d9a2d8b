package repositories

import (
	"context"
	"io"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// ReleaseRepository abstracts the place CLI releases are published.
type ReleaseRepository interface {
	// GetRelease returns the release tagged tag, or the latest release when tag is empty.
	GetRelease(ctx context.Context, repository entities.RepositoryRef, tag string) (*entities.Release, error)

	// Download streams the body of asset into writer.
	Download(ctx context.Context, asset entities.ReleaseAsset, writer io.Writer) error
}
