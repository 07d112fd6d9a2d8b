//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// SpyReleaseRepository implements repositories.ReleaseRepository as a configurable spy.
// Downloads may run concurrently, so call tracking is guarded by a mutex.
type SpyReleaseRepository struct {
	// --- GetRelease ---
	Release       *entities.Release
	GetReleaseErr error
	RequestedTags []string
	Repositories  []entities.RepositoryRef

	// --- Download ---
	Contents    map[string][]byte // asset name -> body
	DownloadErr map[string]error  // asset name -> failure
	Downloaded  []string

	mutex sync.Mutex
}

var _ repositories.ReleaseRepository = (*SpyReleaseRepository)(nil)

func (s *SpyReleaseRepository) GetRelease(
	_ context.Context, repository entities.RepositoryRef, tag string,
) (*entities.Release, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.RequestedTags = append(s.RequestedTags, tag)
	s.Repositories = append(s.Repositories, repository)
	return s.Release, s.GetReleaseErr
}

func (s *SpyReleaseRepository) Download(ctx context.Context, asset entities.ReleaseAsset, writer io.Writer) error {
	s.mutex.Lock()
	s.Downloaded = append(s.Downloaded, asset.Name)
	err := s.DownloadErr[asset.Name]
	content, ok := s.Contents[asset.Name]
	s.mutex.Unlock()

	if err != nil {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if !ok {
		return fmt.Errorf("no content for %s", asset.Name)
	}
	_, err = writer.Write(content)
	return err
}

// DownloadCount returns how many downloads were requested.
func (s *SpyReleaseRepository) DownloadCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.Downloaded)
}
