package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	gh "github.com/google/go-github/v66/github"
	"github.com/schollz/progressbar/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

const (
	progressWidth    = 40
	progressThrottle = 100 * time.Millisecond
)

// GitHubReleaseRepository implements repositories.ReleaseRepository for GitHub releases.
type GitHubReleaseRepository struct {
	client     *gh.Client
	httpClient *http.Client
	progress   io.Writer
}

// NewGitHubReleaseRepository creates a release repository. The token is optional and
// only raises the API rate limit; progress receives download progress bars (nil disables them).
func NewGitHubReleaseRepository(token string, progress io.Writer) repositories.ReleaseRepository {
	return NewGitHubReleaseRepositoryWithClient(newClient(nil, token), http.DefaultClient, progress)
}

// NewGitHubReleaseRepositoryWithClient uses preconfigured clients, e.g. pointed at a test server.
func NewGitHubReleaseRepositoryWithClient(
	client *gh.Client,
	httpClient *http.Client,
	progress io.Writer,
) *GitHubReleaseRepository {
	return &GitHubReleaseRepository{
		client:     client,
		httpClient: httpClient,
		progress:   progress,
	}
}

func newClient(httpClient *http.Client, token string) *gh.Client {
	client := gh.NewClient(httpClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return client
}

// GetRelease fetches the release tagged tag, or the latest published release for an empty tag.
func (r *GitHubReleaseRepository) GetRelease(
	ctx context.Context,
	repository entities.RepositoryRef,
	tag string,
) (*entities.Release, error) {
	var (
		release *gh.RepositoryRelease
		err     error
	)
	if tag == "" {
		release, _, err = r.client.Repositories.GetLatestRelease(ctx, repository.Owner, repository.Name)
	} else {
		release, _, err = r.client.Repositories.GetReleaseByTag(ctx, repository.Owner, repository.Name, tag)
	}
	if err != nil {
		if tag == "" {
			return nil, fmt.Errorf("failed to get latest release of %s: %w", repository, err)
		}
		return nil, fmt.Errorf("failed to get release %q of %s: %w", tag, repository, err)
	}

	result := &entities.Release{
		Tag:    release.GetTagName(),
		Assets: make([]entities.ReleaseAsset, 0, len(release.Assets)),
	}
	for _, asset := range release.Assets {
		result.Assets = append(result.Assets, entities.ReleaseAsset{
			Name: asset.GetName(),
			URL:  asset.GetBrowserDownloadURL(),
			Size: int64(asset.GetSize()),
		})
	}

	logger.Debugf("Release %s of %s has %d assets", result.Tag, repository, len(result.Assets))
	return result, nil
}

// Download streams the asset body into writer, drawing a progress bar when enabled.
func (r *GitHubReleaseRepository) Download(
	ctx context.Context,
	asset entities.ReleaseAsset,
	writer io.Writer,
) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", asset.Name, err)
	}
	req.Header.Set("Accept", "application/octet-stream")

	logger.Debugf("Downloading %s", asset.URL)
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", asset.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: bad status %s", asset.Name, resp.Status)
	}

	size := asset.Size
	if size <= 0 {
		size = resp.ContentLength
	}
	if r.progress != nil && size > 0 {
		bar := progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionSetDescription(asset.Name),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(progressWidth),
			progressbar.OptionThrottle(progressThrottle),
		)
		defer func() { _ = bar.Finish() }()
		writer = io.MultiWriter(writer, bar)
	}

	if _, err = io.Copy(writer, resp.Body); err != nil {
		return fmt.Errorf("failed to download %s: %w", asset.Name, err)
	}
	return nil
}
