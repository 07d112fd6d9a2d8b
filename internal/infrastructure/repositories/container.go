package repositories

import (
	"io"
	"os"

	"go.uber.org/dig"
	"golang.org/x/term"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	domainRepos "github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
	binRepo "github.com/hotaisle/hotaisle-cli/internal/infrastructure/repositories/binary"
	ghRepo "github.com/hotaisle/hotaisle-cli/internal/infrastructure/repositories/github"
	haRepo "github.com/hotaisle/hotaisle-cli/internal/infrastructure/repositories/hotaisle"
	settingsRepo "github.com/hotaisle/hotaisle-cli/internal/infrastructure/repositories/settings"
)

// EnvGitHubToken optionally authenticates release lookups.
const EnvGitHubToken = "GITHUB_TOKEN"

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.SettingsRepository {
		return settingsRepo.NewFileSettingsRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func(buildInfo *entities.BuildInfo) domainRepos.APIRepositoryFactory {
		return haRepo.NewRepositoryFactory(buildInfo)
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.ReleaseRepository {
		return ghRepo.NewGitHubReleaseRepository(os.Getenv(EnvGitHubToken), progressWriter(os.Stderr, term.IsTerminal))
	}); err != nil {
		return err
	}

	return container.Provide(binRepo.NewLocalBinaryRepository)
}

// progressWriter returns file when it is a terminal, nil otherwise, so piped
// or CI output carries no progress bars.
func progressWriter(file *os.File, isTerminal func(fd int) bool) io.Writer {
	if file == nil || !isTerminal(int(file.Fd())) {
		return nil
	}
	return file
}
