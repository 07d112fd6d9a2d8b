//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// StubSettingsRepository is a stub implementation of repositories.SettingsRepository.
type StubSettingsRepository struct {
	// --- Load ---
	Settings    *entities.Settings
	LoadErr     error
	LoadedPaths []string

	// --- Save ---
	SaveErr error
	Saved   []entities.Settings // copies taken at save time
}

var _ repositories.SettingsRepository = (*StubSettingsRepository)(nil)

func (s *StubSettingsRepository) Load(path string) (*entities.Settings, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Settings == nil {
		s.Settings = entities.NewSettings()
	}
	return s.Settings, nil
}

func (s *StubSettingsRepository) Save(settings *entities.Settings) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saved = append(s.Saved, *settings)
	return nil
}
