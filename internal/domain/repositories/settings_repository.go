package repositories

import (
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// SettingsRepository persists the CLI settings.
type SettingsRepository interface {
	// Load reads the settings at path. An empty path searches the default
	// locations; when nothing is found the defaults are written and returned.
	Load(path string) (*entities.Settings, error)

	// Save writes settings back to the file they were loaded from.
	Save(settings *entities.Settings) error
}
