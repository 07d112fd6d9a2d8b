package commands

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// Config is the interface for reading and writing persisted settings.
type Config interface {
	Get(settings *entities.Settings, key string) (string, error)
	Set(settings *entities.Settings, key, value string) error
}

// ConfigCommand reads and writes single settings keys.
type ConfigCommand struct {
	repository repositories.SettingsRepository
}

// NewConfigCommand creates a new ConfigCommand.
func NewConfigCommand(repository repositories.SettingsRepository) *ConfigCommand {
	return &ConfigCommand{repository: repository}
}

// Get returns the raw value stored under key.
func (it *ConfigCommand) Get(settings *entities.Settings, key string) (string, error) {
	return settings.Get(key)
}

// Set stores value under key and saves the settings file. An empty value is a no-op.
func (it *ConfigCommand) Set(settings *entities.Settings, key, value string) error {
	if value == "" {
		logger.Debugf("Empty value for %q, leaving settings untouched", key)
		return nil
	}

	if err := settings.Set(key, value); err != nil {
		return err
	}
	if err := it.repository.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logger.Infof("Saved %s to %s", key, settings.Path)
	return nil
}
