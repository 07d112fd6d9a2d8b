package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

const (
	// Directory holds the settings, relative to the home directory.
	Directory = ".hotaisle"
	// File is the name settings are saved under.
	File = "config.yaml"
	// EnvConfigFile overrides the settings location.
	EnvConfigFile = "HOTAISLE_CONFIG_FILE"

	legacyFile = "config.json"
	dirMode    = 0o700
	fileMode   = 0o600
)

// Pretty is the default location as shown in help texts.
const Pretty = "~/" + Directory + "/" + File

// searchPatterns are tried in order inside Directory. The legacy JSON file
// parses unchanged since JSON is valid YAML.
//
//nolint:gochecknoglobals // read-only list
var searchPatterns = []string{File, "config.yml", legacyFile}

// FileSettingsRepository implements repositories.SettingsRepository on a YAML file.
type FileSettingsRepository struct {
	homeDir func() (string, error)
}

// NewFileSettingsRepository stores settings under the user's home directory.
func NewFileSettingsRepository() *FileSettingsRepository {
	return &FileSettingsRepository{homeDir: os.UserHomeDir}
}

// Load reads and parses the settings file. An empty path falls back to
// $HOTAISLE_CONFIG_FILE and then to the default locations, where a missing
// file is created with the defaults on first use.
func (r *FileSettingsRepository) Load(path string) (*entities.Settings, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path == "" {
		found, exists, err := r.FindSettingsFile()
		if err != nil {
			return nil, err
		}
		if !exists {
			settings := entities.NewSettings()
			settings.Path = found
			if saveErr := r.Save(settings); saveErr != nil {
				return nil, saveErr
			}
			logger.Infof("Created default settings at %s", found)
			return settings, nil
		}
		path = found
	}

	path, err := r.expandHome(path)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Loading settings from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	settings := entities.NewSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file %q: %w", path, unmarshalErr)
	}
	settings.Path = path

	if _, levelErr := settings.Level(); levelErr != nil {
		logger.Warnf("%v, falling back to %s", levelErr, entities.DefaultLogLevel)
	}
	return settings, nil
}

// Save writes the settings back to the file they came from. Settings loaded
// from the legacy JSON file are migrated to a YAML file next to it.
func (r *FileSettingsRepository) Save(settings *entities.Settings) error {
	if settings == nil {
		return errors.New("nil settings")
	}

	path := settings.Path
	if path == "" {
		defaultPath, err := r.DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	if filepath.Ext(path) == ".json" {
		migrated := filepath.Join(filepath.Dir(path), File)
		logger.Infof("Migrating settings from %s to %s", path, migrated)
		path = migrated
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err = renameio.WriteFile(path, data, fileMode); err != nil {
		return fmt.Errorf("failed to write settings file %q: %w", path, err)
	}

	settings.Path = path
	return nil
}

// DefaultPath is ~/.hotaisle/config.yaml.
func (r *FileSettingsRepository) DefaultPath() (string, error) {
	home, err := r.homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, Directory, File), nil
}

// FindSettingsFile returns the first settings file found in the default
// locations. When none exists it returns the default path and false.
func (r *FileSettingsRepository) FindSettingsFile() (string, bool, error) {
	home, err := r.homeDir()
	if err != nil {
		return "", false, fmt.Errorf("failed to locate home directory: %w", err)
	}

	for _, pattern := range searchPatterns {
		p := filepath.Join(home, Directory, pattern)
		if _, statErr := os.Stat(p); statErr == nil {
			return p, true, nil
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return "", false, fmt.Errorf("failed to inspect %q: %w", p, statErr)
		}
	}

	return filepath.Join(home, Directory, File), false, nil
}

func (r *FileSettingsRepository) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := r.homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
