//go:build unit

package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/infrastructure/repositories/settings"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel
func TestFileSettingsRepositoryLoad(t *testing.T) {
	t.Run("should create the default settings on first run", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv(settings.EnvConfigFile, "")
		home := t.TempDir()
		repository := settings.NewFileSettingsRepositoryIn(home)

		// when
		loaded, err := repository.Load("")

		// then
		require.NoError(t, err)
		expectedPath := filepath.Join(home, ".hotaisle", "config.yaml")
		assert.Equal(t, expectedPath, loaded.Path)
		assert.Equal(t, entities.DefaultLogLevel, loaded.LogLevel)

		info, statErr := os.Stat(expectedPath)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		dirInfo, dirErr := os.Stat(filepath.Dir(expectedPath))
		require.NoError(t, dirErr)
		assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
	})

	t.Run("should read the legacy JSON settings", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv(settings.EnvConfigFile, "")
		home := t.TempDir()
		writeFile(t, filepath.Join(home, ".hotaisle", "config.json"),
			`{"log_level": "debug", "api_token": "legacy-token", "default_team": "acme"}`)
		repository := settings.NewFileSettingsRepositoryIn(home)

		// when
		loaded, err := repository.Load("")

		// then
		require.NoError(t, err)
		assert.Equal(t, "debug", loaded.LogLevel)
		assert.Equal(t, "legacy-token", loaded.APIToken)
		assert.Equal(t, "acme", loaded.DefaultTeam)
	})

	t.Run("should prefer config.yaml over the legacy file", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv(settings.EnvConfigFile, "")
		home := t.TempDir()
		writeFile(t, filepath.Join(home, ".hotaisle", "config.json"), `{"default_team": "old"}`)
		writeFile(t, filepath.Join(home, ".hotaisle", "config.yaml"), "default_team: new\n")
		repository := settings.NewFileSettingsRepositoryIn(home)

		// when
		loaded, err := repository.Load("")

		// then
		require.NoError(t, err)
		assert.Equal(t, "new", loaded.DefaultTeam)
	})

	t.Run("should honour the environment override", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		path := filepath.Join(t.TempDir(), "custom.yaml")
		writeFile(t, path, "default_team: from-env\n")
		t.Setenv(settings.EnvConfigFile, path)
		repository := settings.NewFileSettingsRepositoryIn(t.TempDir())

		// when
		loaded, err := repository.Load("")

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-env", loaded.DefaultTeam)
		assert.Equal(t, path, loaded.Path)
	})

	t.Run("should expand the home directory of an explicit path", func(t *testing.T) {
		t.Parallel()

		// given
		home := t.TempDir()
		writeFile(t, filepath.Join(home, "elsewhere.yaml"), "default_team: tilde\n")
		repository := settings.NewFileSettingsRepositoryIn(home)

		// when
		loaded, err := repository.Load("~/elsewhere.yaml")

		// then
		require.NoError(t, err)
		assert.Equal(t, "tilde", loaded.DefaultTeam)
	})

	t.Run("should fail for a missing explicit file", func(t *testing.T) {
		t.Parallel()

		// given
		repository := settings.NewFileSettingsRepositoryIn(t.TempDir())

		// when
		_, err := repository.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})

	t.Run("should fail for malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "broken.yaml")
		writeFile(t, path, "default_team: [unclosed\n")
		repository := settings.NewFileSettingsRepositoryIn(t.TempDir())

		// when
		_, err := repository.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse settings file")
	})
}

func TestFileSettingsRepositorySave(t *testing.T) {
	t.Parallel()

	t.Run("should round-trip settings and keep environment references", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "config.yaml")
		repository := settings.NewFileSettingsRepositoryIn(t.TempDir())
		original := &entities.Settings{
			LogLevel:    "warning",
			APIToken:    "${HOTAISLE_API_TOKEN}",
			DefaultTeam: "acme",
			Path:        path,
		}

		// when
		saveErr := repository.Save(original)
		loaded, loadErr := repository.Load(path)

		// then
		require.NoError(t, saveErr)
		require.NoError(t, loadErr)
		assert.Equal(t, original, loaded)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(data), "${HOTAISLE_API_TOKEN}")
	})

	t.Run("should migrate the legacy JSON file to YAML", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		legacy := filepath.Join(dir, "config.json")
		writeFile(t, legacy, `{"api_token": "legacy"}`)
		repository := settings.NewFileSettingsRepositoryIn(t.TempDir())
		loaded, err := repository.Load(legacy)
		require.NoError(t, err)

		// when
		err = repository.Save(loaded)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "config.yaml"), loaded.Path)
		migrated, loadErr := repository.Load(loaded.Path)
		require.NoError(t, loadErr)
		assert.Equal(t, "legacy", migrated.APIToken)
	})

	t.Run("should save to the default location when the settings have no path", func(t *testing.T) {
		t.Parallel()

		// given
		home := t.TempDir()
		repository := settings.NewFileSettingsRepositoryIn(home)
		fresh := entities.NewSettings()

		// when
		err := repository.Save(fresh)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".hotaisle", "config.yaml"), fresh.Path)
		assert.FileExists(t, fresh.Path)
	})
}
