//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/test/domain/entitybuilders"
)

func TestSettings(t *testing.T) {
	t.Run("should get and set every known key", func(t *testing.T) {
		// given
		settings := entities.NewSettings()

		// when
		require.NoError(t, settings.Set(entities.SettingToken, "secret"))
		require.NoError(t, settings.Set(entities.SettingLogLevel, "DEBUG"))
		require.NoError(t, settings.Set(entities.SettingDefaultTeam, "acme"))

		// then
		for key, expected := range map[string]string{
			entities.SettingToken:       "secret",
			entities.SettingLogLevel:    "debug",
			entities.SettingDefaultTeam: "acme",
		} {
			value, err := settings.Get(key)
			require.NoError(t, err)
			assert.Equal(t, expected, value)
		}
	})

	t.Run("should reject unknown keys and invalid log levels", func(t *testing.T) {
		// given
		settings := entities.NewSettings()

		// when
		_, getErr := settings.Get("colour")
		setErr := settings.Set("colour", "blue")
		levelErr := settings.Set(entities.SettingLogLevel, "loud")

		// then
		require.ErrorIs(t, getErr, entities.ErrUnknownSetting)
		require.ErrorIs(t, setErr, entities.ErrUnknownSetting)
		require.ErrorIs(t, levelErr, entities.ErrInvalidLogLevel)
		assert.Equal(t, entities.DefaultLogLevel, settings.LogLevel)
	})

	t.Run("should fall back to info for an invalid stored log level", func(t *testing.T) {
		// given
		settings := entitybuilders.NewSettingsBuilder().WithLogLevel("loud").BuildSettings()

		// when
		level, err := settings.Level()

		// then
		require.ErrorIs(t, err, entities.ErrInvalidLogLevel)
		assert.Equal(t, logger.InfoLevel, level)
	})

	t.Run("should prefer an explicit team over the default team", func(t *testing.T) {
		// given
		settings := entitybuilders.NewSettingsBuilder().WithDefaultTeam("default").BuildSettings()

		// when
		explicit, explicitErr := settings.ResolveTeam("explicit")
		fallback, fallbackErr := settings.ResolveTeam("  ")

		// then
		require.NoError(t, explicitErr)
		require.NoError(t, fallbackErr)
		assert.Equal(t, "explicit", explicit)
		assert.Equal(t, "default", fallback)
	})

	t.Run("should fail without any team", func(t *testing.T) {
		// given
		settings := entitybuilders.NewSettingsBuilder().WithDefaultTeam("").BuildSettings()

		// when
		_, err := settings.ResolveTeam("")

		// then
		require.ErrorIs(t, err, entities.ErrNoTeam)
	})

	t.Run("should require a token", func(t *testing.T) {
		// given
		settings := entitybuilders.NewSettingsBuilder().WithAPIToken("").BuildSettings()

		// when
		_, err := settings.RequireToken()

		// then
		require.ErrorIs(t, err, entities.ErrNoToken)
	})
}

func TestResolveToken(t *testing.T) {
	t.Run("should return an inline token unchanged", func(t *testing.T) {
		// when
		token := entities.ResolveToken("inline-token")

		// then
		assert.Equal(t, "inline-token", token)
	})

	t.Run("should expand environment variable references", func(t *testing.T) {
		// given
		t.Setenv("HOTAISLE_TEST_TOKEN", "from-env")

		// when
		token := entities.ResolveToken("${HOTAISLE_TEST_TOKEN}")

		// then
		assert.Equal(t, "from-env", token)
	})

	t.Run("should resolve to empty when the variable is unset", func(t *testing.T) {
		// given
		t.Setenv("HOTAISLE_TEST_UNSET", "")

		// when
		token := entities.ResolveToken("${HOTAISLE_TEST_UNSET}")

		// then
		assert.Empty(t, token)
	})

	t.Run("should read the token from a file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))

		// when
		token := entities.ResolveToken(path)

		// then
		assert.Equal(t, "from-file", token)
	})

	t.Run("should read the token from a file named by an environment variable", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("  nested  "), 0o600))
		t.Setenv("HOTAISLE_TEST_TOKEN_FILE", path)

		// when
		token := entities.ResolveToken("${HOTAISLE_TEST_TOKEN_FILE}")

		// then
		assert.Equal(t, "nested", token)
	})
}
