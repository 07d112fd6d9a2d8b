//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/test/domain/entitybuilders"
	doubles "github.com/hotaisle/hotaisle-cli/test/infrastructure/repositorydoubles"
)

func TestConfigCommand(t *testing.T) {
	t.Parallel()

	t.Run("should store the value and save the settings", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.StubSettingsRepository{}
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		cmd := commands.NewConfigCommand(repository)

		// when
		err := cmd.Set(settings, entities.SettingDefaultTeam, "acme")

		// then
		require.NoError(t, err)
		require.Len(t, repository.Saved, 1)
		assert.Equal(t, "acme", repository.Saved[0].DefaultTeam)
	})

	t.Run("should keep an environment reference as written", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.StubSettingsRepository{}
		settings := entities.NewSettings()
		cmd := commands.NewConfigCommand(repository)

		// when
		err := cmd.Set(settings, entities.SettingToken, "${HOTAISLE_API_TOKEN}")

		// then
		require.NoError(t, err)
		value, getErr := cmd.Get(settings, entities.SettingToken)
		require.NoError(t, getErr)
		assert.Equal(t, "${HOTAISLE_API_TOKEN}", value)
		assert.Equal(t, "${HOTAISLE_API_TOKEN}", repository.Saved[0].APIToken)
	})

	t.Run("should do nothing for an empty value", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.StubSettingsRepository{}
		settings := entitybuilders.NewSettingsBuilder().WithDefaultTeam("acme").BuildSettings()
		cmd := commands.NewConfigCommand(repository)

		// when
		err := cmd.Set(settings, entities.SettingDefaultTeam, "")

		// then
		require.NoError(t, err)
		assert.Empty(t, repository.Saved)
		assert.Equal(t, "acme", settings.DefaultTeam)
	})

	t.Run("should not save an invalid value", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.StubSettingsRepository{}
		cmd := commands.NewConfigCommand(repository)

		// when
		err := cmd.Set(entities.NewSettings(), entities.SettingLogLevel, "chatty")

		// then
		require.ErrorIs(t, err, entities.ErrInvalidLogLevel)
		assert.Empty(t, repository.Saved)
	})

	t.Run("should surface save failures", func(t *testing.T) {
		t.Parallel()

		// given
		saveErr := errors.New("read-only file system")
		cmd := commands.NewConfigCommand(&doubles.StubSettingsRepository{SaveErr: saveErr})

		// when
		err := cmd.Set(entities.NewSettings(), entities.SettingToken, "secret")

		// then
		require.ErrorIs(t, err, saveErr)
	})
}
