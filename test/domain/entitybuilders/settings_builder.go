//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	logLevel    string
	apiToken    string
	defaultTeam string
	path        string
}

// NewSettingsBuilder creates a new settings builder with a token and a default team.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		logLevel:    entities.DefaultLogLevel,
		apiToken:    "test-token",
		defaultTeam: "test-team",
	}
}

// WithLogLevel sets the log level.
func (b *SettingsBuilder) WithLogLevel(level string) *SettingsBuilder {
	b.logLevel = level
	return b
}

// WithAPIToken sets the raw API token.
func (b *SettingsBuilder) WithAPIToken(token string) *SettingsBuilder {
	b.apiToken = token
	return b
}

// WithDefaultTeam sets the default team.
func (b *SettingsBuilder) WithDefaultTeam(team string) *SettingsBuilder {
	b.defaultTeam = team
	return b
}

// WithPath sets the file the settings pretend to come from.
func (b *SettingsBuilder) WithPath(path string) *SettingsBuilder {
	b.path = path
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		LogLevel:    b.logLevel,
		APIToken:    b.apiToken,
		DefaultTeam: b.defaultTeam,
		Path:        b.path,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.logLevel = entities.DefaultLogLevel
	b.apiToken = "test-token"
	b.defaultTeam = "test-team"
	b.path = ""
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		logLevel:    b.logLevel,
		apiToken:    b.apiToken,
		defaultTeam: b.defaultTeam,
		path:        b.path,
	}
}
