package entities

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
)

const (
	// DefaultLogLevel is used when the settings file does not define one.
	DefaultLogLevel = "info"

	SettingToken       = "token"
	SettingLogLevel    = "log-level"
	SettingDefaultTeam = "default-team"
)

var (
	// ErrNoTeam is returned when a team-scoped command has neither a --team flag nor a default team.
	ErrNoTeam = errors.New("no team given: pass --team or run 'hotaisle config set default-team <team>'")
	// ErrUnknownSetting is returned for keys other than token, log-level and default-team.
	ErrUnknownSetting = errors.New("unknown setting")
	// ErrInvalidLogLevel is returned when a log level cannot be parsed.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// SettingKeys lists the keys accepted by Get and Set.
var SettingKeys = []string{SettingToken, SettingLogLevel, SettingDefaultTeam} //nolint:gochecknoglobals // read-only key list

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the persisted configuration of the CLI.
type Settings struct {
	LogLevel    string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	APIToken    string `json:"api_token"           yaml:"api_token"`
	DefaultTeam string `json:"default_team"        yaml:"default_team"`

	// Path is the file the settings were loaded from.
	Path string `json:"-" yaml:"-"`
}

// NewSettings returns settings holding the defaults.
func NewSettings() *Settings {
	return &Settings{
		LogLevel: DefaultLogLevel,
	}
}

// Token returns the API token with ${ENV_VAR} references and token files resolved.
func (it *Settings) Token() string {
	return ResolveToken(it.APIToken)
}

// Level parses the configured log level. An empty level means info.
func (it *Settings) Level() (logger.Level, error) {
	if it.LogLevel == "" {
		return logger.InfoLevel, nil
	}
	level, err := logger.ParseLevel(it.LogLevel)
	if err != nil {
		return logger.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, it.LogLevel)
	}
	return level, nil
}

// ResolveTeam picks the explicit team when given, the default team otherwise.
func (it *Settings) ResolveTeam(team string) (string, error) {
	if team = strings.TrimSpace(team); team != "" {
		return team, nil
	}
	if it.DefaultTeam != "" {
		return it.DefaultTeam, nil
	}
	return "", ErrNoTeam
}

// Get returns the raw value stored under key.
func (it *Settings) Get(key string) (string, error) {
	switch key {
	case SettingToken:
		return it.APIToken, nil
	case SettingLogLevel:
		return it.LogLevel, nil
	case SettingDefaultTeam:
		return it.DefaultTeam, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
}

// Set stores value under key. Log levels are validated before being stored.
func (it *Settings) Set(key, value string) error {
	switch key {
	case SettingToken:
		it.APIToken = value
	case SettingLogLevel:
		if _, err := logger.ParseLevel(value); err != nil {
			return fmt.Errorf("%w: %q (valid values are: %s)", ErrInvalidLogLevel, value, validLevels())
		}
		it.LogLevel = strings.ToLower(value)
	case SettingDefaultTeam:
		it.DefaultTeam = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	return nil
}

func validLevels() string {
	names := make([]string, 0, len(logger.AllLevels))
	for _, level := range logger.AllLevels {
		names = append(names, level.String())
	}
	return strings.Join(names, ", ")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// ErrNoToken is returned when an API command runs without a token configured.
var ErrNoToken = errors.New("no API token configured: run 'hotaisle config set token <token>'")

// RequireToken returns the resolved API token or ErrNoToken.
func (it *Settings) RequireToken() (string, error) {
	token := it.Token()
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
