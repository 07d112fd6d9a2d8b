//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// StubConfigCommand is a stub implementation of commands.Config.
type StubConfigCommand struct {
	Value  string
	GetErr error
	SetErr error

	GetKeys []string
	SetArgs [][2]string // key, value
}

var _ commands.Config = (*StubConfigCommand)(nil)

func (s *StubConfigCommand) Get(_ *entities.Settings, key string) (string, error) {
	s.GetKeys = append(s.GetKeys, key)
	return s.Value, s.GetErr
}

func (s *StubConfigCommand) Set(_ *entities.Settings, key, value string) error {
	s.SetArgs = append(s.SetArgs, [2]string{key, value})
	return s.SetErr
}
