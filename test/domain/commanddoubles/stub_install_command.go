//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
)

// StubInstallCommand is a stub implementation of commands.Install.
type StubInstallCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.InstallResult
	LastOpts         commands.InstallOptions
}

var _ commands.Install = (*StubInstallCommand)(nil)

func (s *StubInstallCommand) Execute(_ context.Context, opts commands.InstallOptions) (*commands.InstallResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return s.Result, s.ExecuteErr
	}
	if s.Result == nil {
		return &commands.InstallResult{Version: "1.2.3"}, nil
	}
	return s.Result, nil
}
