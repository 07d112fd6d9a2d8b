//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// InstallCall records a single invocation of Install.
type InstallCall struct {
	ArchivePath string
	Member      string
	Destination string
	// ArchiveExisted reports whether the archive was on disk during the call.
	ArchiveExisted bool
}

// StubBinaryRepository is a stub implementation of repositories.BinaryRepository.
type StubBinaryRepository struct {
	// --- Install ---
	InstallErr   error
	InstallCalls []InstallCall
	// ArchiveExists is consulted to fill InstallCall.ArchiveExisted.
	ArchiveExists func(path string) bool

	// --- Run ---
	RunOutput string
	RunErr    error
	RunCalls  [][]string // executable followed by args
}

var _ repositories.BinaryRepository = (*StubBinaryRepository)(nil)

func (s *StubBinaryRepository) Install(_ context.Context, archivePath, member, destination string) error {
	call := InstallCall{ArchivePath: archivePath, Member: member, Destination: destination}
	if s.ArchiveExists != nil {
		call.ArchiveExisted = s.ArchiveExists(archivePath)
	}
	s.InstallCalls = append(s.InstallCalls, call)
	return s.InstallErr
}

func (s *StubBinaryRepository) Run(_ context.Context, executable string, args ...string) (string, error) {
	s.RunCalls = append(s.RunCalls, append([]string{executable}, args...))
	return s.RunOutput, s.RunErr
}
