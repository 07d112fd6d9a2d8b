package hotaisle

import (
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// RepositoryFactory implements repositories.APIRepositoryFactory.
type RepositoryFactory struct {
	buildInfo *entities.BuildInfo
	options   []Option
}

// NewRepositoryFactory builds API repositories identifying themselves with the binary's version.
// Extra options are applied after the defaults, which lets tests swap the base URL or transport.
func NewRepositoryFactory(buildInfo *entities.BuildInfo, options ...Option) *RepositoryFactory {
	return &RepositoryFactory{
		buildInfo: buildInfo,
		options:   options,
	}
}

func (f *RepositoryFactory) client(token string) *Client {
	opts := []Option{
		WithToken(token),
		WithUserAgent(f.buildInfo.UserAgent()),
	}
	return NewClient(append(opts, f.options...)...)
}

// Users returns a user repository authenticated with token.
func (f *RepositoryFactory) Users(token string) repositories.UserRepository {
	return NewUserRepository(f.client(token))
}

// Teams returns a team repository authenticated with token.
func (f *RepositoryFactory) Teams(token string) repositories.TeamRepository {
	return NewTeamRepository(f.client(token))
}

// VirtualMachines returns a virtual machine repository authenticated with token.
func (f *RepositoryFactory) VirtualMachines(token string) repositories.VirtualMachineRepository {
	return NewVirtualMachineRepository(f.client(token))
}

// BareMetal returns a bare metal repository authenticated with token.
func (f *RepositoryFactory) BareMetal(token string) repositories.BareMetalRepository {
	return NewBareMetalRepository(f.client(token))
}
