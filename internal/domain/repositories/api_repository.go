package repositories

import (
	"context"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// UserRepository abstracts the /user endpoints of the Hot Aisle API.
type UserRepository interface {
	Get(ctx context.Context) (*entities.CurrentUser, error)
	Update(ctx context.Context, update entities.UserUpdate) (*entities.User, error)

	ListSSHKeys(ctx context.Context) ([]entities.SSHKey, error)
	AddSSHKey(ctx context.Context, request entities.SSHKeyRequest) (*entities.SSHKey, error)
	DeleteSSHKey(ctx context.Context, fingerprint string) error

	ListAPIKeys(ctx context.Context) ([]entities.APIKey, error)
	GetAPIKey(ctx context.Context, prefix string) (*entities.APIKey, error)
	CreateAPIKey(ctx context.Context, request entities.APIKeyRequest) (*entities.APIKeyWithToken, error)
	UpdateAPIKey(ctx context.Context, prefix string, request entities.APIKeyRequest) (*entities.APIKey, error)
	DeleteAPIKey(ctx context.Context, prefix string) error
}

// TeamRepository abstracts the /teams endpoints.
type TeamRepository interface {
	List(ctx context.Context) ([]entities.UserTeam, error)
	Create(ctx context.Context, team entities.Team) (*entities.UserTeamWithMembers, error)
	Get(ctx context.Context, team string) (*entities.TeamDetails, error)
	Update(ctx context.Context, team string, update entities.TeamUpdate) (*entities.UserTeamWithMembers, error)

	ListInvitations(ctx context.Context) ([]entities.UserTeam, error)
	AcceptInvitation(ctx context.Context, team string) (*entities.UserTeamWithMembers, error)

	GetBalance(ctx context.Context, team string) (*entities.Balance, error)
	PurchaseCredits(
		ctx context.Context, team string, request entities.PurchaseCreditsRequest,
	) (*entities.PurchaseCreditsResponse, error)
	RequestPaymentApproval(ctx context.Context, team string, request entities.PaymentApprovalRequest) error

	ListMemberInvitations(ctx context.Context, team string) ([]entities.TeamMember, error)
	InviteMember(ctx context.Context, team string, request entities.TeamInvitationRequest) error
	UpdateMember(
		ctx context.Context, team, email string, update entities.TeamMemberUpdate,
	) (*entities.TeamMember, error)
	RemoveMember(ctx context.Context, team, email string) error
}

// VirtualMachineRepository abstracts the /teams/{team}/virtual_machines endpoints.
type VirtualMachineRepository interface {
	List(ctx context.Context, team string) ([]entities.VirtualMachineDetails, error)
	Get(ctx context.Context, team, name string) (*entities.VirtualMachineDetails, error)
	Provision(
		ctx context.Context, team string, specs entities.VirtualMachineSpecs,
	) (*entities.VirtualMachineDetails, error)
	Update(ctx context.Context, team, name string, update entities.VirtualMachineUpdate) error
	Delete(ctx context.Context, team, name string) error
	ListAvailable(ctx context.Context, team string) ([]entities.AvailableVirtualMachine, error)
	GetState(ctx context.Context, team, name string) (*entities.VirtualMachineState, error)
	Do(ctx context.Context, team, name string, action entities.VirtualMachineAction) error
}

// BareMetalRepository abstracts the /teams/{team}/bare_metal endpoints.
type BareMetalRepository interface {
	List(ctx context.Context, team string) ([]entities.BareMetalServerDetails, error)
	Get(ctx context.Context, team, name string) (*entities.BareMetalServerDetails, error)
	Reserve(
		ctx context.Context, team string, reservation entities.BareMetalReservation,
	) (*entities.BareMetalServerDetails, error)
	Update(ctx context.Context, team, name string, update entities.BareMetalServerUpdate) error
	Delete(ctx context.Context, team, name string) error
	ListAvailable(ctx context.Context, team string) ([]entities.AvailableBareMetal, error)
	GetPowerState(ctx context.Context, team, name string) (*entities.BareMetalPowerState, error)
	Power(ctx context.Context, team, name string, action entities.BareMetalPowerAction) error
	Reinstall(ctx context.Context, team, name string) (*entities.BareMetalServerDetails, error)
	GetConsoleURL(ctx context.Context, team, name string) (*entities.ConsoleURL, error)
	SetSupportAccess(ctx context.Context, team, name string, enabled bool) error
}

// APIRepositoryFactory builds API repositories authenticated with a token.
// Repositories are built per invocation so a token set with `config set token`
// is picked up without restarting anything.
type APIRepositoryFactory interface {
	Users(token string) UserRepository
	Teams(token string) TeamRepository
	VirtualMachines(token string) VirtualMachineRepository
	BareMetal(token string) BareMetalRepository
}
