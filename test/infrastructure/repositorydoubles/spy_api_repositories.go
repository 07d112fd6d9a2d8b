//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// Calls records the invocations of a spy as "Method arg1 arg2 ...".
type Calls []string

func (c *Calls) record(method string, args ...string) {
	*c = append(*c, strings.Join(append([]string{method}, args...), " "))
}

// SpyAPIRepositoryFactory hands out the configured spies and records the tokens it was given.
type SpyAPIRepositoryFactory struct {
	Tokens []string

	UserRepository           *SpyUserRepository
	TeamRepository           *SpyTeamRepository
	VirtualMachineRepository *SpyVirtualMachineRepository
	BareMetalRepository      *SpyBareMetalRepository
}

var _ repositories.APIRepositoryFactory = (*SpyAPIRepositoryFactory)(nil)

// NewSpyAPIRepositoryFactory creates a factory holding empty spies.
func NewSpyAPIRepositoryFactory() *SpyAPIRepositoryFactory {
	return &SpyAPIRepositoryFactory{
		UserRepository:           &SpyUserRepository{},
		TeamRepository:           &SpyTeamRepository{},
		VirtualMachineRepository: &SpyVirtualMachineRepository{},
		BareMetalRepository:      &SpyBareMetalRepository{},
	}
}

func (f *SpyAPIRepositoryFactory) Users(token string) repositories.UserRepository {
	f.Tokens = append(f.Tokens, token)
	return f.UserRepository
}

func (f *SpyAPIRepositoryFactory) Teams(token string) repositories.TeamRepository {
	f.Tokens = append(f.Tokens, token)
	return f.TeamRepository
}

func (f *SpyAPIRepositoryFactory) VirtualMachines(token string) repositories.VirtualMachineRepository {
	f.Tokens = append(f.Tokens, token)
	return f.VirtualMachineRepository
}

func (f *SpyAPIRepositoryFactory) BareMetal(token string) repositories.BareMetalRepository {
	f.Tokens = append(f.Tokens, token)
	return f.BareMetalRepository
}

// ---------------------------------------------------------------------------
// SpyUserRepository
// ---------------------------------------------------------------------------

// SpyUserRepository implements repositories.UserRepository as a configurable spy.
type SpyUserRepository struct {
	Calls Calls
	Err   error

	CurrentUser *entities.CurrentUser
	SSHKeys     []entities.SSHKey
	APIKeys     []entities.APIKey

	Updates     []entities.UserUpdate
	SSHRequests []entities.SSHKeyRequest
}

var _ repositories.UserRepository = (*SpyUserRepository)(nil)

func (s *SpyUserRepository) Get(_ context.Context) (*entities.CurrentUser, error) {
	s.Calls.record("Get")
	return s.CurrentUser, s.Err
}

func (s *SpyUserRepository) Update(_ context.Context, update entities.UserUpdate) (*entities.User, error) {
	s.Calls.record("Update", update.Name)
	s.Updates = append(s.Updates, update)
	return &entities.User{Name: update.Name}, s.Err
}

func (s *SpyUserRepository) ListSSHKeys(_ context.Context) ([]entities.SSHKey, error) {
	s.Calls.record("ListSSHKeys")
	return s.SSHKeys, s.Err
}

func (s *SpyUserRepository) AddSSHKey(
	_ context.Context, request entities.SSHKeyRequest,
) (*entities.SSHKey, error) {
	s.Calls.record("AddSSHKey")
	s.SSHRequests = append(s.SSHRequests, request)
	return &entities.SSHKey{PublicKey: request.AuthorizedKey}, s.Err
}

func (s *SpyUserRepository) DeleteSSHKey(_ context.Context, fingerprint string) error {
	s.Calls.record("DeleteSSHKey", fingerprint)
	return s.Err
}

func (s *SpyUserRepository) ListAPIKeys(_ context.Context) ([]entities.APIKey, error) {
	s.Calls.record("ListAPIKeys")
	return s.APIKeys, s.Err
}

func (s *SpyUserRepository) GetAPIKey(_ context.Context, prefix string) (*entities.APIKey, error) {
	s.Calls.record("GetAPIKey", prefix)
	return &entities.APIKey{Prefix: prefix}, s.Err
}

func (s *SpyUserRepository) CreateAPIKey(
	_ context.Context, request entities.APIKeyRequest,
) (*entities.APIKeyWithToken, error) {
	s.Calls.record("CreateAPIKey", request.Label)
	return &entities.APIKeyWithToken{}, s.Err
}

func (s *SpyUserRepository) UpdateAPIKey(
	_ context.Context, prefix string, _ entities.APIKeyRequest,
) (*entities.APIKey, error) {
	s.Calls.record("UpdateAPIKey", prefix)
	return &entities.APIKey{Prefix: prefix}, s.Err
}

func (s *SpyUserRepository) DeleteAPIKey(_ context.Context, prefix string) error {
	s.Calls.record("DeleteAPIKey", prefix)
	return s.Err
}

// ---------------------------------------------------------------------------
// SpyTeamRepository
// ---------------------------------------------------------------------------

// SpyTeamRepository implements repositories.TeamRepository as a configurable spy.
type SpyTeamRepository struct {
	Calls Calls
	Err   error

	Teams       []entities.UserTeam
	Details     *entities.TeamDetails
	Balance     *entities.Balance
	Members     []entities.TeamMember
	Invitations []entities.TeamInvitationRequest
}

var _ repositories.TeamRepository = (*SpyTeamRepository)(nil)

func (s *SpyTeamRepository) List(_ context.Context) ([]entities.UserTeam, error) {
	s.Calls.record("List")
	return s.Teams, s.Err
}

func (s *SpyTeamRepository) Create(
	_ context.Context, team entities.Team,
) (*entities.UserTeamWithMembers, error) {
	s.Calls.record("Create", team.Handle)
	return &entities.UserTeamWithMembers{}, s.Err
}

func (s *SpyTeamRepository) Get(_ context.Context, team string) (*entities.TeamDetails, error) {
	s.Calls.record("Get", team)
	return s.Details, s.Err
}

func (s *SpyTeamRepository) Update(
	_ context.Context, team string, _ entities.TeamUpdate,
) (*entities.UserTeamWithMembers, error) {
	s.Calls.record("Update", team)
	return &entities.UserTeamWithMembers{}, s.Err
}

func (s *SpyTeamRepository) ListInvitations(_ context.Context) ([]entities.UserTeam, error) {
	s.Calls.record("ListInvitations")
	return s.Teams, s.Err
}

func (s *SpyTeamRepository) AcceptInvitation(
	_ context.Context, team string,
) (*entities.UserTeamWithMembers, error) {
	s.Calls.record("AcceptInvitation", team)
	return &entities.UserTeamWithMembers{}, s.Err
}

func (s *SpyTeamRepository) GetBalance(_ context.Context, team string) (*entities.Balance, error) {
	s.Calls.record("GetBalance", team)
	return s.Balance, s.Err
}

func (s *SpyTeamRepository) PurchaseCredits(
	_ context.Context, team string, _ entities.PurchaseCreditsRequest,
) (*entities.PurchaseCreditsResponse, error) {
	s.Calls.record("PurchaseCredits", team)
	return &entities.PurchaseCreditsResponse{}, s.Err
}

func (s *SpyTeamRepository) RequestPaymentApproval(
	_ context.Context, team string, _ entities.PaymentApprovalRequest,
) error {
	s.Calls.record("RequestPaymentApproval", team)
	return s.Err
}

func (s *SpyTeamRepository) ListMemberInvitations(_ context.Context, team string) ([]entities.TeamMember, error) {
	s.Calls.record("ListMemberInvitations", team)
	return s.Members, s.Err
}

func (s *SpyTeamRepository) InviteMember(
	_ context.Context, team string, request entities.TeamInvitationRequest,
) error {
	s.Calls.record("InviteMember", team, request.Email)
	s.Invitations = append(s.Invitations, request)
	return s.Err
}

func (s *SpyTeamRepository) UpdateMember(
	_ context.Context, team, email string, _ entities.TeamMemberUpdate,
) (*entities.TeamMember, error) {
	s.Calls.record("UpdateMember", team, email)
	return &entities.TeamMember{Email: email}, s.Err
}

func (s *SpyTeamRepository) RemoveMember(_ context.Context, team, email string) error {
	s.Calls.record("RemoveMember", team, email)
	return s.Err
}

// ---------------------------------------------------------------------------
// SpyVirtualMachineRepository
// ---------------------------------------------------------------------------

// SpyVirtualMachineRepository implements repositories.VirtualMachineRepository as a configurable spy.
type SpyVirtualMachineRepository struct {
	Calls Calls
	Err   error

	VirtualMachines []entities.VirtualMachineDetails
	Available       []entities.AvailableVirtualMachine
	State           *entities.VirtualMachineState
}

var _ repositories.VirtualMachineRepository = (*SpyVirtualMachineRepository)(nil)

func (s *SpyVirtualMachineRepository) List(_ context.Context, team string) ([]entities.VirtualMachineDetails, error) {
	s.Calls.record("List", team)
	return s.VirtualMachines, s.Err
}

func (s *SpyVirtualMachineRepository) Get(
	_ context.Context, team, name string,
) (*entities.VirtualMachineDetails, error) {
	s.Calls.record("Get", team, name)
	return &entities.VirtualMachineDetails{VirtualMachine: entities.VirtualMachine{Name: name}}, s.Err
}

func (s *SpyVirtualMachineRepository) Provision(
	_ context.Context, team string, specs entities.VirtualMachineSpecs,
) (*entities.VirtualMachineDetails, error) {
	s.Calls.record("Provision", team)
	return &entities.VirtualMachineDetails{VirtualMachineSpecs: specs}, s.Err
}

func (s *SpyVirtualMachineRepository) Update(
	_ context.Context, team, name string, _ entities.VirtualMachineUpdate,
) error {
	s.Calls.record("Update", team, name)
	return s.Err
}

func (s *SpyVirtualMachineRepository) Delete(_ context.Context, team, name string) error {
	s.Calls.record("Delete", team, name)
	return s.Err
}

func (s *SpyVirtualMachineRepository) ListAvailable(
	_ context.Context, team string,
) ([]entities.AvailableVirtualMachine, error) {
	s.Calls.record("ListAvailable", team)
	return s.Available, s.Err
}

func (s *SpyVirtualMachineRepository) GetState(
	_ context.Context, team, name string,
) (*entities.VirtualMachineState, error) {
	s.Calls.record("GetState", team, name)
	return s.State, s.Err
}

func (s *SpyVirtualMachineRepository) Do(
	_ context.Context, team, name string, action entities.VirtualMachineAction,
) error {
	s.Calls.record("Do", team, name, string(action))
	return s.Err
}

// ---------------------------------------------------------------------------
// SpyBareMetalRepository
// ---------------------------------------------------------------------------

// SpyBareMetalRepository implements repositories.BareMetalRepository as a configurable spy.
type SpyBareMetalRepository struct {
	Calls Calls
	Err   error

	Servers    []entities.BareMetalServerDetails
	Available  []entities.AvailableBareMetal
	PowerState *entities.BareMetalPowerState
	ConsoleURL *entities.ConsoleURL
}

var _ repositories.BareMetalRepository = (*SpyBareMetalRepository)(nil)

func (s *SpyBareMetalRepository) List(_ context.Context, team string) ([]entities.BareMetalServerDetails, error) {
	s.Calls.record("List", team)
	return s.Servers, s.Err
}

func (s *SpyBareMetalRepository) Get(
	_ context.Context, team, name string,
) (*entities.BareMetalServerDetails, error) {
	s.Calls.record("Get", team, name)
	return &entities.BareMetalServerDetails{}, s.Err
}

func (s *SpyBareMetalRepository) Reserve(
	_ context.Context, team string, _ entities.BareMetalReservation,
) (*entities.BareMetalServerDetails, error) {
	s.Calls.record("Reserve", team)
	return &entities.BareMetalServerDetails{}, s.Err
}

func (s *SpyBareMetalRepository) Update(
	_ context.Context, team, name string, _ entities.BareMetalServerUpdate,
) error {
	s.Calls.record("Update", team, name)
	return s.Err
}

func (s *SpyBareMetalRepository) Delete(_ context.Context, team, name string) error {
	s.Calls.record("Delete", team, name)
	return s.Err
}

func (s *SpyBareMetalRepository) ListAvailable(
	_ context.Context, team string,
) ([]entities.AvailableBareMetal, error) {
	s.Calls.record("ListAvailable", team)
	return s.Available, s.Err
}

func (s *SpyBareMetalRepository) GetPowerState(
	_ context.Context, team, name string,
) (*entities.BareMetalPowerState, error) {
	s.Calls.record("GetPowerState", team, name)
	return s.PowerState, s.Err
}

func (s *SpyBareMetalRepository) Power(
	_ context.Context, team, name string, action entities.BareMetalPowerAction,
) error {
	s.Calls.record("Power", team, name, string(action))
	return s.Err
}

func (s *SpyBareMetalRepository) Reinstall(
	_ context.Context, team, name string,
) (*entities.BareMetalServerDetails, error) {
	s.Calls.record("Reinstall", team, name)
	return &entities.BareMetalServerDetails{}, s.Err
}

func (s *SpyBareMetalRepository) GetConsoleURL(_ context.Context, team, name string) (*entities.ConsoleURL, error) {
	s.Calls.record("GetConsoleURL", team, name)
	return s.ConsoleURL, s.Err
}

func (s *SpyBareMetalRepository) SetSupportAccess(_ context.Context, team, name string, enabled bool) error {
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	s.Calls.record("SetSupportAccess", team, name, state)
	return s.Err
}
