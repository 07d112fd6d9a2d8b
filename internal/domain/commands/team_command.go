package commands

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// Team is the interface for the commands acting on teams and their members.
type Team interface {
	List(ctx context.Context, settings *entities.Settings) ([]entities.UserTeam, error)
	Get(ctx context.Context, settings *entities.Settings, team string) (*entities.TeamDetails, error)
	Balance(ctx context.Context, settings *entities.Settings, team string) (*entities.Balance, error)
	Invitations(ctx context.Context, settings *entities.Settings) ([]entities.UserTeam, error)
	Accept(ctx context.Context, settings *entities.Settings, team string) (*entities.UserTeamWithMembers, error)

	Members(ctx context.Context, settings *entities.Settings, team string) ([]entities.TeamMember, error)
	Invite(ctx context.Context, settings *entities.Settings, team string, request entities.TeamInvitationRequest) error
	Remove(ctx context.Context, settings *entities.Settings, team, email string) error
}

// TeamCommand talks to the team endpoints, resolving the team from the settings when omitted.
type TeamCommand struct {
	factory repositories.APIRepositoryFactory
}

// NewTeamCommand creates a new TeamCommand.
func NewTeamCommand(factory repositories.APIRepositoryFactory) *TeamCommand {
	return &TeamCommand{factory: factory}
}

func (it *TeamCommand) repository(settings *entities.Settings) (repositories.TeamRepository, error) {
	token, err := settings.RequireToken()
	if err != nil {
		return nil, err
	}
	return it.factory.Teams(token), nil
}

// scoped returns the repository together with the resolved team handle.
func (it *TeamCommand) scoped(
	settings *entities.Settings, team string,
) (repositories.TeamRepository, string, error) {
	resolved, err := settings.ResolveTeam(team)
	if err != nil {
		return nil, "", err
	}
	repository, err := it.repository(settings)
	if err != nil {
		return nil, "", err
	}
	return repository, resolved, nil
}

// List returns the teams the user belongs to.
func (it *TeamCommand) List(ctx context.Context, settings *entities.Settings) ([]entities.UserTeam, error) {
	repository, err := it.repository(settings)
	if err != nil {
		return nil, err
	}
	return repository.List(ctx)
}

// Get returns the details of a team.
func (it *TeamCommand) Get(
	ctx context.Context, settings *entities.Settings, team string,
) (*entities.TeamDetails, error) {
	repository, handle, err := it.scoped(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.Get(ctx, handle)
}

// Balance returns the credit balance of a team.
func (it *TeamCommand) Balance(
	ctx context.Context, settings *entities.Settings, team string,
) (*entities.Balance, error) {
	repository, handle, err := it.scoped(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.GetBalance(ctx, handle)
}

// Invitations returns the pending invitations of the user.
func (it *TeamCommand) Invitations(ctx context.Context, settings *entities.Settings) ([]entities.UserTeam, error) {
	repository, err := it.repository(settings)
	if err != nil {
		return nil, err
	}
	return repository.ListInvitations(ctx)
}

// Accept accepts the invitation to join team. The team is never defaulted.
func (it *TeamCommand) Accept(
	ctx context.Context, settings *entities.Settings, team string,
) (*entities.UserTeamWithMembers, error) {
	if team == "" {
		return nil, fmt.Errorf("%w: team", ErrEmptyArgument)
	}
	repository, err := it.repository(settings)
	if err != nil {
		return nil, err
	}
	return repository.AcceptInvitation(ctx, team)
}

// Members returns the pending member invitations of a team.
func (it *TeamCommand) Members(
	ctx context.Context, settings *entities.Settings, team string,
) ([]entities.TeamMember, error) {
	repository, handle, err := it.scoped(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.ListMemberInvitations(ctx, handle)
}

// Invite invites someone to a team.
func (it *TeamCommand) Invite(
	ctx context.Context, settings *entities.Settings, team string, request entities.TeamInvitationRequest,
) error {
	if _, err := mail.ParseAddress(request.Email); err != nil {
		return fmt.Errorf("invalid email %q: %w", request.Email, err)
	}
	repository, handle, err := it.scoped(settings, team)
	if err != nil {
		return err
	}
	return repository.InviteMember(ctx, handle, request)
}

// Remove removes a member, or revokes their invitation, from a team.
func (it *TeamCommand) Remove(ctx context.Context, settings *entities.Settings, team, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email", ErrEmptyArgument)
	}
	repository, handle, err := it.scoped(settings, team)
	if err != nil {
		return err
	}
	return repository.RemoveMember(ctx, handle, email)
}
