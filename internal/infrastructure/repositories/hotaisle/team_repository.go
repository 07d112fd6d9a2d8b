package hotaisle

import (
	"context"
	"net/http"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// TeamRepository implements repositories.TeamRepository over the API client.
type TeamRepository struct {
	client *Client
}

// NewTeamRepository creates a team repository backed by client.
func NewTeamRepository(client *Client) repositories.TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) List(ctx context.Context) ([]entities.UserTeam, error) {
	var result []entities.UserTeam
	if err := r.client.doRequest(ctx, http.MethodGet, "/teams/", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *TeamRepository) Create(ctx context.Context, team entities.Team) (*entities.UserTeamWithMembers, error) {
	var result entities.UserTeamWithMembers
	if err := r.client.doRequest(ctx, http.MethodPost, "/teams/", team, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *TeamRepository) Get(ctx context.Context, team string) (*entities.TeamDetails, error) {
	var result entities.TeamDetails
	if err := r.client.doRequest(ctx, http.MethodGet, teamPath("/teams/{team}/", team, ""), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *TeamRepository) Update(
	ctx context.Context,
	team string,
	update entities.TeamUpdate,
) (*entities.UserTeamWithMembers, error) {
	var result entities.UserTeamWithMembers
	err := r.client.doRequest(ctx, http.MethodPatch, teamPath("/teams/{team}/", team, ""), update, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *TeamRepository) ListInvitations(ctx context.Context) ([]entities.UserTeam, error) {
	var result []entities.UserTeam
	if err := r.client.doRequest(ctx, http.MethodGet, "/teams/invitations/", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *TeamRepository) AcceptInvitation(ctx context.Context, team string) (*entities.UserTeamWithMembers, error) {
	var result entities.UserTeamWithMembers
	path := teamPath("/teams/{team}/accept-invitation/", team, "")
	if err := r.client.doRequest(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *TeamRepository) GetBalance(ctx context.Context, team string) (*entities.Balance, error) {
	var result entities.Balance
	if err := r.client.doRequest(ctx, http.MethodGet, teamPath("/teams/{team}/balance/", team, ""), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *TeamRepository) PurchaseCredits(
	ctx context.Context,
	team string,
	request entities.PurchaseCreditsRequest,
) (*entities.PurchaseCreditsResponse, error) {
	var result entities.PurchaseCreditsResponse
	path := teamPath("/teams/{team}/purchase-credits/", team, "")
	if err := r.client.doRequest(ctx, http.MethodPost, path, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *TeamRepository) RequestPaymentApproval(
	ctx context.Context,
	team string,
	request entities.PaymentApprovalRequest,
) error {
	path := teamPath("/teams/{team}/request-payment-approval/", team, "")
	return r.client.doRequest(ctx, http.MethodPost, path, request, nil)
}

func (r *TeamRepository) ListMemberInvitations(ctx context.Context, team string) ([]entities.TeamMember, error) {
	var result []entities.TeamMember
	path := teamPath("/teams/{team}/members/invitations/", team, "")
	if err := r.client.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *TeamRepository) InviteMember(
	ctx context.Context,
	team string,
	request entities.TeamInvitationRequest,
) error {
	path := teamPath("/teams/{team}/members/invitations/", team, "")
	return r.client.doRequest(ctx, http.MethodPost, path, request, nil)
}

func (r *TeamRepository) UpdateMember(
	ctx context.Context,
	team, email string,
	update entities.TeamMemberUpdate,
) (*entities.TeamMember, error) {
	var result entities.TeamMember
	path := teamPath("/teams/{team}/members/{resource}/", team, email)
	if err := r.client.doRequest(ctx, http.MethodPatch, path, update, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *TeamRepository) RemoveMember(ctx context.Context, team, email string) error {
	path := teamPath("/teams/{team}/members/{resource}/", team, email)
	return r.client.doRequest(ctx, http.MethodDelete, path, nil, nil)
}
