package hotaisle

import (
	"context"
	"net/http"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

const (
	bareMetalCollectionPath = "/teams/{team}/bare_metal/"
	bareMetalPath           = "/teams/{team}/bare_metal/{resource}/"
)

// BareMetalRepository implements repositories.BareMetalRepository over the API client.
type BareMetalRepository struct {
	client *Client
}

// NewBareMetalRepository creates a bare metal repository backed by client.
func NewBareMetalRepository(client *Client) repositories.BareMetalRepository {
	return &BareMetalRepository{client: client}
}

func (r *BareMetalRepository) List(ctx context.Context, team string) ([]entities.BareMetalServerDetails, error) {
	var result []entities.BareMetalServerDetails
	path := teamPath(bareMetalCollectionPath, team, "")
	if err := r.client.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *BareMetalRepository) Get(
	ctx context.Context,
	team, name string,
) (*entities.BareMetalServerDetails, error) {
	var result entities.BareMetalServerDetails
	if err := r.client.doRequest(ctx, http.MethodGet, teamPath(bareMetalPath, team, name), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *BareMetalRepository) Reserve(
	ctx context.Context,
	team string,
	reservation entities.BareMetalReservation,
) (*entities.BareMetalServerDetails, error) {
	var result entities.BareMetalServerDetails
	path := teamPath(bareMetalCollectionPath, team, "")
	if err := r.client.doRequest(ctx, http.MethodPost, path, reservation, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *BareMetalRepository) Update(
	ctx context.Context,
	team, name string,
	update entities.BareMetalServerUpdate,
) error {
	return r.client.doRequest(ctx, http.MethodPatch, teamPath(bareMetalPath, team, name), update, nil)
}

// Delete releases the server back to the available pool.
func (r *BareMetalRepository) Delete(ctx context.Context, team, name string) error {
	return r.client.doRequest(ctx, http.MethodDelete, teamPath(bareMetalPath, team, name), nil, nil)
}

func (r *BareMetalRepository) ListAvailable(ctx context.Context, team string) ([]entities.AvailableBareMetal, error) {
	var result []entities.AvailableBareMetal
	path := teamPath(bareMetalCollectionPath+"available/", team, "")
	if err := r.client.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *BareMetalRepository) GetPowerState(
	ctx context.Context,
	team, name string,
) (*entities.BareMetalPowerState, error) {
	var result entities.BareMetalPowerState
	if err := r.client.doRequest(ctx, http.MethodGet, teamPath(bareMetalPath+"power/", team, name), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *BareMetalRepository) Power(
	ctx context.Context,
	team, name string,
	action entities.BareMetalPowerAction,
) error {
	path := teamPath(bareMetalPath+"power/"+string(action)+"/", team, name)
	return r.client.doRequest(ctx, http.MethodPost, path, nil, nil)
}

// Reinstall resets BIOS settings, wipes all disks and reinstalls the OS.
func (r *BareMetalRepository) Reinstall(
	ctx context.Context,
	team, name string,
) (*entities.BareMetalServerDetails, error) {
	var result entities.BareMetalServerDetails
	path := teamPath(bareMetalPath+"reinstall/", team, name)
	if err := r.client.doRequest(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *BareMetalRepository) GetConsoleURL(ctx context.Context, team, name string) (*entities.ConsoleURL, error) {
	var result entities.ConsoleURL
	path := teamPath(bareMetalPath+"console/", team, name)
	if err := r.client.doRequest(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetSupportAccess grants (PUT) or revokes (DELETE) Hot Aisle staff access to the server.
func (r *BareMetalRepository) SetSupportAccess(ctx context.Context, team, name string, enabled bool) error {
	method := http.MethodDelete
	if enabled {
		method = http.MethodPut
	}
	return r.client.doRequest(ctx, method, teamPath(bareMetalPath+"support_access_enable/", team, name), nil, nil)
}
