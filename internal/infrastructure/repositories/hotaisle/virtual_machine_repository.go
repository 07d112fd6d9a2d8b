package hotaisle

import (
	"context"
	"net/http"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

const (
	vmCollectionPath = "/teams/{team}/virtual_machines/"
	vmPath           = "/teams/{team}/virtual_machines/{resource}/"
)

// VirtualMachineRepository implements repositories.VirtualMachineRepository over the API client.
type VirtualMachineRepository struct {
	client *Client
}

// NewVirtualMachineRepository creates a virtual machine repository backed by client.
func NewVirtualMachineRepository(client *Client) repositories.VirtualMachineRepository {
	return &VirtualMachineRepository{client: client}
}

func (r *VirtualMachineRepository) List(ctx context.Context, team string) ([]entities.VirtualMachineDetails, error) {
	var result []entities.VirtualMachineDetails
	if err := r.client.doRequest(ctx, http.MethodGet, teamPath(vmCollectionPath, team, ""), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *VirtualMachineRepository) Get(
	ctx context.Context,
	team, name string,
) (*entities.VirtualMachineDetails, error) {
	var result entities.VirtualMachineDetails
	if err := r.client.doRequest(ctx, http.MethodGet, teamPath(vmPath, team, name), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *VirtualMachineRepository) Provision(
	ctx context.Context,
	team string,
	specs entities.VirtualMachineSpecs,
) (*entities.VirtualMachineDetails, error) {
	var result entities.VirtualMachineDetails
	if err := r.client.doRequest(ctx, http.MethodPost, teamPath(vmCollectionPath, team, ""), specs, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *VirtualMachineRepository) Update(
	ctx context.Context,
	team, name string,
	update entities.VirtualMachineUpdate,
) error {
	return r.client.doRequest(ctx, http.MethodPatch, teamPath(vmPath, team, name), update, nil)
}

func (r *VirtualMachineRepository) Delete(ctx context.Context, team, name string) error {
	return r.client.doRequest(ctx, http.MethodDelete, teamPath(vmPath, team, name), nil, nil)
}

func (r *VirtualMachineRepository) ListAvailable(
	ctx context.Context,
	team string,
) ([]entities.AvailableVirtualMachine, error) {
	var result []entities.AvailableVirtualMachine
	path := teamPath(vmCollectionPath+"available/", team, "")
	if err := r.client.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *VirtualMachineRepository) GetState(
	ctx context.Context,
	team, name string,
) (*entities.VirtualMachineState, error) {
	var result entities.VirtualMachineState
	if err := r.client.doRequest(ctx, http.MethodGet, teamPath(vmPath+"state/", team, name), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Do posts one of the lifecycle actions (start, stop, shutdown, reboot, hard-reset, rebuild).
func (r *VirtualMachineRepository) Do(
	ctx context.Context,
	team, name string,
	action entities.VirtualMachineAction,
) error {
	path := teamPath(vmPath+string(action)+"/", team, name)
	return r.client.doRequest(ctx, http.MethodPost, path, nil, nil)
}
