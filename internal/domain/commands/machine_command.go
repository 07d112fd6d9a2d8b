package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// VirtualMachine is the interface for the commands acting on a team's virtual machines.
type VirtualMachine interface {
	List(ctx context.Context, settings *entities.Settings, team string) ([]entities.VirtualMachineDetails, error)
	Get(ctx context.Context, settings *entities.Settings, team, name string) (*entities.VirtualMachineDetails, error)
	Available(
		ctx context.Context, settings *entities.Settings, team string,
	) ([]entities.AvailableVirtualMachine, error)
	State(ctx context.Context, settings *entities.Settings, team, name string) (*entities.VirtualMachineState, error)
	Do(ctx context.Context, settings *entities.Settings, team, name string, action entities.VirtualMachineAction) error
	Delete(ctx context.Context, settings *entities.Settings, team, name string) error
}

// BareMetal is the interface for the commands acting on a team's bare metal servers.
type BareMetal interface {
	List(ctx context.Context, settings *entities.Settings, team string) ([]entities.BareMetalServerDetails, error)
	Get(ctx context.Context, settings *entities.Settings, team, name string) (*entities.BareMetalServerDetails, error)
	Available(ctx context.Context, settings *entities.Settings, team string) ([]entities.AvailableBareMetal, error)
	PowerState(
		ctx context.Context, settings *entities.Settings, team, name string,
	) (*entities.BareMetalPowerState, error)
	Power(
		ctx context.Context, settings *entities.Settings, team, name string, action entities.BareMetalPowerAction,
	) error
	Reinstall(
		ctx context.Context, settings *entities.Settings, team, name string,
	) (*entities.BareMetalServerDetails, error)
	Console(ctx context.Context, settings *entities.Settings, team, name string) (*entities.ConsoleURL, error)
	SupportAccess(ctx context.Context, settings *entities.Settings, team, name string, enabled bool) error
	Delete(ctx context.Context, settings *entities.Settings, team, name string) error
}

// teamScope resolves the token and the team handle shared by every machine command.
func teamScope(settings *entities.Settings, team string) (string, string, error) {
	handle, err := settings.ResolveTeam(team)
	if err != nil {
		return "", "", err
	}
	token, err := settings.RequireToken()
	if err != nil {
		return "", "", err
	}
	return token, handle, nil
}

func requireName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name", ErrEmptyArgument)
	}
	return nil
}

// VirtualMachineCommand talks to the virtual machine endpoints of a team.
type VirtualMachineCommand struct {
	factory repositories.APIRepositoryFactory
}

// NewVirtualMachineCommand creates a new VirtualMachineCommand.
func NewVirtualMachineCommand(factory repositories.APIRepositoryFactory) *VirtualMachineCommand {
	return &VirtualMachineCommand{factory: factory}
}

func (it *VirtualMachineCommand) repository(
	settings *entities.Settings, team string,
) (repositories.VirtualMachineRepository, string, error) {
	token, handle, err := teamScope(settings, team)
	if err != nil {
		return nil, "", err
	}
	return it.factory.VirtualMachines(token), handle, nil
}

// List returns the virtual machines of a team.
func (it *VirtualMachineCommand) List(
	ctx context.Context, settings *entities.Settings, team string,
) ([]entities.VirtualMachineDetails, error) {
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.List(ctx, handle)
}

// Get returns one virtual machine.
func (it *VirtualMachineCommand) Get(
	ctx context.Context, settings *entities.Settings, team, name string,
) (*entities.VirtualMachineDetails, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.Get(ctx, handle, name)
}

// Available returns the VM configurations a team can provision.
func (it *VirtualMachineCommand) Available(
	ctx context.Context, settings *entities.Settings, team string,
) ([]entities.AvailableVirtualMachine, error) {
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.ListAvailable(ctx, handle)
}

// State returns the hypervisor state of a virtual machine.
func (it *VirtualMachineCommand) State(
	ctx context.Context, settings *entities.Settings, team, name string,
) (*entities.VirtualMachineState, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.GetState(ctx, handle, name)
}

// Do runs a lifecycle action on a virtual machine.
func (it *VirtualMachineCommand) Do(
	ctx context.Context, settings *entities.Settings, team, name string, action entities.VirtualMachineAction,
) error {
	if err := action.Validate(); err != nil {
		return err
	}
	if err := requireName(name); err != nil {
		return err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return err
	}
	if err = repository.Do(ctx, handle, name, action); err != nil {
		return err
	}
	logger.Infof("Sent %s to virtual machine %s", action, name)
	return nil
}

// Delete destroys a virtual machine.
func (it *VirtualMachineCommand) Delete(ctx context.Context, settings *entities.Settings, team, name string) error {
	if err := requireName(name); err != nil {
		return err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return err
	}
	if err = repository.Delete(ctx, handle, name); err != nil {
		return err
	}
	logger.Infof("Deleted virtual machine %s", name)
	return nil
}

// BareMetalCommand talks to the bare metal endpoints of a team.
type BareMetalCommand struct {
	factory repositories.APIRepositoryFactory
}

// NewBareMetalCommand creates a new BareMetalCommand.
func NewBareMetalCommand(factory repositories.APIRepositoryFactory) *BareMetalCommand {
	return &BareMetalCommand{factory: factory}
}

func (it *BareMetalCommand) repository(
	settings *entities.Settings, team string,
) (repositories.BareMetalRepository, string, error) {
	token, handle, err := teamScope(settings, team)
	if err != nil {
		return nil, "", err
	}
	return it.factory.BareMetal(token), handle, nil
}

// List returns the bare metal servers of a team.
func (it *BareMetalCommand) List(
	ctx context.Context, settings *entities.Settings, team string,
) ([]entities.BareMetalServerDetails, error) {
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.List(ctx, handle)
}

// Get returns one bare metal server.
func (it *BareMetalCommand) Get(
	ctx context.Context, settings *entities.Settings, team, name string,
) (*entities.BareMetalServerDetails, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.Get(ctx, handle, name)
}

// Available returns the server configurations a team can reserve.
func (it *BareMetalCommand) Available(
	ctx context.Context, settings *entities.Settings, team string,
) ([]entities.AvailableBareMetal, error) {
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.ListAvailable(ctx, handle)
}

// PowerState returns the power state reported by a server's BMC.
func (it *BareMetalCommand) PowerState(
	ctx context.Context, settings *entities.Settings, team, name string,
) (*entities.BareMetalPowerState, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.GetPowerState(ctx, handle, name)
}

// Power runs a power action on a server.
func (it *BareMetalCommand) Power(
	ctx context.Context, settings *entities.Settings, team, name string, action entities.BareMetalPowerAction,
) error {
	if err := action.Validate(); err != nil {
		return err
	}
	if err := requireName(name); err != nil {
		return err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return err
	}
	if err = repository.Power(ctx, handle, name, action); err != nil {
		return err
	}
	logger.Infof("Sent %s to server %s", action, name)
	return nil
}

// Reinstall reinstalls the operating system of a server.
func (it *BareMetalCommand) Reinstall(
	ctx context.Context, settings *entities.Settings, team, name string,
) (*entities.BareMetalServerDetails, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.Reinstall(ctx, handle, name)
}

// Console returns the URL of a server's remote console.
func (it *BareMetalCommand) Console(
	ctx context.Context, settings *entities.Settings, team, name string,
) (*entities.ConsoleURL, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return nil, err
	}
	return repository.GetConsoleURL(ctx, handle, name)
}

// SupportAccess grants or revokes support staff access to a server.
func (it *BareMetalCommand) SupportAccess(
	ctx context.Context, settings *entities.Settings, team, name string, enabled bool,
) error {
	if err := requireName(name); err != nil {
		return err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return err
	}
	return repository.SetSupportAccess(ctx, handle, name, enabled)
}

// Delete releases a server reservation.
func (it *BareMetalCommand) Delete(ctx context.Context, settings *entities.Settings, team, name string) error {
	if err := requireName(name); err != nil {
		return err
	}
	repository, handle, err := it.repository(settings, team)
	if err != nil {
		return err
	}
	if err = repository.Delete(ctx, handle, name); err != nil {
		return err
	}
	logger.Infof("Released server %s", name)
	return nil
}
