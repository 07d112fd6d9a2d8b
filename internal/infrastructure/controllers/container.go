package controllers

import (
	"go.uber.org/dig"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	for _, constructor := range []interface{}{
		NewPrinterRegistry,
		NewRootController,
		NewConfigController,
		NewUserController,
		NewTeamController,
		NewVirtualMachineController,
		NewBareMetalController,
		NewFormulaController,
		NewInstallController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates the top-level subcommands for the AppInternal.
func NewControllers(
	configController *ConfigController,
	userController *UserController,
	teamController *TeamController,
	virtualMachineController *VirtualMachineController,
	bareMetalController *BareMetalController,
	formulaController *FormulaController,
	installController *InstallController,
) *[]entities.Controller {
	return &[]entities.Controller{
		configController,
		userController,
		teamController,
		virtualMachineController,
		bareMetalController,
		formulaController,
		installController,
	}
}
