package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []interface{}{
		NewConfigCommand,
		NewUserCommand,
		NewTeamCommand,
		NewVirtualMachineCommand,
		NewBareMetalCommand,
		NewFormulaCommand,
		NewInstallCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	for _, binding := range []interface{}{
		func(impl *ConfigCommand) Config { return impl },
		func(impl *UserCommand) User { return impl },
		func(impl *TeamCommand) Team { return impl },
		func(impl *VirtualMachineCommand) VirtualMachine { return impl },
		func(impl *BareMetalCommand) BareMetal { return impl },
		func(impl *FormulaCommand) Formula { return impl },
		func(impl *InstallCommand) Install { return impl },
	} {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
