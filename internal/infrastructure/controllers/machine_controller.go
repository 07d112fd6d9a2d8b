package controllers

import (
	"github.com/spf13/cobra"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

func nameBind(use, short string) entities.ControllerBind {
	return entities.ControllerBind{Use: use + " <name>", Short: short, Args: cobra.ExactArgs(1)}
}

// VirtualMachineController groups the virtual machine subcommands.
type VirtualMachineController struct {
	command  commands.VirtualMachine
	session  *entities.Session
	printers *PrinterRegistry
}

// NewVirtualMachineController creates a new VirtualMachineController.
func NewVirtualMachineController(
	command commands.VirtualMachine, session *entities.Session, printers *PrinterRegistry,
) *VirtualMachineController {
	return &VirtualMachineController{command: command, session: session, printers: printers}
}

// GetBind returns the Cobra command metadata for the vm group.
func (it *VirtualMachineController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "vm",
		Short:   "Manage virtual machines",
		Aliases: []string{"vms", "virtual-machine"},
	}
}

// GetChildren returns the vm subcommands, one per lifecycle action.
func (it *VirtualMachineController) GetChildren() []entities.Controller {
	children := []entities.Controller{
		teamScoped(renderController(listBind("List the virtual machines of a team"), it.session, it.printers,
			func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
				return it.command.List(command.Context(), settings, teamFlag(command))
			})),
		teamScoped(renderController(nameBind("get", "Show a virtual machine"), it.session, it.printers,
			func(command *cobra.Command, arguments []string, settings *entities.Settings) (any, error) {
				return it.command.Get(command.Context(), settings, teamFlag(command), arguments[0])
			})),
		teamScoped(renderController(entities.ControllerBind{
			Use:   "available",
			Short: "List the virtual machine configurations in stock",
			Args:  cobra.NoArgs,
		}, it.session, it.printers,
			func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
				return it.command.Available(command.Context(), settings, teamFlag(command))
			})),
		teamScoped(renderController(nameBind("state", "Show the hypervisor state of a virtual machine"),
			it.session, it.printers,
			func(command *cobra.Command, arguments []string, settings *entities.Settings) (any, error) {
				return it.command.State(command.Context(), settings, teamFlag(command), arguments[0])
			})),
	}

	for _, action := range []struct {
		action entities.VirtualMachineAction
		short  string
	}{
		{entities.VirtualMachineStart, "Start a virtual machine"},
		{entities.VirtualMachineStop, "Stop a virtual machine immediately"},
		{entities.VirtualMachineShutdown, "Shut a virtual machine down through its guest OS"},
		{entities.VirtualMachineReboot, "Reboot a virtual machine"},
		{entities.VirtualMachineHardReset, "Reset a virtual machine"},
		{entities.VirtualMachineRebuild, "Reinstall a virtual machine from its image"},
	} {
		children = append(children, teamScoped(&leafController{
			bind: nameBind(string(action.action), action.short),
			run: func(command *cobra.Command, arguments []string) error {
				return it.command.Do(command.Context(), it.session.CurrentSettings(),
					teamFlag(command), arguments[0], action.action)
			},
		}))
	}

	return append(children, teamScoped(&leafController{
		bind: nameBind("delete", "Destroy a virtual machine"),
		run: func(command *cobra.Command, arguments []string) error {
			return it.command.Delete(command.Context(), it.session.CurrentSettings(), teamFlag(command), arguments[0])
		},
	}))
}

// BareMetalController groups the bare metal server subcommands.
type BareMetalController struct {
	command  commands.BareMetal
	session  *entities.Session
	printers *PrinterRegistry
}

// NewBareMetalController creates a new BareMetalController.
func NewBareMetalController(
	command commands.BareMetal, session *entities.Session, printers *PrinterRegistry,
) *BareMetalController {
	return &BareMetalController{command: command, session: session, printers: printers}
}

// GetBind returns the Cobra command metadata for the baremetal group.
func (it *BareMetalController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "baremetal",
		Short:   "Manage bare metal servers",
		Aliases: []string{"bm", "bare-metal"},
	}
}

// GetChildren returns the baremetal subcommands, one per power action.
func (it *BareMetalController) GetChildren() []entities.Controller {
	children := []entities.Controller{
		teamScoped(renderController(listBind("List the bare metal servers of a team"), it.session, it.printers,
			func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
				return it.command.List(command.Context(), settings, teamFlag(command))
			})),
		teamScoped(renderController(nameBind("get", "Show a bare metal server"), it.session, it.printers,
			func(command *cobra.Command, arguments []string, settings *entities.Settings) (any, error) {
				return it.command.Get(command.Context(), settings, teamFlag(command), arguments[0])
			})),
		teamScoped(renderController(entities.ControllerBind{
			Use:   "available",
			Short: "List the bare metal configurations in stock",
			Args:  cobra.NoArgs,
		}, it.session, it.printers,
			func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
				return it.command.Available(command.Context(), settings, teamFlag(command))
			})),
		teamScoped(renderController(nameBind("power", "Show the power state of a server"), it.session, it.printers,
			func(command *cobra.Command, arguments []string, settings *entities.Settings) (any, error) {
				return it.command.PowerState(command.Context(), settings, teamFlag(command), arguments[0])
			})),
	}

	for _, power := range []struct {
		use    string
		action entities.BareMetalPowerAction
		short  string
	}{
		{"power-on", entities.BareMetalPowerOn, "Power a server on"},
		{"shutdown", entities.BareMetalGracefulShutdown, "Shut a server down gracefully"},
		{"force-shutdown", entities.BareMetalForceShutdown, "Cut the power of a server"},
		{"warm-reboot", entities.BareMetalWarmReboot, "Reboot a server through its OS"},
		{"cold-reboot", entities.BareMetalColdReboot, "Power cycle a server"},
		{"ac-reset", entities.BareMetalACReset, "Reset the AC power of a server"},
	} {
		children = append(children, teamScoped(&leafController{
			bind: nameBind(power.use, power.short),
			run: func(command *cobra.Command, arguments []string) error {
				return it.command.Power(command.Context(), it.session.CurrentSettings(),
					teamFlag(command), arguments[0], power.action)
			},
		}))
	}

	return append(children,
		teamScoped(renderController(nameBind("reinstall", "Reinstall the operating system of a server"),
			it.session, it.printers,
			func(command *cobra.Command, arguments []string, settings *entities.Settings) (any, error) {
				return it.command.Reinstall(command.Context(), settings, teamFlag(command), arguments[0])
			})),
		teamScoped(renderController(nameBind("console", "Show the remote console URL of a server"),
			it.session, it.printers,
			func(command *cobra.Command, arguments []string, settings *entities.Settings) (any, error) {
				return it.command.Console(command.Context(), settings, teamFlag(command), arguments[0])
			})),
		&groupController{
			bind: entities.ControllerBind{
				Use:   "support-access",
				Short: "Grant or revoke support staff access to a server",
			},
			children: []entities.Controller{
				it.supportAccess("enable", "Grant support staff access to a server", true),
				it.supportAccess("disable", "Revoke support staff access to a server", false),
			},
		},
		teamScoped(&leafController{
			bind: nameBind("delete", "Release a server reservation"),
			run: func(command *cobra.Command, arguments []string) error {
				return it.command.Delete(command.Context(), it.session.CurrentSettings(), teamFlag(command), arguments[0])
			},
		}),
	)
}

func (it *BareMetalController) supportAccess(use, short string, enabled bool) entities.Controller {
	return teamScoped(&leafController{
		bind: nameBind(use, short),
		run: func(command *cobra.Command, arguments []string) error {
			return it.command.SupportAccess(command.Context(), it.session.CurrentSettings(),
				teamFlag(command), arguments[0], enabled)
		},
	})
}
