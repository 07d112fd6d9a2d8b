package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind carries the Cobra command metadata of a controller.
type ControllerBind struct {
	Use     string
	Short   string
	Long    string
	Aliases []string
	Args    cobra.PositionalArgs
}

// Controller is anything that can be mounted as a command in the CLI tree.
type Controller interface {
	GetBind() ControllerBind
}

// RunnableController is a leaf command.
type RunnableController interface {
	Controller
	Execute(command *cobra.Command, arguments []string) error
}

// GroupController is a command that only holds subcommands.
type GroupController interface {
	Controller
	GetChildren() []Controller
}

// FlaggedController registers its own flags on the Cobra command built for it.
type FlaggedController interface {
	AddFlags(command *cobra.Command)
}
