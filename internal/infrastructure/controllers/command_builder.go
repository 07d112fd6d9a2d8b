package controllers

import (
	"github.com/spf13/cobra"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// BuildCommand turns a controller, and recursively its children, into a Cobra command tree.
func BuildCommand(controller entities.Controller) *cobra.Command {
	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	command := &cobra.Command{
		Use:          bind.Use,
		Short:        bind.Short,
		Long:         bind.Long,
		Aliases:      bind.Aliases,
		Args:         bind.Args,
		SilenceUsage: true,
	}

	if runnable, ok := controller.(entities.RunnableController); ok {
		command.RunE = runnable.Execute
	}
	if flagged, ok := controller.(entities.FlaggedController); ok {
		flagged.AddFlags(command)
	}
	if group, ok := controller.(entities.GroupController); ok {
		for _, child := range group.GetChildren() {
			command.AddCommand(BuildCommand(child))
		}
	}

	return command
}

// BuildRootCommand builds the whole CLI: the root command, its persistent
// flags and settings loading, and every subcommand.
func BuildRootCommand(root *RootController, subcommands []entities.Controller) *cobra.Command {
	command := BuildCommand(root)
	command.Version = root.Version()
	command.SilenceErrors = true
	command.PersistentPreRunE = root.LoadSettings

	for _, controller := range subcommands {
		command.AddCommand(BuildCommand(controller))
	}
	return command
}
