package controllers

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

const (
	FlagConfigFile = "config-file"
	FlagOutput     = "output"
	FlagVerbose    = "verbose"
	FlagTeam       = "team"
)

// EnvDebug forces debug logging when set to "true".
const EnvDebug = "DEBUG"

func addTeamFlag(command *cobra.Command) {
	command.Flags().StringP(FlagTeam, "t", "", "Team handle (default: default_team from the settings)")
}

func teamFlag(command *cobra.Command) string {
	team, _ := command.Flags().GetString(FlagTeam)
	return team
}

// render prints value to the command's stdout in the format picked with --output.
func render(command *cobra.Command, printers *PrinterRegistry, value any) error {
	printer, err := printers.Get(outputFormat(command))
	if err != nil {
		return err
	}
	return printer(command.OutOrStdout(), value)
}

// debugRequested reports whether --verbose or DEBUG=true asks for debug logs.
func debugRequested(command *cobra.Command) bool {
	verbose, _ := command.Flags().GetBool(FlagVerbose)
	return verbose || os.Getenv(EnvDebug) == "true"
}

// leafController is a runnable command whose whole behaviour is a closure.
// Families of near-identical commands (VM actions, power actions) use it.
type leafController struct {
	bind  entities.ControllerBind
	run   func(command *cobra.Command, arguments []string) error
	flags func(command *cobra.Command)
}

func (it *leafController) GetBind() entities.ControllerBind {
	return it.bind
}

func (it *leafController) Execute(command *cobra.Command, arguments []string) error {
	return it.run(command, arguments)
}

func (it *leafController) AddFlags(command *cobra.Command) {
	if it.flags != nil {
		it.flags(command)
	}
}

// groupController only holds subcommands.
type groupController struct {
	bind     entities.ControllerBind
	children []entities.Controller
}

func (it *groupController) GetBind() entities.ControllerBind {
	return it.bind
}

func (it *groupController) GetChildren() []entities.Controller {
	return it.children
}

// fetchFunc loads what a read-only command prints.
type fetchFunc func(command *cobra.Command, arguments []string, settings *entities.Settings) (any, error)

// renderController builds a leaf command that prints whatever fetch returns.
func renderController(
	bind entities.ControllerBind, session *entities.Session, printers *PrinterRegistry, fetch fetchFunc,
) *leafController {
	return &leafController{
		bind: bind,
		run: func(command *cobra.Command, arguments []string) error {
			value, err := fetch(command, arguments, session.CurrentSettings())
			if err != nil {
				return err
			}
			return render(command, printers, value)
		},
	}
}

// teamScoped adds the --team flag to a leaf command.
func teamScoped(controller *leafController) *leafController {
	controller.flags = addTeamFlag
	return controller
}

func listBind(short string) entities.ControllerBind {
	return entities.ControllerBind{Use: "list", Short: short, Aliases: []string{"ls"}, Args: cobra.NoArgs}
}
