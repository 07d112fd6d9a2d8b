package controllers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// ConfigController groups the "config get" and "config set" subcommands.
type ConfigController struct {
	command commands.Config
	session *entities.Session
}

// NewConfigController creates a new ConfigController.
func NewConfigController(command commands.Config, session *entities.Session) *ConfigController {
	return &ConfigController{command: command, session: session}
}

// GetBind returns the Cobra command metadata for the config group.
func (it *ConfigController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "config",
		Short: "Read and write settings",
		Long: fmt.Sprintf(`Read and write the settings file.

Keys: %s.
The token may be given inline, as a ${ENV_VAR} reference, or as the path of a
file holding it.`, strings.Join(entities.SettingKeys, ", ")),
	}
}

// GetChildren returns the get and set subcommands.
func (it *ConfigController) GetChildren() []entities.Controller {
	return []entities.Controller{
		&leafController{
			bind: entities.ControllerBind{
				Use:   "get <key>",
				Short: "Print a setting",
				Args:  cobra.ExactArgs(1),
			},
			run: it.get,
		},
		&leafController{
			bind: entities.ControllerBind{
				Use:   "set <key> [value]",
				Short: "Change a setting; an empty value leaves it untouched",
				Args:  cobra.RangeArgs(1, 2), //nolint:mnd // key and optional value
			},
			run: it.set,
		},
	}
}

func (it *ConfigController) get(command *cobra.Command, arguments []string) error {
	value, err := it.command.Get(it.session.CurrentSettings(), arguments[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(command.OutOrStdout(), value)
	return err
}

func (it *ConfigController) set(_ *cobra.Command, arguments []string) error {
	value := ""
	if len(arguments) > 1 {
		value = arguments[1]
	}
	return it.command.Set(it.session.CurrentSettings(), arguments[0], value)
}
