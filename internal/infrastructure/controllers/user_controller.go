package controllers

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// UserController prints the authenticated user and holds the account subcommands.
type UserController struct {
	command  commands.User
	session  *entities.Session
	printers *PrinterRegistry
}

// NewUserController creates a new UserController.
func NewUserController(
	command commands.User, session *entities.Session, printers *PrinterRegistry,
) *UserController {
	return &UserController{command: command, session: session, printers: printers}
}

// GetBind returns the Cobra command metadata for the user command.
func (it *UserController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "user",
		Short: "Show the authenticated user",
		Long:  "Show the authenticated user and the teams they belong to, or manage their SSH and API keys.",
		Args:  cobra.NoArgs,
	}
}

// Execute prints the authenticated user.
func (it *UserController) Execute(command *cobra.Command, _ []string) error {
	user, err := it.command.Get(command.Context(), it.session.CurrentSettings())
	if err != nil {
		return err
	}
	return render(command, it.printers, user)
}

// GetChildren returns the update, ssh-keys and api-keys subcommands.
func (it *UserController) GetChildren() []entities.Controller {
	return []entities.Controller{
		&leafController{
			bind: entities.ControllerBind{
				Use:   "update",
				Short: "Change the name of the authenticated user",
				Args:  cobra.NoArgs,
			},
			run: it.update,
			flags: func(command *cobra.Command) {
				command.Flags().String("name", "", "New display name")
				_ = command.MarkFlagRequired("name")
			},
		},
		&groupController{
			bind: entities.ControllerBind{
				Use:     "ssh-keys",
				Short:   "Manage SSH keys",
				Aliases: []string{"ssh-key"},
			},
			children: []entities.Controller{
				renderController(listBind("List SSH keys"), it.session, it.printers,
					func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
						return it.command.ListSSHKeys(command.Context(), settings)
					}),
				&leafController{
					bind: entities.ControllerBind{
						Use:   "add <public-key|file>",
						Short: "Register a public key, given inline or as a file such as ~/.ssh/id_ed25519.pub",
						Args:  cobra.ExactArgs(1),
					},
					run: it.addSSHKey,
				},
				&leafController{
					bind: entities.ControllerBind{
						Use:   "delete <fingerprint>",
						Short: "Remove an SSH key",
						Args:  cobra.ExactArgs(1),
					},
					run: func(command *cobra.Command, arguments []string) error {
						return it.command.DeleteSSHKey(command.Context(), it.session.CurrentSettings(), arguments[0])
					},
				},
			},
		},
		&groupController{
			bind: entities.ControllerBind{
				Use:     "api-keys",
				Short:   "Manage API keys",
				Aliases: []string{"api-key"},
			},
			children: []entities.Controller{
				renderController(listBind("List API keys"), it.session, it.printers,
					func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
						return it.command.ListAPIKeys(command.Context(), settings)
					}),
				renderController(entities.ControllerBind{
					Use:   "get <prefix>",
					Short: "Show an API key",
					Args:  cobra.ExactArgs(1),
				}, it.session, it.printers,
					func(command *cobra.Command, arguments []string, settings *entities.Settings) (any, error) {
						return it.command.GetAPIKey(command.Context(), settings, arguments[0])
					}),
				&leafController{
					bind: entities.ControllerBind{
						Use:   "delete <prefix>",
						Short: "Revoke an API key",
						Args:  cobra.ExactArgs(1),
					},
					run: func(command *cobra.Command, arguments []string) error {
						return it.command.DeleteAPIKey(command.Context(), it.session.CurrentSettings(), arguments[0])
					},
				},
			},
		},
	}
}

func (it *UserController) update(command *cobra.Command, _ []string) error {
	name, _ := command.Flags().GetString("name")
	user, err := it.command.Update(command.Context(), it.session.CurrentSettings(), name)
	if err != nil {
		return err
	}
	return render(command, it.printers, user)
}

func (it *UserController) addSSHKey(command *cobra.Command, arguments []string) error {
	key := arguments[0]
	if info, err := os.Stat(key); err == nil && !info.IsDir() {
		data, readErr := os.ReadFile(key)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", key, readErr)
		}
		logger.Debugf("Read public key from %s", key)
		key = string(data)
	}

	added, err := it.command.AddSSHKey(command.Context(), it.session.CurrentSettings(), key)
	if err != nil {
		return err
	}
	return render(command, it.printers, added)
}
