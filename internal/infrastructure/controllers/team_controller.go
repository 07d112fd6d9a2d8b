package controllers

import (
	"github.com/spf13/cobra"

	"github.com/hotaisle/hotaisle-cli/internal/domain/commands"
	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
)

// TeamController groups the team and team membership subcommands.
type TeamController struct {
	command  commands.Team
	session  *entities.Session
	printers *PrinterRegistry
}

// NewTeamController creates a new TeamController.
func NewTeamController(
	command commands.Team, session *entities.Session, printers *PrinterRegistry,
) *TeamController {
	return &TeamController{command: command, session: session, printers: printers}
}

// GetBind returns the Cobra command metadata for the team group.
func (it *TeamController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "team",
		Short:   "Manage teams",
		Aliases: []string{"teams"},
		Long: `Manage the teams you belong to.

Commands acting on one team use --team, falling back to default_team
from the settings.`,
	}
}

// GetChildren returns the team subcommands.
func (it *TeamController) GetChildren() []entities.Controller {
	return []entities.Controller{
		renderController(listBind("List your teams"), it.session, it.printers,
			func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
				return it.command.List(command.Context(), settings)
			}),
		teamScoped(renderController(entities.ControllerBind{
			Use:   "get",
			Short: "Show a team and its members",
			Args:  cobra.NoArgs,
		}, it.session, it.printers,
			func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
				return it.command.Get(command.Context(), settings, teamFlag(command))
			})),
		teamScoped(renderController(entities.ControllerBind{
			Use:   "balance",
			Short: "Show the credit balance of a team",
			Args:  cobra.NoArgs,
		}, it.session, it.printers,
			func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
				return it.command.Balance(command.Context(), settings, teamFlag(command))
			})),
		renderController(entities.ControllerBind{
			Use:   "invitations",
			Short: "List your pending team invitations",
			Args:  cobra.NoArgs,
		}, it.session, it.printers,
			func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
				return it.command.Invitations(command.Context(), settings)
			}),
		renderController(entities.ControllerBind{
			Use:   "accept <team>",
			Short: "Accept an invitation to join a team",
			Args:  cobra.ExactArgs(1),
		}, it.session, it.printers,
			func(command *cobra.Command, arguments []string, settings *entities.Settings) (any, error) {
				return it.command.Accept(command.Context(), settings, arguments[0])
			}),
		&groupController{
			bind: entities.ControllerBind{
				Use:     "members",
				Short:   "Manage team members",
				Aliases: []string{"member"},
			},
			children: it.memberChildren(),
		},
	}
}

func (it *TeamController) memberChildren() []entities.Controller {
	return []entities.Controller{
		teamScoped(renderController(entities.ControllerBind{
			Use:   "invitations",
			Short: "List the pending invitations of a team",
			Args:  cobra.NoArgs,
		}, it.session, it.printers,
			func(command *cobra.Command, _ []string, settings *entities.Settings) (any, error) {
				return it.command.Members(command.Context(), settings, teamFlag(command))
			})),
		&leafController{
			bind: entities.ControllerBind{
				Use:   "invite <email>",
				Short: "Invite someone to a team",
				Args:  cobra.ExactArgs(1),
			},
			run: it.invite,
			flags: func(command *cobra.Command) {
				addTeamFlag(command)
				command.Flags().String("name", "", "Name of the invitee")
				command.Flags().StringSlice("role", nil, "Role to grant (repeatable)")
			},
		},
		teamScoped(&leafController{
			bind: entities.ControllerBind{
				Use:     "remove <email>",
				Short:   "Remove a member or revoke their invitation",
				Aliases: []string{"rm"},
				Args:    cobra.ExactArgs(1),
			},
			run: func(command *cobra.Command, arguments []string) error {
				return it.command.Remove(command.Context(), it.session.CurrentSettings(), teamFlag(command), arguments[0])
			},
		}),
	}
}

func (it *TeamController) invite(command *cobra.Command, arguments []string) error {
	name, _ := command.Flags().GetString("name")
	roles, _ := command.Flags().GetStringSlice("role")
	if roles == nil {
		roles = []string{}
	}
	return it.command.Invite(command.Context(), it.session.CurrentSettings(), teamFlag(command),
		entities.TeamInvitationRequest{Name: name, Email: arguments[0], Roles: roles})
}
