//go:build unit

package hotaisle_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

func TestRoutes(t *testing.T) {
	t.Parallel()

	type apis struct {
		users repositories.UserRepository
		teams repositories.TeamRepository
		vms   repositories.VirtualMachineRepository
		metal repositories.BareMetalRepository
	}

	for _, tc := range []struct {
		name   string
		call   func(ctx context.Context, api apis) error
		method string
		path   string
	}{
		{
			name: "delete SSH key",
			call: func(ctx context.Context, api apis) error {
				return api.users.DeleteSSHKey(ctx, "SHA256:ab/cd")
			},
			method: http.MethodDelete,
			path:   "/api/user/ssh_keys/SHA256:ab%2Fcd/",
		},
		{
			name: "list invitations",
			call: func(ctx context.Context, api apis) error {
				_, err := api.teams.ListInvitations(ctx)
				return err
			},
			method: http.MethodGet,
			path:   "/api/teams/invitations/",
		},
		{
			name: "accept invitation",
			call: func(ctx context.Context, api apis) error {
				_, err := api.teams.AcceptInvitation(ctx, "acme")
				return err
			},
			method: http.MethodPost,
			path:   "/api/teams/acme/accept-invitation/",
		},
		{
			name: "invite member",
			call: func(ctx context.Context, api apis) error {
				return api.teams.InviteMember(ctx, "acme", entities.TeamInvitationRequest{})
			},
			method: http.MethodPost,
			path:   "/api/teams/acme/members/invitations/",
		},
		{
			name: "remove member",
			call: func(ctx context.Context, api apis) error {
				return api.teams.RemoveMember(ctx, "acme", "ada@example.com")
			},
			method: http.MethodDelete,
			path:   "/api/teams/acme/members/ada@example.com/",
		},
		{
			name: "virtual machine state",
			call: func(ctx context.Context, api apis) error {
				_, err := api.vms.GetState(ctx, "acme", "vm-1")
				return err
			},
			method: http.MethodGet,
			path:   "/api/teams/acme/virtual_machines/vm-1/state/",
		},
		{
			name: "virtual machine action",
			call: func(ctx context.Context, api apis) error {
				return api.vms.Do(ctx, "acme", "vm-1", entities.VirtualMachineHardReset)
			},
			method: http.MethodPost,
			path:   "/api/teams/acme/virtual_machines/vm-1/hard-reset/",
		},
		{
			name: "available virtual machines",
			call: func(ctx context.Context, api apis) error {
				_, err := api.vms.ListAvailable(ctx, "acme")
				return err
			},
			method: http.MethodGet,
			path:   "/api/teams/acme/virtual_machines/available/",
		},
		{
			name: "bare metal power action",
			call: func(ctx context.Context, api apis) error {
				return api.metal.Power(ctx, "acme", "node-1", entities.BareMetalColdReboot)
			},
			method: http.MethodPost,
			path:   "/api/teams/acme/bare_metal/node-1/power/cold_reboot/",
		},
		{
			name: "bare metal reinstall",
			call: func(ctx context.Context, api apis) error {
				_, err := api.metal.Reinstall(ctx, "acme", "node-1")
				return err
			},
			method: http.MethodPost,
			path:   "/api/teams/acme/bare_metal/node-1/reinstall/",
		},
		{
			name: "enable support access",
			call: func(ctx context.Context, api apis) error {
				return api.metal.SetSupportAccess(ctx, "acme", "node-1", true)
			},
			method: http.MethodPut,
			path:   "/api/teams/acme/bare_metal/node-1/support_access_enable/",
		},
		{
			name: "disable support access",
			call: func(ctx context.Context, api apis) error {
				return api.metal.SetSupportAccess(ctx, "acme", "node-1", false)
			},
			method: http.MethodDelete,
			path:   "/api/teams/acme/bare_metal/node-1/support_access_enable/",
		},
	} {
		t.Run("should route "+tc.name, func(t *testing.T) {
			t.Parallel()

			// given
			server, recorder := newTestServer(t, http.StatusNoContent, "")
			factory := newFactory(server)
			api := apis{
				users: factory.Users("token"),
				teams: factory.Teams("token"),
				vms:   factory.VirtualMachines("token"),
				metal: factory.BareMetal("token"),
			}

			// when
			err := tc.call(context.Background(), api)

			// then
			require.NoError(t, err)
			requests := recorder.all()
			require.Len(t, requests, 1)
			assert.Equal(t, tc.method, requests[0].Method)
			assert.Equal(t, tc.path, requests[0].EscapedPath)
		})
	}
}
