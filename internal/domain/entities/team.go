package entities

import "time"

// Team is a billing and access boundary owning machines.
type Team struct {
	Handle                    string `json:"handle"`
	Name                      string `json:"name"`
	Description               string `json:"description,omitempty"`
	SelfServicePaymentEnabled bool   `json:"self_service_payment_enabled,omitempty"`
	MaximumVirtualMachines    int64  `json:"maximum_virtual_machines,omitempty"`
	MaximumBareMetalServers   int64  `json:"maximum_bare_metal_servers,omitempty"`
}

// TeamUpdate changes a team's identity fields.
type TeamUpdate struct {
	Handle      string `json:"handle"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserTeam is a team seen from one of its members.
type UserTeam struct {
	Team
	Roles          []string `json:"roles"`
	EffectiveRoles []string `json:"effective_roles"`
	Invitation     bool     `json:"invitation,omitempty"`
}

// UserTeamWithMembers adds the member list.
type UserTeamWithMembers struct {
	UserTeam
	Members []TeamMember `json:"members,omitempty"`
}

// TeamDetails adds the machines owned by the team.
type TeamDetails struct {
	UserTeamWithMembers
	BareMetalServers []BareMetalServer `json:"bare_metal_servers,omitempty"`
	VirtualMachines  []VirtualMachine  `json:"virtual_machines,omitempty"`
}

// TeamMember is a member or a pending invitation.
type TeamMember struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Created    time.Time `json:"created"`
	Roles      []string  `json:"roles"`
	Invitation bool      `json:"invitation,omitempty"`
}

// TeamMemberUpdate replaces a member's roles.
type TeamMemberUpdate struct {
	Roles []string `json:"roles"`
}

// TeamInvitationRequest invites someone to a team.
type TeamInvitationRequest struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// Balance is a team's credit, in cents, and when it runs out at the current rate.
type Balance struct {
	AvailableBalance    int64      `json:"available_balance"`
	HourlyRate          int64      `json:"hourly_rate"`
	EstimatedRunoutTime *time.Time `json:"estimated_runout_time,omitempty"`
	MinimumBalance      int64      `json:"minimum_balance,omitempty"`
}

// PurchaseCreditsRequest starts a checkout for the given amount.
type PurchaseCreditsRequest struct {
	Cents int64 `json:"cents"`
}

// PurchaseCreditsResponse is the checkout session to complete in a browser.
type PurchaseCreditsResponse struct {
	CheckoutURL string    `json:"checkout_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// PaymentApprovalRequest asks for self-service payments to be enabled.
type PaymentApprovalRequest struct {
	Message string `json:"message"`
}
