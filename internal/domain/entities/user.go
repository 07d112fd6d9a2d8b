package entities

import "time"

// User is a registered Hot Aisle account.
type User struct {
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Created time.Time `json:"created"`
}

// UserUpdate holds the editable profile fields.
type UserUpdate struct {
	Name string `json:"name"`
}

// CurrentUser is the authenticated user together with their teams.
type CurrentUser struct {
	User  User       `json:"user"`
	Teams []UserTeam `json:"teams"`
}

// SSHKey is a public key registered on the account.
type SSHKey struct {
	Type        string `json:"type"`
	PublicKey   string `json:"public_key"`
	Fingerprint string `json:"fingerprint"`
	Comment     string `json:"comment,omitempty"`
}

// SSHKeyRequest registers a key given in authorized_keys format.
type SSHKeyRequest struct {
	AuthorizedKey string `json:"authorized_key"`
}

// APIKey is a user API key; the secret is only returned once, on creation.
type APIKey struct {
	Prefix   string       `json:"prefix,omitempty"`
	Label    string       `json:"label,omitempty"`
	UserRole string       `json:"user_role"`
	Teams    []APIKeyTeam `json:"teams,omitempty"`
}

// APIKeyTeam is a team an API key can act on.
type APIKeyTeam struct {
	Team
	Roles []string `json:"roles"`
}

// APIKeyRequest creates or updates an API key.
type APIKeyRequest struct {
	Label    string            `json:"label,omitempty"`
	UserRole string            `json:"user_role,omitempty"`
	Teams    []APIKeyTeamRoles `json:"teams,omitempty"`
}

// APIKeyTeamRoles grants roles on one team.
type APIKeyTeamRoles struct {
	Team  string   `json:"team"`
	Roles []string `json:"roles"`
}

// APIKeyWithToken is returned when a key is created.
type APIKeyWithToken struct {
	APIKey
	Token string `json:"token,omitempty"`
}
