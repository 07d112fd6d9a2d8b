package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// ErrEmptyArgument is returned when a required free-form argument is blank.
var ErrEmptyArgument = errors.New("argument must not be empty")

// User is the interface for the commands acting on the authenticated user.
type User interface {
	Get(ctx context.Context, settings *entities.Settings) (*entities.CurrentUser, error)
	Update(ctx context.Context, settings *entities.Settings, name string) (*entities.User, error)

	ListSSHKeys(ctx context.Context, settings *entities.Settings) ([]entities.SSHKey, error)
	AddSSHKey(ctx context.Context, settings *entities.Settings, authorizedKey string) (*entities.SSHKey, error)
	DeleteSSHKey(ctx context.Context, settings *entities.Settings, fingerprint string) error

	ListAPIKeys(ctx context.Context, settings *entities.Settings) ([]entities.APIKey, error)
	GetAPIKey(ctx context.Context, settings *entities.Settings, prefix string) (*entities.APIKey, error)
	DeleteAPIKey(ctx context.Context, settings *entities.Settings, prefix string) error
}

// UserCommand talks to the user endpoints with the configured token.
type UserCommand struct {
	factory repositories.APIRepositoryFactory
}

// NewUserCommand creates a new UserCommand.
func NewUserCommand(factory repositories.APIRepositoryFactory) *UserCommand {
	return &UserCommand{factory: factory}
}

func (it *UserCommand) repository(settings *entities.Settings) (repositories.UserRepository, error) {
	token, err := settings.RequireToken()
	if err != nil {
		return nil, err
	}
	return it.factory.Users(token), nil
}

// Get returns the authenticated user.
func (it *UserCommand) Get(ctx context.Context, settings *entities.Settings) (*entities.CurrentUser, error) {
	repository, err := it.repository(settings)
	if err != nil {
		return nil, err
	}
	return repository.Get(ctx)
}

// Update renames the authenticated user.
func (it *UserCommand) Update(ctx context.Context, settings *entities.Settings, name string) (*entities.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyArgument
	}
	repository, err := it.repository(settings)
	if err != nil {
		return nil, err
	}
	return repository.Update(ctx, entities.UserUpdate{Name: name})
}

// ListSSHKeys returns the SSH keys of the authenticated user.
func (it *UserCommand) ListSSHKeys(ctx context.Context, settings *entities.Settings) ([]entities.SSHKey, error) {
	repository, err := it.repository(settings)
	if err != nil {
		return nil, err
	}
	return repository.ListSSHKeys(ctx)
}

// AddSSHKey registers a public key given in authorized_keys format.
func (it *UserCommand) AddSSHKey(
	ctx context.Context, settings *entities.Settings, authorizedKey string,
) (*entities.SSHKey, error) {
	authorizedKey = strings.TrimSpace(authorizedKey)
	if authorizedKey == "" {
		return nil, ErrEmptyArgument
	}
	repository, err := it.repository(settings)
	if err != nil {
		return nil, err
	}
	return repository.AddSSHKey(ctx, entities.SSHKeyRequest{AuthorizedKey: authorizedKey})
}

// DeleteSSHKey removes the key with the given fingerprint.
func (it *UserCommand) DeleteSSHKey(ctx context.Context, settings *entities.Settings, fingerprint string) error {
	repository, err := it.repository(settings)
	if err != nil {
		return err
	}
	return repository.DeleteSSHKey(ctx, fingerprint)
}

// ListAPIKeys returns the API keys of the authenticated user.
func (it *UserCommand) ListAPIKeys(ctx context.Context, settings *entities.Settings) ([]entities.APIKey, error) {
	repository, err := it.repository(settings)
	if err != nil {
		return nil, err
	}
	return repository.ListAPIKeys(ctx)
}

// GetAPIKey returns the API key with the given prefix.
func (it *UserCommand) GetAPIKey(
	ctx context.Context, settings *entities.Settings, prefix string,
) (*entities.APIKey, error) {
	repository, err := it.repository(settings)
	if err != nil {
		return nil, err
	}
	return repository.GetAPIKey(ctx, prefix)
}

// DeleteAPIKey revokes the API key with the given prefix.
func (it *UserCommand) DeleteAPIKey(ctx context.Context, settings *entities.Settings, prefix string) error {
	repository, err := it.repository(settings)
	if err != nil {
		return err
	}
	return repository.DeleteAPIKey(ctx, prefix)
}
