package hotaisle

import (
	"context"
	"net/http"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/domain/repositories"
)

// UserRepository implements repositories.UserRepository over the API client.
type UserRepository struct {
	client *Client
}

// NewUserRepository creates a user repository backed by client.
func NewUserRepository(client *Client) repositories.UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) Get(ctx context.Context) (*entities.CurrentUser, error) {
	var result entities.CurrentUser
	if err := r.client.doRequest(ctx, http.MethodGet, "/user/", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) Update(ctx context.Context, update entities.UserUpdate) (*entities.User, error) {
	var result entities.User
	if err := r.client.doRequest(ctx, http.MethodPatch, "/user/", update, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) ListSSHKeys(ctx context.Context) ([]entities.SSHKey, error) {
	var result []entities.SSHKey
	if err := r.client.doRequest(ctx, http.MethodGet, "/user/ssh_keys/", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *UserRepository) AddSSHKey(
	ctx context.Context,
	request entities.SSHKeyRequest,
) (*entities.SSHKey, error) {
	var result entities.SSHKey
	if err := r.client.doRequest(ctx, http.MethodPost, "/user/ssh_keys/", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) DeleteSSHKey(ctx context.Context, fingerprint string) error {
	path := buildPath("/user/ssh_keys/{fingerprint}/", map[string]string{"fingerprint": fingerprint})
	return r.client.doRequest(ctx, http.MethodDelete, path, nil, nil)
}

func (r *UserRepository) ListAPIKeys(ctx context.Context) ([]entities.APIKey, error) {
	var result []entities.APIKey
	if err := r.client.doRequest(ctx, http.MethodGet, "/user/api_keys/", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *UserRepository) GetAPIKey(ctx context.Context, prefix string) (*entities.APIKey, error) {
	path := buildPath("/user/api_keys/{prefix}/", map[string]string{"prefix": prefix})
	var result entities.APIKey
	if err := r.client.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) CreateAPIKey(
	ctx context.Context,
	request entities.APIKeyRequest,
) (*entities.APIKeyWithToken, error) {
	var result entities.APIKeyWithToken
	if err := r.client.doRequest(ctx, http.MethodPost, "/user/api_keys/", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) UpdateAPIKey(
	ctx context.Context,
	prefix string,
	request entities.APIKeyRequest,
) (*entities.APIKey, error) {
	path := buildPath("/user/api_keys/{prefix}/", map[string]string{"prefix": prefix})
	var result entities.APIKey
	if err := r.client.doRequest(ctx, http.MethodPatch, path, request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UserRepository) DeleteAPIKey(ctx context.Context, prefix string) error {
	path := buildPath("/user/api_keys/{prefix}/", map[string]string{"prefix": prefix})
	return r.client.doRequest(ctx, http.MethodDelete, path, nil, nil)
}
