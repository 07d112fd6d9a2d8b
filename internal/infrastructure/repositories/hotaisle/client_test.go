//go:build unit

package hotaisle_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotaisle/hotaisle-cli/internal/domain/entities"
	"github.com/hotaisle/hotaisle-cli/internal/infrastructure/repositories/hotaisle"
)

// recordedRequest is what the test server saw.
type recordedRequest struct {
	Method      string
	EscapedPath string
	Header      http.Header
	Body        string
}

type requestRecorder struct {
	mutex    sync.Mutex
	requests []recordedRequest
}

func (r *requestRecorder) record(request recordedRequest) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.requests = append(r.requests, request)
}

func (r *requestRecorder) all() []recordedRequest {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]recordedRequest(nil), r.requests...)
}

// newTestServer answers every request with status and body, recording the requests.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *requestRecorder) {
	t.Helper()
	recorder := &requestRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		recorder.record(recordedRequest{
			Method:      r.Method,
			EscapedPath: r.URL.EscapedPath(),
			Header:      r.Header.Clone(),
			Body:        string(data),
		})
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, recorder
}

func newFactory(server *httptest.Server) *hotaisle.RepositoryFactory {
	return hotaisle.NewRepositoryFactory(
		&entities.BuildInfo{Version: "1.2.3"},
		hotaisle.WithBaseURL(server.URL+"/api/"),
		hotaisle.WithHTTPClient(server.Client()),
	)
}

func TestClient(t *testing.T) {
	t.Parallel()

	t.Run("should send the token, user agent and request id", func(t *testing.T) {
		t.Parallel()

		// given
		server, recorder := newTestServer(t, http.StatusOK, `{"user": {"name": "Ada", "email": "ada@example.com"}}`)
		users := newFactory(server).Users("secret-token")

		// when
		user, err := users.Get(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "Ada", user.User.Name)
		requests := recorder.all()
		require.Len(t, requests, 1)
		request := requests[0]
		assert.Equal(t, http.MethodGet, request.Method)
		assert.Equal(t, "/api/user/", request.EscapedPath)
		assert.Equal(t, "secret-token", request.Header.Get("Authorization"))
		assert.Equal(t, "hotaisle/1.2.3", request.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", request.Header.Get("Accept"))
		assert.Empty(t, request.Header.Get("Content-Type"))
		assert.Len(t, request.Header.Get(hotaisle.HeaderRequestID), 36) //nolint:mnd // uuid length
	})

	t.Run("should send a JSON body with its content type", func(t *testing.T) {
		t.Parallel()

		// given
		server, recorder := newTestServer(t, http.StatusOK, `{"name": "Grace"}`)
		users := newFactory(server).Users("token")

		// when
		user, err := users.Update(context.Background(), entities.UserUpdate{Name: "Grace"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "Grace", user.Name)
		request := recorder.all()[0]
		assert.Equal(t, http.MethodPatch, request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
		var sent map[string]string
		require.NoError(t, json.Unmarshal([]byte(request.Body), &sent))
		assert.Equal(t, map[string]string{"name": "Grace"}, sent)
	})

	t.Run("should omit the Authorization header without a token", func(t *testing.T) {
		t.Parallel()

		// given
		server, recorder := newTestServer(t, http.StatusOK, `[]`)
		users := newFactory(server).Users("")

		// when
		_, err := users.ListSSHKeys(context.Background())

		// then
		require.NoError(t, err)
		_, present := recorder.all()[0].Header["Authorization"]
		assert.False(t, present)
	})

	t.Run("should escape path parameters", func(t *testing.T) {
		t.Parallel()

		// given
		server, recorder := newTestServer(t, http.StatusNoContent, "")
		vms := newFactory(server).VirtualMachines("token")

		// when
		err := vms.Delete(context.Background(), "my team", "vm/1")

		// then
		require.NoError(t, err)
		request := recorder.all()[0]
		assert.Equal(t, "/api/teams/my%20team/virtual_machines/vm%2F1/", request.EscapedPath)
		assert.Equal(t, http.MethodDelete, request.Method)
	})

	t.Run("should map status codes to errors", func(t *testing.T) {
		t.Parallel()

		for status, expected := range map[int]error{
			http.StatusUnauthorized: hotaisle.ErrUnauthorized,
			http.StatusForbidden:    hotaisle.ErrUnauthorized,
			http.StatusNotFound:     hotaisle.ErrNotFound,
		} {
			// given
			server, _ := newTestServer(t, status, "  nope \n")
			teams := newFactory(server).Teams("token")

			// when
			_, err := teams.Get(context.Background(), "acme")

			// then
			require.ErrorIs(t, err, expected)
			var apiErr *hotaisle.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, status, apiErr.StatusCode)
			assert.Equal(t, "nope", apiErr.Message)
		}
	})

	t.Run("should not match sentinel errors for other failures", func(t *testing.T) {
		t.Parallel()

		// given
		server, _ := newTestServer(t, http.StatusInternalServerError, "boom")
		teams := newFactory(server).Teams("token")

		// when
		_, err := teams.List(context.Background())

		// then
		require.Error(t, err)
		assert.NotErrorIs(t, err, hotaisle.ErrUnauthorized)
		assert.NotErrorIs(t, err, hotaisle.ErrNotFound)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("should fail on a malformed response", func(t *testing.T) {
		t.Parallel()

		// given
		server, _ := newTestServer(t, http.StatusOK, "{not json")
		teams := newFactory(server).Teams("token")

		// when
		_, err := teams.GetBalance(context.Background(), "acme")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal response")
	})

	t.Run("should default to the production API", func(t *testing.T) {
		t.Parallel()

		// when
		client := hotaisle.NewClient()

		// then
		assert.Equal(t, "https://admin.hotaisle.app/api", client.BaseURL())
	})
}

func TestBuildPath(t *testing.T) {
	t.Parallel()

	t.Run("should fill every placeholder", func(t *testing.T) {
		t.Parallel()

		// when
		path := hotaisle.BuildPath("/teams/{team}/members/{resource}/", map[string]string{
			"team":     "acme",
			"resource": "ada+test@example.com",
		})

		// then
		assert.Equal(t, "/teams/acme/members/ada+test@example.com/", path)
	})
}
