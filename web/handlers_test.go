package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uservault/uservault/users"
	"github.com/uservault/uservault/users/sqlite"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repo.Close()
	})

	svc := users.NewService(repo, nil)

	return New(svc, ":0", nil)
}

func do(t *testing.T, srv *Server, method, path string, body map[string]any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.e.ServeHTTP(rec, req)

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec, body := do(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestCreateUserRoute(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name:       "valid request",
			body:       map[string]any{"name": "Alice", "email": "alice@example.com"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "empty name",
			body:       map[string]any{"name": "  ", "email": "alice@example.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed email",
			body:       map[string]any{"name": "Alice", "email": "nope"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)

			rec, env := do(t, srv, http.MethodPost, "/api/v1/users", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, true, env["success"])
			} else {
				assert.Equal(t, false, env["success"])
				assert.NotEmpty(t, env["error"])
			}
		})
	}
}

func TestCreateUserRoute_DuplicateEmail(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := do(t, srv, http.MethodPost, "/api/v1/users", map[string]any{"name": "Alice", "email": "a@b.c"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, srv, http.MethodPost, "/api/v1/users", map[string]any{"name": "Bob", "email": "a@b.c"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already exists", env["error"])
}

func TestReadUserRoute(t *testing.T) {
	srv := newTestServer(t)

	rec, env := do(t, srv, http.MethodGet, "/api/v1/users/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User with ID 42 not found", env["error"])

	rec, _ = do(t, srv, http.MethodGet, "/api/v1/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, srv, http.MethodPost, "/api/v1/users", map[string]any{"name": "Alice", "email": "a@b.c"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = do(t, srv, http.MethodGet, "/api/v1/users/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", data["name"])
}

func TestListUsersRoute(t *testing.T) {
	srv := newTestServer(t)

	for _, u := range []map[string]any{
		{"name": "Alice", "email": "alice@example.com"},
		{"name": "Bob", "email": "bob@example.com"},
		{"name": "Carol", "email": "carol@example.com"},
	} {
		rec, _ := do(t, srv, http.MethodPost, "/api/v1/users", u)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := do(t, srv, http.MethodGet, "/api/v1/users?limit=2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := env["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)

	page, ok := env["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), page["total"])

	rec, env = do(t, srv, http.MethodGet, "/api/v1/users?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Limit must be a positive integer", env["error"])

	rec, env = do(t, srv, http.MethodGet, "/api/v1/users?offset=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Offset must not be negative", env["error"])
}

func TestUpdateUserRoute(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := do(t, srv, http.MethodPost, "/api/v1/users", map[string]any{"name": "Alice", "email": "a@b.c"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, srv, http.MethodPatch, "/api/v1/users/1", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "X", data["name"])
	assert.Equal(t, "a@b.c", data["email"])

	rec, env = do(t, srv, http.MethodPatch, "/api/v1/users/1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "At least one field (name or email) must be provided", env["error"])

	rec, env = do(t, srv, http.MethodPatch, "/api/v1/users/99", map[string]any{"name": "Y"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User with ID 99 not found", env["error"])
}

func TestDeleteUserRoute(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := do(t, srv, http.MethodPost, "/api/v1/users", map[string]any{"name": "Alice", "email": "a@b.c"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, srv, http.MethodDelete, "/api/v1/users/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User 1 deleted successfully", env["message"])

	rec, _ = do(t, srv, http.MethodGet, "/api/v1/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, srv, http.MethodDelete, "/api/v1/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
