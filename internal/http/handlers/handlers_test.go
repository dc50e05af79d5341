package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kaiwenlow/simple-auth-be/internal/auth"
	"github.com/kaiwenlow/simple-auth-be/internal/config"
	"github.com/kaiwenlow/simple-auth-be/internal/models"
	"github.com/kaiwenlow/simple-auth-be/internal/storage"
)

// memStore is an in-memory storage.UserStore with the same uniqueness
// semantics as the Postgres implementation.
type memStore struct {
	mu     sync.Mutex
	users  []models.User
	nextID int64
}

var _ storage.UserStore = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.IsActive = true
	user.CreatedAt = time.Now()
	m.users = append(m.users, user)
	return user, nil
}

func (m *memStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (m *memStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (m *memStore) ListUsers(_ context.Context, skip, limit int) ([]models.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := int64(len(m.users))
	if skip >= len(m.users) {
		return nil, total, nil
	}
	end := skip + limit
	if end > len(m.users) {
		end = len(m.users)
	}
	page := make([]models.User, end-skip)
	copy(page, m.users[skip:end])
	return page, total, nil
}

// deactivate flips the active flag, standing in for the administrative
// processes that own it in production.
func (m *memStore) deactivate(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Username == username {
			m.users[i].IsActive = false
		}
	}
}

func testConfig() config.Config {
	return config.Config{
		AppName:     "Simple Auth API",
		AppVersion:  "1.0.0",
		Environment: "test",
		SecretKey:   "handlers-test-secret",
		Algorithm:   "HS256",
		TokenTTL:    24 * time.Hour,
	}
}

func newTestServer(t *testing.T, store storage.UserStore) (*httptest.Server, *auth.TokenManager) {
	t.Helper()
	cfg := testConfig()
	tokens, err := auth.NewTokenManager(cfg.SecretKey, cfg.Algorithm, cfg.TokenTTL)
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewRootHandler(cfg).Register(mux)
	NewHealthHandler(cfg).Register(mux)
	NewAuthHandler(store, tokens).Register(mux)
	NewUsersHandler(store).Register(mux)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, tokens
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out))
	}
	return string(raw)
}

func registerPayload(n int) map[string]string {
	return map[string]string{
		"email":     fmt.Sprintf("user%d@example.com", n),
		"username":  fmt.Sprintf("user%d", n),
		"password":  "password123",
		"full_name": fmt.Sprintf("User %d", n),
	}
}
