package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"auth-api/internal/authentication"
	"auth-api/internal/jwt"
	log "auth-api/internal/logger"
	"auth-api/internal/models"
	internalUser "auth-api/internal/user"
	"auth-api/pkg/config"
	"auth-api/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryUsers is an in-memory internalUser.Repository
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func (m *memoryUsers) SaveUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if err := u.BeforeCreate(nil); err != nil {
		return err
	}
	m.users[u.ID] = *u
	return nil
}

func (m *memoryUsers) FindUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (m *memoryUsers) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryUsers) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := m.FindUserByUsername(ctx, username)
	return err == nil, nil
}

// memoryTokens is an in-memory authentication.Repository
type memoryTokens struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func (m *memoryTokens) SaveToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = true
	return nil
}

func (m *memoryTokens) TokenExists(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[token], nil
}

func (m *memoryTokens) DeleteToken(_ context.Context, token string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.tokens[token] {
		return 0, nil
	}
	delete(m.tokens, token)
	return 1, nil
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.AppConfig{
		Environment: "test",
		JWT: &config.JWTConfig{
			PrivateKeyPath: filepath.Join(dir, "private.pem"),
			PublicKeyPath:  filepath.Join(dir, "public.pem"),
			Issuer:         "auth-api-test",
			AccessExpiry:   time.Hour,
			RefreshExpiry:  24 * time.Hour,
		},
		Security: &config.SecurityConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			CORSMaxAge:     time.Hour,
		},
	}
	require.NoError(t, jwt.GenerateKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath))

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	redisCfg := redis.DefaultConfig()
	redisCfg.Host = mr.Host()
	redisCfg.Port = port
	redisClient := redis.New(redisCfg)
	t.Cleanup(func() { _ = redisClient.Close() })

	base, _ := test.NewNullLogger()
	logger := log.New(base)

	jwtService, err := jwt.NewJWTService(cfg.JWT)
	require.NoError(t, err)

	services := &Services{
		Logger:          logger,
		JWT:             jwtService,
		Users:           internalUser.NewService(&memoryUsers{users: map[string]models.User{}}, redisClient, logger),
		Authentications: authentication.NewService(&memoryTokens{tokens: map[string]bool{}}, redisClient, logger, cfg.JWT.RefreshExpiry),
		Validator:       authentication.NewPayloadValidator(),
		DatabaseHealth:  func(context.Context) error { return nil },
		RedisHealth:     redisClient.Ping,
	}

	r, err := SetupRouter(cfg, services)
	require.NoError(t, err)
	return r
}

type result struct {
	Code int
	Body struct {
		Status  string         `json:"status"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
}

func call(t *testing.T, h http.Handler, method, path, bearer string, payload any) result {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var res result
	res.Code = w.Code
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res.Body), w.Body.String())
	return res
}

func TestAuthenticationFlow(t *testing.T) {
	srv := newTestServer(t)

	res := call(t, srv, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "dicoding", "password": "secret", "fullname": "Dicoding Indonesia",
	})
	require.Equal(t, http.StatusCreated, res.Code)
	userID := res.Body.Data["userId"].(string)

	res = call(t, srv, http.MethodPost, "/api/v1/authentications", "", map[string]string{
		"username": "dicoding", "password": "secret",
	})
	require.Equal(t, http.StatusCreated, res.Code)
	accessToken := res.Body.Data["accessToken"].(string)
	refreshToken := res.Body.Data["refreshToken"].(string)

	res = call(t, srv, http.MethodGet, "/api/v1/users/me", accessToken, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, userID, res.Body.Data["user"].(map[string]any)["id"])

	// A refresh token is not a bearer credential
	res = call(t, srv, http.MethodGet, "/api/v1/users/me", refreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res = call(t, srv, http.MethodPut, "/api/v1/authentications", "", map[string]string{"refreshToken": refreshToken})
	require.Equal(t, http.StatusOK, res.Code)
	assert.NotContains(t, res.Body.Data, "refreshToken")

	res = call(t, srv, http.MethodGet, "/api/v1/users/me", res.Body.Data["accessToken"].(string), nil)
	assert.Equal(t, http.StatusOK, res.Code)

	res = call(t, srv, http.MethodDelete, "/api/v1/authentications", "", map[string]string{"refreshToken": refreshToken})
	assert.Equal(t, http.StatusOK, res.Code)

	res = call(t, srv, http.MethodDelete, "/api/v1/authentications", "", map[string]string{"refreshToken": refreshToken})
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = call(t, srv, http.MethodPut, "/api/v1/authentications", "", map[string]string{"refreshToken": refreshToken})
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestLoginWithWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	res := call(t, srv, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "dicoding", "password": "secret", "fullname": "Dicoding Indonesia",
	})
	require.Equal(t, http.StatusCreated, res.Code)

	res = call(t, srv, http.MethodPost, "/api/v1/authentications", "", map[string]string{
		"username": "dicoding", "password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "fail", res.Body.Status)

	res = call(t, srv, http.MethodPost, "/api/v1/authentications", "", map[string]string{
		"username": "nobody", "password": "secret",
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(t)

	res := call(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "ok", res.Body.Data["redis"])
}

func TestCSRFRouteDisabledByDefault(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/csrf", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupCSRFProtectionRequiresSecret(t *testing.T) {
	cfg := &config.SecurityConfig{CSRFEnabled: true, CSRFSecret: "short"}
	base, _ := test.NewNullLogger()

	err := SetupCSRFProtection(SetupEngine(&config.AppConfig{Environment: "test"}), cfg, log.New(base))
	assert.Error(t, err)
}
