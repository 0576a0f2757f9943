package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auth-api/internal/middleware"
	"auth-api/internal/models"
	"auth-api/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	users     map[string]*models.User
	createErr error
}

func (f *fakeUserService) CreateUser(_ context.Context, username, _, fullname string) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return nil, user.ErrUsernameAlreadyExists
		}
	}
	u := &models.User{ID: "user-" + username, Username: username, Fullname: fullname}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserService) GetUserById(_ context.Context, userID string) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

type countingLogger struct{ calls int }

func (l *countingLogger) SecureLog(error, string, string) string {
	l.calls++
	return ""
}

func newRouter(svc *fakeUserService, log *countingLogger, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc, log)

	r := gin.New()
	RegisterPublicRoutes(r.Group(""), h)

	protected := r.Group("")
	protected.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextUserID, userID)
		}
		c.Next()
	})
	RegisterProtectedRoutes(protected, h)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w.Code, decoded
}

func TestPostUser(t *testing.T) {
	svc := &fakeUserService{users: map[string]*models.User{}}
	r := newRouter(svc, &countingLogger{}, "")

	code, body := do(t, r, http.MethodPost, "/users", `{"username":"dicoding","password":"secret","fullname":"Dicoding"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, map[string]any{"userId": "user-dicoding"}, body["data"])

	code, body = do(t, r, http.MethodPost, "/users", `{"username":"dicoding","password":"secret","fullname":"Dicoding"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "fail", body["status"])
}

func TestPostUserInvalidPayload(t *testing.T) {
	svc := &fakeUserService{users: map[string]*models.User{}}
	r := newRouter(svc, &countingLogger{}, "")

	code, body := do(t, r, http.MethodPost, "/users", `{"username":"dicoding","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "fullname is required", body["message"])

	code, _ = do(t, r, http.MethodPost, "/users", `not json`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPostUserServerError(t *testing.T) {
	svc := &fakeUserService{users: map[string]*models.User{}, createErr: errors.New("db down")}
	log := &countingLogger{}
	r := newRouter(svc, log, "")

	code, body := do(t, r, http.MethodPost, "/users", `{"username":"dicoding","password":"secret","fullname":"Dicoding"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, 1, log.calls)
}

func TestGetMe(t *testing.T) {
	svc := &fakeUserService{users: map[string]*models.User{
		"user-1": {ID: "user-1", Username: "dicoding", Fullname: "Dicoding", Password: "hash"},
	}}

	code, body := do(t, newRouter(svc, &countingLogger{}, "user-1"), http.MethodGet, "/users/me", "")
	assert.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "dicoding", data["username"])
	assert.NotContains(t, data, "password")

	code, _ = do(t, newRouter(svc, &countingLogger{}, "user-404"), http.MethodGet, "/users/me", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, newRouter(svc, &countingLogger{}, ""), http.MethodGet, "/users/me", "")
	assert.Equal(t, http.StatusUnauthorized, code)
}
