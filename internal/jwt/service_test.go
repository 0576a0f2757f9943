package jwt

import (
	"path/filepath"
	"testing"
	"time"

	"auth-api/pkg/apperror"
	"auth-api/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.JWTConfig{
		PrivateKeyPath: filepath.Join(dir, "keys", "private.pem"),
		PublicKeyPath:  filepath.Join(dir, "keys", "public.pem"),
		Issuer:         "auth-api-test",
		AccessExpiry:   time.Hour,
		RefreshExpiry:  24 * time.Hour,
	}
	require.NoError(t, GenerateKeyPair(cfg.PrivateKeyPath, cfg.PublicKeyPath))

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	return svc
}

func TestGenerateAndVerifyRefreshToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateRefreshToken(Identity{ID: "user-123"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, Identity{ID: "user-123"}, claims.Identity())
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "auth-api-test", claims.Issuer)
}

func TestTokensAreDistinct(t *testing.T) {
	svc := newTestService(t)
	identity := Identity{ID: "user-123"}

	access, err := svc.GenerateAccessToken(identity)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(identity)
	require.NoError(t, err)
	again, err := svc.GenerateRefreshToken(identity)
	require.NoError(t, err)

	assert.NotEqual(t, access, refresh)
	assert.NotEqual(t, refresh, again)
}

func TestVerifyRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService(t)

	access, err := svc.GenerateAccessToken(Identity{ID: "user-123"})
	require.NoError(t, err)

	_, err = svc.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidToken))
}

func TestVerifyRefreshTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.VerifyRefreshToken("badtoken")
	require.ErrorIs(t, err, ErrInvalidToken)

	ce, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "Refresh token is invalid", ce.Message)
}

func TestVerifyRefreshTokenRejectsExpired(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := svc.GenerateRefreshToken(Identity{ID: "user-123"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.VerifyRefreshToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefreshTokenRejectsForeignSigner(t *testing.T) {
	svc := newTestService(t)
	other := newTestService(t)

	token, err := other.GenerateRefreshToken(Identity{ID: "user-123"})
	require.NoError(t, err)

	_, err = svc.VerifyRefreshToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestService(t)
	identity := Identity{ID: "user-123"}

	access, err := svc.GenerateAccessToken(identity)
	require.NoError(t, err)
	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)

	refresh, err := svc.GenerateRefreshToken(identity)
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestGenerateRequiresIdentity(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GenerateAccessToken(Identity{})
	assert.Error(t, err)
}

func TestNewJWTServiceMissingKeys(t *testing.T) {
	dir := t.TempDir()
	_, err := NewJWTService(&config.JWTConfig{
		PrivateKeyPath: filepath.Join(dir, "missing.pem"),
		PublicKeyPath:  filepath.Join(dir, "missing.pub.pem"),
	})
	assert.Error(t, err)
}
