//go:build e2e

package authtest

import (
	"testing"
	"time"

	"cosme-store/internal/domain/user"
	"cosme-store/internal/pkg/config"
	"cosme-store/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens outside the login flow. None of them has a session
// behind it, so the API must reject every one.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// SessionlessToken is correctly signed and unexpired but names a session that
// was never created.
func (h *JWTHelper) SessionlessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, refreshDuration)
	token, err := service.GenerateAccessToken(userID, role, uuid.New())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ForgedToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService("not-"+h.cfg.Secret, time.Hour, time.Hour)
	token, err := service.GenerateAccessToken(userID, role, uuid.New())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, time.Millisecond, refreshDuration)
	token, err := service.GenerateAccessToken(userID, role, uuid.New())
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
