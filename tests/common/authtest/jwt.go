//go:build e2e

package authtest

import (
	"testing"
	"time"

	"officegrid/internal/domain/user"
	"officegrid/internal/pkg/config"
	"officegrid/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// GenerateToken issues a bearer token the way the server's auth layer would.
func GenerateToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role, managerDomain *user.ManagerDomain) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(userID, role, managerDomain)
	require.NoError(t, err)
	return token
}

// ExpiredToken issues a token that is already past its expiry.
func ExpiredToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := jwt.NewService(cfg.Secret, time.Millisecond).GenerateToken(userID, role, nil)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
