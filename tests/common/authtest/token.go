//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coach-booking-engine/internal/pkg/config"
	"coach-booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// MintToken issues a bearer token for a party. Parties are provisioned by
// the upstream identity service, so tests mint tokens directly instead of
// going through a login endpoint.
func MintToken(t *testing.T, cfg config.JWTConfig, partyID uuid.UUID, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	service := jwt.NewService(cfg.Secret, duration)
	token, err := service.GenerateToken(partyID, role)
	require.NoError(t, err)
	return token
}

// MintExpiredToken issues a token that is already past its expiry.
func MintExpiredToken(t *testing.T, cfg config.JWTConfig, partyID uuid.UUID, role string) string {
	t.Helper()

	service := jwt.NewService(cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(partyID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
