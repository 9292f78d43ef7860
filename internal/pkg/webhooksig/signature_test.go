//go:build unit

package webhooksig_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"coach-booking-engine/internal/pkg/webhooksig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	secret := "whsec_test"
	now := time.Unix(1_700_000_000, 0)
	v := webhooksig.NewVerifier(secret, 300*time.Second)

	body := []byte(`{"event":"charge.succeeded"}`)
	ts := fmt.Sprintf("%d", now.Unix())

	t.Run("valid signature passes", func(t *testing.T) {
		sig := v.Sign(ts, body)
		require.NoError(t, v.Verify(sig, ts, body, now))
	})

	t.Run("tampered body fails", func(t *testing.T) {
		sig := v.Sign(ts, body)
		err := v.Verify(sig, ts, []byte(`{"event":"charge.failed"}`), now)
		assert.ErrorIs(t, err, webhooksig.ErrSignatureMismatch)
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		other := webhooksig.NewVerifier("whsec_other", 300*time.Second)
		sig := other.Sign(ts, body)
		err := v.Verify(sig, ts, body, now)
		assert.ErrorIs(t, err, webhooksig.ErrSignatureMismatch)
	})

	t.Run("stale timestamp rejected after signature check", func(t *testing.T) {
		staleTS := fmt.Sprintf("%d", now.Add(-301*time.Second).Unix())
		sig := v.Sign(staleTS, body)
		err := v.Verify(sig, staleTS, body, now)
		assert.ErrorIs(t, err, webhooksig.ErrStaleTimestamp)
	})

	t.Run("timestamp just inside tolerance passes", func(t *testing.T) {
		okTS := fmt.Sprintf("%d", now.Add(-299*time.Second).Unix())
		sig := v.Sign(okTS, body)
		require.NoError(t, v.Verify(sig, okTS, body, now))
	})

	t.Run("missing headers rejected", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify("", ts, body, now), webhooksig.ErrMalformedHeader)
		assert.ErrorIs(t, v.Verify("v0=deadbeef", "", body, now), webhooksig.ErrMalformedHeader)
	})
}

func TestValidateURL(t *testing.T) {
	secret := "whsec_test"
	v := webhooksig.NewVerifier(secret, 300*time.Second)

	resp := v.ValidateURL("challenge-token")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("challenge-token"))

	assert.Equal(t, "challenge-token", resp.PlainToken)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), resp.EncryptedToken)
}
