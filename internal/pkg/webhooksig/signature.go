package webhooksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"coach-booking-engine/internal/pkg/errs"
)

var (
	ErrSignatureMismatch = errs.New("signature mismatch")
	ErrStaleTimestamp    = errs.New("timestamp outside tolerance window")
	ErrMalformedHeader   = errs.New("malformed signature header")
)

// Verifier checks provider webhook signatures computed as
//
//	"v0=" + hex(HMAC-SHA256(secret, "v0:" + timestamp + ":" + body))
//
// and rejects deliveries whose timestamp falls outside the replay tolerance.
type Verifier struct {
	secret    []byte
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	return &Verifier{
		secret:    []byte(secret),
		tolerance: tolerance,
	}
}

// Sign returns the expected header value for a timestamp and raw body.
func (v *Verifier) Sign(timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte("v0:" + timestamp + ":"))
	mac.Write(body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify validates the signature header against the raw body, then the
// timestamp against the replay window. Comparison is constant-time.
func (v *Verifier) Verify(signatureHeader, timestampHeader string, body []byte, now time.Time) error {
	if signatureHeader == "" || timestampHeader == "" {
		return ErrMalformedHeader
	}

	expected := v.Sign(timestampHeader, body)
	if !hmac.Equal([]byte(expected), []byte(signatureHeader)) {
		return ErrSignatureMismatch
	}

	ts, err := strconv.ParseInt(timestampHeader, 10, 64)
	if err != nil {
		return ErrMalformedHeader
	}

	age := now.Sub(time.Unix(ts, 0))
	if age > v.tolerance || age < -v.tolerance {
		return ErrStaleTimestamp
	}

	return nil
}

// URLValidationResponse is the one-time endpoint ownership handshake:
// echo the challenge token alongside its HMAC under the shared secret.
type URLValidationResponse struct {
	PlainToken     string `json:"plainToken"`
	EncryptedToken string `json:"encryptedToken"`
}

func (v *Verifier) ValidateURL(plainToken string) URLValidationResponse {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(plainToken))
	return URLValidationResponse{
		PlainToken:     plainToken,
		EncryptedToken: hex.EncodeToString(mac.Sum(nil)),
	}
}
