package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryLeeway compensates for clock skew between the client and the backend.
// A token within this window of its expiry is treated as already expired so
// the proactive refresh fires before the server starts rejecting it.
const ExpiryLeeway = 30 * time.Second

var parser = jwt.NewParser()

// IsExpired classifies an access token by its embedded exp claim without
// verifying the signature. Verification is the server's job; this is only a
// heuristic deciding when to refresh. Malformed tokens and tokens without an
// exp claim are classified expired, the fail-safe default.
func IsExpired(tokenStr string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return time.Now().Add(ExpiryLeeway).After(exp.Time)
}
