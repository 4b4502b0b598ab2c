package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired inspects the bearer token's exp claim without verifying the
// signature; the client never holds the signing secret. A token that cannot
// be parsed at all is treated as expired so bootstrap falls through to a
// clean anonymous state instead of sending garbage upstream.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		// No exp claim: defer to the backend's verdict.
		return false
	}
	return exp.Before(now)
}
