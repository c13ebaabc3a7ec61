// Package auth inspects bearer tokens on the client side.
//
// The front-end never validates signatures; the backend does that. The only
// client-side concern is whether a stored token is already past its expiry,
// so a dead session can be discarded at startup instead of failing on the
// first request.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsTokenExpired reports whether a JWT should be treated as expired.
//
// Missing, malformed or undecodable tokens count as expired. A token without
// an exp claim does not: absence of expiry is not expiry.
func IsTokenExpired(token string) bool {
	if token == "" {
		return true
	}

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
		return false
	}
	return exp.Before(time.Now())
}
