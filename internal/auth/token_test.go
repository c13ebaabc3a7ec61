package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestIsTokenExpired(t *testing.T) {
	expired := signedToken(t, jwt.MapClaims{
		"sub": "user@example.com",
		"exp": time.Now().Add(-time.Second).Unix(),
	})
	if !IsTokenExpired(expired) {
		t.Fatal("token expired one second ago must read as expired")
	}

	valid := signedToken(t, jwt.MapClaims{
		"sub": "user@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if IsTokenExpired(valid) {
		t.Fatal("token valid for another hour must not read as expired")
	}
}

func TestIsTokenExpiredNoExpClaim(t *testing.T) {
	// Absence of expiry is not expiry.
	noExp := signedToken(t, jwt.MapClaims{"sub": "user@example.com"})
	if IsTokenExpired(noExp) {
		t.Fatal("token without exp claim must not read as expired")
	}
}

func TestIsTokenExpiredMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c",
		"header.!!!not-base64!!!.sig",
	}
	for i, tok := range cases {
		if !IsTokenExpired(tok) {
			t.Fatalf("case %d (%q): malformed token must read as expired", i, tok)
		}
	}
}
