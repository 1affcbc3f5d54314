package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewSessionTokenRoundTrip(t *testing.T) {
	const secret = "round-trip-secret"
	tok, err := NewSessionToken(secret, 123, 24)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token string")
	}

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse failed: %v (valid=%v)", err, parsed != nil && parsed.Valid)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok || uint64(sub) != 123 {
		t.Errorf("sub = %v, want 123", claims["sub"])
	}
	if _, ok := claims["iat"]; !ok {
		t.Error("iat claim missing")
	}

	wantExp := time.Now().UTC().Add(24 * time.Hour)
	if diff := tok.Exp.Sub(wantExp); diff > time.Minute || diff < -time.Minute {
		t.Errorf("Exp = %v, want about %v", tok.Exp, wantExp)
	}
}

func TestNewSessionTokenWrongSecretRejected(t *testing.T) {
	tok, err := NewSessionToken("secret-a", 1, 1)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil && parsed.Valid {
		t.Error("token validated with the wrong secret")
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "correct horse battery staple") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong password") {
		t.Error("wrong password accepted")
	}
}
