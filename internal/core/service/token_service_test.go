package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

func TestTokenService_RoundTrip_Registered(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, time.Hour)

	token, err := svc.Issue(domain.RegisteredPrincipal(42))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	p, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if p.Type != domain.PrincipalRegistered {
		t.Fatalf("unexpected type: %s", p.Type)
	}
	if p.UserID == nil || *p.UserID != 42 {
		t.Fatalf("unexpected user id: %v", p.UserID)
	}
}

func TestTokenService_RoundTrip_Guest(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, time.Hour)

	token, err := svc.Issue(domain.GuestPrincipal())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	p, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !p.IsGuest() {
		t.Fatalf("expected guest principal, got %s", p.Type)
	}
	if p.UserID != nil {
		t.Fatalf("guest token must carry nil user id, got %d", *p.UserID)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour, time.Hour).Issue(domain.AdminPrincipal(1))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour, time.Hour).Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, time.Hour)

	id := int64(7)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims{
		UserID:   &id,
		UserType: string(domain.PrincipalRegistered),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	token, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_Verify_RegisteredWithoutID(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, time.Hour)

	bad := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims{
		UserType: string(domain.PrincipalRegistered),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := bad.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for id-less registered token, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
