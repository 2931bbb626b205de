package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mindfit/wellness-api/internal/core/domain"
)

const (
	// DefaultUserTokenTTL applies to registered and admin tokens.
	DefaultUserTokenTTL = 7 * 24 * time.Hour
	// DefaultGuestTokenTTL keeps anonymous sessions short-lived.
	DefaultGuestTokenTTL = 24 * time.Hour
)

// authClaims is the signed token payload. UserID is null for guests.
type authClaims struct {
	UserID   *int64 `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256 tokens. The principal
// type inside the token is the sole source of tier information at request
// time; it is trusted as correct at issuance and not re-checked against the
// datastore until token expiry.
type TokenService struct {
	secret   []byte
	userTTL  time.Duration
	guestTTL time.Duration
}

func NewTokenService(secret string, userTTL, guestTTL time.Duration) *TokenService {
	if userTTL <= 0 {
		userTTL = DefaultUserTokenTTL
	}
	if guestTTL <= 0 {
		guestTTL = DefaultGuestTokenTTL
	}
	return &TokenService{secret: []byte(secret), userTTL: userTTL, guestTTL: guestTTL}
}

// Issue signs a token for the principal with the tier-appropriate TTL.
func (s *TokenService) Issue(p domain.Principal) (string, error) {
	ttl := s.userTTL
	if p.IsGuest() {
		ttl = s.guestTTL
	}

	now := time.Now()
	claims := authClaims{
		UserID:   p.UserID,
		UserType: string(p.Type),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the principal it encodes.
// Malformed, expired, and badly signed tokens all map to ErrInvalidToken.
func (s *TokenService) Verify(token string) (domain.Principal, error) {
	claims := &authClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	ptype := domain.PrincipalType(claims.UserType)
	if !ptype.Valid() {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	// A guest token must not carry an id; registered/admin tokens must.
	if ptype == domain.PrincipalGuest {
		return domain.GuestPrincipal(), nil
	}
	if claims.UserID == nil {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	return domain.Principal{Type: ptype, UserID: claims.UserID}, nil
}
