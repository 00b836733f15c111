package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dream-recall/dream_recall/internal/user"
)

const signingAlg = "HS256"

// Claims is the payload embedded in every issued token: the serialized user
// (never the password hash) plus the registered subject/iat/exp fields.
type Claims struct {
	User user.View `json:"user"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies bearer tokens with a process-wide secret.
// The signing algorithm is pinned to HS256; tokens presenting any other
// algorithm (including "none") are rejected outright.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec from the configured secret and token TTL.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured expiry window for newly issued tokens.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue signs a fresh token for the given user view. Every call produces a
// token with its own expiry window; previously issued tokens stay valid until
// they expire on their own.
func (tc *TokenCodec) Issue(u user.View) (string, error) {
	now := time.Now()
	claims := Claims{
		User: u,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Expired-but-otherwise-valid tokens yield ErrTokenExpired; everything else
// that fails yields ErrTokenInvalid.
func (tc *TokenCodec) Verify(tokenString string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return tc.secret, nil
	}, jwt.WithValidMethods([]string{signingAlg}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
