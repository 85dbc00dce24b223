// Package auth implements the credential primitives of the service: password
// hashing and the signed bearer-token codec.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an access token when none is configured.
const DefaultTokenTTL = time.Hour

// Claims are the assertions carried by an access token: sub (user id),
// iat and exp.
type Claims struct {
	jwt.RegisteredClaims
}

// NewClaims builds the claims for userID issued at now and expiring ttl later.
func NewClaims(userID int64, now time.Time, ttl time.Duration) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// UserID parses the subject claim.
func (c Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Codec issues and verifies HS256-signed JWTs with a fixed secret.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns a Codec signing with secret. A non-positive ttl selects
// DefaultTokenTTL.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &Codec{secret: key, ttl: ttl, now: time.Now}
}

// ClaimsFor builds fresh claims for userID using the codec's clock and TTL.
func (c *Codec) ClaimsFor(userID int64) Claims {
	return NewClaims(userID, c.now(), c.ttl)
}

// Issue signs claims and returns the compact token.
func (c *Codec) Issue(claims Claims) (string, error) {
	if len(c.secret) == 0 {
		return "", common.ErrInvalidKey
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Parse checks the signature, algorithm and expiry of token and returns its
// claims. Every failure wraps common.ErrInvalidToken.
func (c *Codec) Parse(token string) (*Claims, error) {
	if len(c.secret) == 0 {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrInvalidKey)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, common.ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject: %w", common.ErrInvalidToken, err)
	}

	return claims, nil
}

// Verify reports whether token is authentic and unexpired.
func (c *Codec) Verify(token string) bool {
	_, err := c.Parse(token)
	return err == nil
}
