// Package auth implements the session token service: issuing a signed,
// time-bounded token for a user and verifying one back into its claim set.
// Tokens are never persisted; validity is purely a function of the token
// string, the signing secret and the clock.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/githubrishi321/Blog-Application/internal/model"
)

// TokenTTL is the lifetime of a session token fixed at issuance.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned by Verify for any token that does not check
// out: bad signature, malformed string, unexpected signing method, or an
// expiry in the past.  Callers never learn which; the session middleware
// treats all of them as "no identity".
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the public identity embedded in a session token.  The password
// hash is never part of it.  JSON keys match the cookie payload consumed by
// the front end.
type Claims struct {
	ID              string `json:"_id"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	ProfileImageURL string `json:"profileImageURL,omitempty"`
	Role            string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the numeric user id carried in the _id claim.
func (c *Claims) UserID() (uint64, error) {
	return strconv.ParseUint(c.ID, 10, 64)
}

// Issue builds a claim set from the user's public fields, signs it with the
// process-wide secret (HS256) and stamps it with an expiry of now+ttl.
func Issue(u model.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		ID:              strconv.FormatUint(u.ID, 10),
		Email:           u.Email,
		FullName:        u.FullName,
		ProfileImageURL: u.ProfileImageURL,
		Role:            u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a session token, returning the embedded claim
// set on success and ErrInvalidToken on any failure.  It has no side
// effects.
func Verify(token, secret string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC; a token re-signed
		// under a different scheme must not verify.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
