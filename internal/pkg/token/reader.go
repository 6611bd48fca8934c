// internal/pkg/token/reader.go
package token

import (
	"fmt"
	"time"

	xerrors "lazzat-client/internal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the decoded fields of a bearer token. The raw claim map is
// kept so callers can distinguish an absent privilege flag from a false one.
type Claims struct {
	Username  string
	UserID    int64
	ExpiresAt time.Time

	raw jwt.MapClaims
}

// Reader decodes bearer tokens without verifying their signature. The client
// only gates UI with the result; the backend enforces authorization on every
// request, so no key material is needed here.
type Reader struct {
	parser *jwt.Parser
}

func NewReader() *Reader {
	return &Reader{parser: jwt.NewParser()}
}

// Decode extracts claims from a token string. Malformed input fails with
// ErrTokenMalformed.
func (r *Reader) Decode(tokenString string) (*Claims, error) {
	parsed, _, err := r.parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrTokenMalformed, err)
	}

	raw, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type %T", xerrors.ErrTokenMalformed, parsed.Claims)
	}

	claims := &Claims{raw: raw}

	if v, ok := raw["username"].(string); ok {
		claims.Username = v
	}
	if v, ok := raw["user_id"]; ok {
		claims.UserID = toInt64(v)
	}
	if v, ok := raw["exp"]; ok {
		claims.ExpiresAt = time.Unix(toInt64(v), 0)
	}

	return claims, nil
}

// ExpiredAt reports whether the token expiry is at or before the given time.
// A token without an exp claim is treated as expired.
func (c *Claims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return true
	}
	return !c.ExpiresAt.After(now)
}

// HasPrivilegeFlags reports whether the claim set contains an is_staff or
// is_superuser key at all, even false-valued. Some deployments issue tokens
// without these claims and the caller must fall back to a user lookup.
func (c *Claims) HasPrivilegeFlags() bool {
	if _, ok := c.raw["is_staff"]; ok {
		return true
	}
	_, ok := c.raw["is_superuser"]
	return ok
}

// IsAdmin returns is_staff OR is_superuser from the claim set.
func (c *Claims) IsAdmin() bool {
	return truthy(c.raw["is_staff"]) || truthy(c.raw["is_superuser"])
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}

func truthy(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}
