package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity embedded in an access token. It carries exactly
// the fields the dashboard needs to route the session: the account id, the
// login email and the coarse role ("admin" or "vendor"). Capability flags
// are deliberately not embedded; gated routes re-load the account so a
// permission change takes effect without re-login.
type Claims struct {
	UserID uint64
	Email  string
	Role   string
}

// ErrInvalidToken is returned by ParseAccessToken for anything that is not
// a valid, unexpired HS256 token signed with the configured secret.
var ErrInvalidToken = errors.New("invalid token")

// IssueAccessToken signs an HS256 JWT for an account. TTL is expressed in
// minutes to match the ACCESS_TOKEN_TTL_MIN configuration value.
func IssueAccessToken(secret string, userID uint64, email, role string, ttlMin int) (string, time.Time, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	})
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseAccessToken validates a raw token string and extracts its claims.
// Tokens signed with a non-HMAC method are rejected.
func ParseAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	var c Claims
	switch sub := mc["sub"].(type) {
	case float64:
		c.UserID = uint64(sub)
	default:
		return Claims{}, ErrInvalidToken
	}
	if v, ok := mc["email"].(string); ok {
		c.Email = v
	}
	if v, ok := mc["role"].(string); ok {
		c.Role = v
	}
	return c, nil
}
