package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token fails signature, shape, or
// expiry checks. Callers treat every parse failure uniformly; the reason is
// deliberately not leaked to clients.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded identity carried by a session token.
//
// Admin is computed once, when the token is issued: the login (and refresh)
// path reads the user's administrator flag and bakes it into the claim. A
// promotion therefore takes effect only when the user obtains a new token;
// until then requests authenticated with the old token keep the old flag.
type Claims struct {
	UserID  uint
	TokenID string // unique jti, the blocklist key
	Admin   bool
}

// Codec signs and verifies HS256 session tokens. Access and refresh tokens
// use separate secrets and lifetimes so a leaked access secret cannot mint
// refresh tokens.
type Codec struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration // ~15 minutes
	RefreshTTL    time.Duration // ~7 days
}

// NewCodec builds a Codec from raw secrets and TTLs.
func NewCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		AccessSecret:  []byte(accessSecret),
		RefreshSecret: []byte(refreshSecret),
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}

// IssueAccess signs a short-lived access token for the user. The returned
// jti identifies this token in the revocation blocklist.
func (c *Codec) IssueAccess(userID uint, admin bool) (token, jti string, err error) {
	return sign(c.AccessSecret, c.AccessTTL, userID, admin)
}

// IssueRefresh signs a long-lived refresh token for the user.
func (c *Codec) IssueRefresh(userID uint, admin bool) (token, jti string, err error) {
	return sign(c.RefreshSecret, c.RefreshTTL, userID, admin)
}

// ParseAccess verifies an access token and returns its claims.
// It returns ErrInvalidToken on any signature, shape, or expiry failure.
func (c *Codec) ParseAccess(raw string) (Claims, error) {
	return parse(c.AccessSecret, raw)
}

// ParseRefresh verifies a refresh token and returns its claims.
func (c *Codec) ParseRefresh(raw string) (Claims, error) {
	return parse(c.RefreshSecret, raw)
}

func sign(secret []byte, ttl time.Duration, userID uint, admin bool) (string, string, error) {
	now := time.Now().UTC()
	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"sub": float64(userID),
		"jti": jti,
		"adm": admin,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secret)
	if err != nil {
		return "", "", err
	}
	return signed, jti, nil
}

func parse(secret []byte, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, ok := mc["sub"].(float64)
	if !ok || sub <= 0 {
		return Claims{}, ErrInvalidToken
	}
	jti, ok := mc["jti"].(string)
	if !ok || jti == "" {
		return Claims{}, ErrInvalidToken
	}
	admin, _ := mc["adm"].(bool)
	return Claims{UserID: uint(sub), TokenID: jti, Admin: admin}, nil
}
