// Package sessionx mints and verifies stateless browser-session tokens.
// Sessions are Ed25519-signed JWTs carrying the user's id, email, and role;
// nothing is stored server-side, so "establishing a session" is just handing
// the client a fresh token.
package sessionx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the default session lifetime.
const DefaultTTL = time.Hour

var ErrInvalidSession = errors.New("sessionx: invalid session token")

// Claims are the session-token claims shared across handlers.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user, lowercased.
	Email string `json:"email,omitempty"`

	// Role is the user's fixed capability class ("freelancer" or "client").
	Role string `json:"role,omitempty"`

	// Username for display purposes.
	Username string `json:"username,omitempty"`
}

// Manager signs and verifies session tokens with a single Ed25519 keypair.
// Keys are generated at construction; restarting the process invalidates
// outstanding sessions, which is acceptable for this portal.
type Manager struct {
	priv   ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
	ttl    time.Duration
}

func NewManager(issuer string, ttl time.Duration) (*Manager, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("sessionx: generate keypair: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{priv: priv, pub: pub, issuer: issuer, ttl: ttl}, nil
}

// Mint creates a signed session token for the given user.
func (m *Manager) Mint(userID, email, username, role string, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email:    email,
		Role:     role,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(m.priv)
	if err != nil {
		return "", fmt.Errorf("sessionx: sign: %w", err)
	}
	return signed, nil
}

// Verify validates a session token and returns its claims.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.pub, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// TTL reports the configured session lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }
