package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer is set on every token this service signs
	Issuer = "jamjot-api"

	DevUserID      = "dev-user"
	DevDisplayName = "Developer"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrNotConfigured = errors.New("neither a signing secret nor a dev token is configured")
)

// Claims carries the catalog user identity of the caller
type Claims struct {
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the catalog user id the token was issued for
func (c *Claims) UserID() string {
	return c.Subject
}

// Service validates and issues HS256 bearer tokens
type Service struct {
	secret   []byte
	devToken string
}

// NewService creates a token service. devToken, when set, is accepted as a
// bearer token for the fixed development identity.
func NewService(secret, devToken string) (*Service, error) {
	if secret == "" && devToken == "" {
		return nil, ErrNotConfigured
	}
	return &Service{secret: []byte(secret), devToken: devToken}, nil
}

// ValidateToken checks the signature, issuer and expiry of a token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if s.devToken != "" && subtle.ConstantTimeCompare([]byte(tokenString), []byte(s.devToken)) == 1 {
		return s.DevClaims(), nil
	}
	if len(s.secret) == 0 {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IssueToken signs a token for userID valid for ttl
func (s *Service) IssueToken(userID, displayName string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("cannot sign tokens: %w", ErrNotConfigured)
	}
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive")
	}

	now := time.Now()
	claims := &Claims{
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// DevClaims returns fixed claims for development mode
func (s *Service) DevClaims() *Claims {
	now := time.Now()
	return &Claims{
		DisplayName: DevDisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   DevUserID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
}
