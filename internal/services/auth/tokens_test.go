package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-with-enough-entropy"

func TestNewService(t *testing.T) {
	_, err := NewService("", "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewService(testSecret, "")
	assert.NoError(t, err)

	_, err = NewService("", "dev")
	assert.NoError(t, err)
}

func TestIssueAndValidate(t *testing.T) {
	service, err := NewService(testSecret, "")
	require.NoError(t, err)

	token, err := service.IssueToken("u1", "User One", time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID())
	assert.Equal(t, "User One", claims.DisplayName)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestIssueToken_Errors(t *testing.T) {
	service, err := NewService(testSecret, "")
	require.NoError(t, err)

	_, err = service.IssueToken("", "x", time.Hour)
	assert.Error(t, err)

	_, err = service.IssueToken("u1", "x", 0)
	assert.Error(t, err)

	devOnly, err := NewService("", "dev")
	require.NoError(t, err)
	_, err = devOnly.IssueToken("u1", "x", time.Hour)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestValidateToken(t *testing.T) {
	service, err := NewService(testSecret, "")
	require.NoError(t, err)

	now := time.Now()
	valid := jwt.RegisteredClaims{
		Subject:   "u1",
		Issuer:    Issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "garbage",
			token:   "not-a-jwt",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "wrong secret",
			token:   sign(t, jwt.SigningMethodHS256, []byte("other-secret"), &Claims{RegisteredClaims: valid}),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "wrong algorithm",
			token:   sign(t, jwt.SigningMethodHS512, []byte(testSecret), &Claims{RegisteredClaims: valid}),
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), &Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: "u1", Issuer: "someone-else", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}}),
			wantErr: ErrInvalidToken,
		},
		{
			name: "no expiry",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), &Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: "u1", Issuer: Issuer,
			}}),
			wantErr: ErrInvalidToken,
		},
		{
			name: "no subject",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), &Claims{RegisteredClaims: jwt.RegisteredClaims{
				Issuer: Issuer, ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}}),
			wantErr: ErrInvalidToken,
		},
		{
			name: "expired",
			token: sign(t, jwt.SigningMethodHS256, []byte(testSecret), &Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject: "u1", Issuer: Issuer, ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}}),
			wantErr: ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDevToken(t *testing.T) {
	service, err := NewService("", "let-me-in")
	require.NoError(t, err)

	claims, err := service.ValidateToken("let-me-in")
	require.NoError(t, err)
	assert.Equal(t, DevUserID, claims.UserID())
	assert.Equal(t, DevDisplayName, claims.DisplayName)

	_, err = service.ValidateToken("let-me-out")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
