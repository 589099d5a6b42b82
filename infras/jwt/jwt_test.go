package jwt_test

import (
	"testing"
	"time"

	"forest/config"
	infrajwt "forest/infras/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims infrajwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestValidateToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "secret"
	cfg.JWT.Issuer = "forest-auth"

	service := infrajwt.New(cfg)
	now := time.Now()

	validClaims := infrajwt.Claims{
		UserID: "user-1",
		Email:  "admin@forest.local",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "forest-auth",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	expiredClaims := validClaims
	expiredClaims.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour))

	foreignClaims := validClaims
	foreignClaims.Issuer = "someone-else"

	endlessClaims := validClaims
	endlessClaims.ExpiresAt = nil

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{name: "valid token", token: sign(t, "secret", validClaims)},
		{name: "expired token", token: sign(t, "secret", expiredClaims), expectedErr: infrajwt.ErrExpiredToken},
		{name: "wrong secret", token: sign(t, "other", validClaims), expectedErr: infrajwt.ErrInvalidToken},
		{name: "wrong issuer", token: sign(t, "secret", foreignClaims), expectedErr: infrajwt.ErrInvalidClaim},
		{name: "token without expiry", token: sign(t, "secret", endlessClaims), expectedErr: infrajwt.ErrInvalidToken},
		{name: "garbage", token: "not-a-token", expectedErr: infrajwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID)
			assert.Equal(t, "admin", claims.Role)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := infrajwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = infrajwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = infrajwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)

	_, err = infrajwt.ExtractTokenFromHeader("Bearer ")
	assert.Error(t, err)
}
