package auth_test

import (
	"hotelchat/backend/internal/auth"
	"hotelchat/backend/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	// Arrange
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	user := &models.User{ID: 42, Email: "op@x.com", Role: models.RoleOperator}

	// Act
	token, err := issuer.Issue(user)
	require.NoError(t, err)
	claims, err := issuer.Parse(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.ID)
	assert.Equal(t, "op@x.com", claims.Email)
	assert.Equal(t, models.RoleOperator, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	user := &models.User{ID: 7, Email: "a@x.com", Role: models.RoleUser}
	good, err := auth.NewTokenIssuer("secret", time.Hour).Issue(user)
	require.NoError(t, err)
	expired, err := auth.NewTokenIssuer("secret", -time.Minute).Issue(user)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other", good},
		{"expired", "secret", expired},
		{"garbage", "secret", "not.a.token"},
		{"empty", "secret", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.NewTokenIssuer(tt.secret, time.Hour).Parse(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestTokenIssuer_ZeroUser(t *testing.T) {
	_, err := auth.NewTokenIssuer("secret", time.Hour).Issue(&models.User{})
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, auth.CheckPassword(hash, "hunter22"))
	assert.False(t, auth.CheckPassword(hash, "hunter23"))
}
