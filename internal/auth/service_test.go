package auth_test

import (
	"context"
	"hotelchat/backend/internal/auth"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage/storagetest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*auth.Service, *auth.TokenIssuer) {
	t.Helper()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	return auth.NewService(storagetest.New(t), tokens, "staff-code"), tokens
}

func validInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username:  "alice",
		Email:     "A@X.com",
		Password:  "secret1",
		Firstname: "Alice",
		Lastname:  "Liddell",
	}
}

func TestRegister_User(t *testing.T) {
	// Arrange
	svc, tokens := newService(t)

	// Act
	session, err := svc.Register(context.Background(), validInput())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.User.Email)
	assert.Equal(t, models.RoleUser, session.User.Role)
	assert.False(t, session.User.IsEmployee)
	assert.NotEqual(t, "secret1", session.User.Password)
	assert.Equal(t, "Alice", session.User.Profile.Data().FirstName)

	claims, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.ID)
}

func TestRegister_OperatorCode(t *testing.T) {
	svc, _ := newService(t)
	in := validInput()
	in.OperatorCode = "staff-code"

	session, err := svc.Register(context.Background(), in)

	require.NoError(t, err)
	assert.True(t, session.User.IsOperator())
	assert.True(t, session.User.IsEmployee)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *auth.RegisterInput)
		wantErr error
	}{
		{"short username", func(in *auth.RegisterInput) { in.Username = "al" }, errs.ErrValidation},
		{"bad email", func(in *auth.RegisterInput) { in.Email = "not-an-email" }, errs.ErrValidation},
		{"empty email", func(in *auth.RegisterInput) { in.Email = "  " }, errs.ErrValidation},
		{"email with display name", func(in *auth.RegisterInput) { in.Email = "Ann <ann@x.com>" }, errs.ErrValidation},
		{"short password", func(in *auth.RegisterInput) { in.Password = "12345" }, errs.ErrValidation},
		{"missing lastname", func(in *auth.RegisterInput) { in.Lastname = " " }, errs.ErrValidation},
		{"wrong operator code", func(in *auth.RegisterInput) { in.OperatorCode = "guess" }, errs.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validInput())

	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestLogin(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	// Act
	session, err := svc.Login(ctx, "a@x.com", "secret1")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	require.NotNil(t, session.User.LastLoginAt)

	_, err = svc.Login(ctx, "a@x.com", "wrong-pass")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	_, err = svc.Login(ctx, "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, tokens := newService(t)
	session, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	// Act
	user, err := svc.Authenticate(ctx, session.Token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, user.ID)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)

	ghost, err := tokens.Issue(&models.User{ID: 999, Email: "ghost@x.com", Role: models.RoleOperator})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, ghost)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}
