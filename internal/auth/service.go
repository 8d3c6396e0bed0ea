// Package auth registers and logs in users and turns bearer tokens back into
// the user they were issued to.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"hotelchat/backend/internal/errs"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// validate applies the same tag rules gin uses when binding request bodies.
var validate = validator.New()

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Firstname    string
	Lastname     string
	OperatorCode string
}

// Session is what a successful register or login hands back to the client.
type Session struct {
	Token string
	User  *models.User
}

type Service struct {
	store        storage.Storage
	tokens       *TokenIssuer
	operatorCode string
}

// NewService builds the auth service. An empty operatorCode disables
// operator self-registration.
func NewService(store storage.Storage, tokens *TokenIssuer, operatorCode string) *Service {
	return &Service{store: store, tokens: tokens, operatorCode: operatorCode}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	role := models.RoleUser
	if in.OperatorCode != "" {
		if s.operatorCode == "" || subtle.ConstantTimeCompare([]byte(in.OperatorCode), []byte(s.operatorCode)) != 1 {
			return nil, fmt.Errorf("invalid operator code: %w", errs.ErrForbidden)
		}
		role = models.RoleOperator
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:   in.Username,
		Firstname:  in.Firstname,
		Lastname:   in.Lastname,
		Email:      in.Email,
		Password:   hash,
		Profile:    datatypes.NewJSONType(models.Profile{FirstName: in.Firstname, LastName: in.Lastname}),
		IsEmployee: role == models.RoleOperator,
		Role:       role,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return nil, fmt.Errorf("user with this email already exists: %w", errs.ErrConflict)
		}
		return nil, err
	}
	slog.Info("user registered", slog.Uint64("user_id", uint64(user.ID)), slog.String("role", user.Role))

	return s.session(user)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", errs.ErrValidation)
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthenticated)
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(user.Password, password) {
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthenticated)
	}

	now := time.Now()
	if err := s.store.UpdateLastLogin(ctx, user.ID, now); err != nil {
		slog.Warn("failed to record last login", slog.Uint64("user_id", uint64(user.ID)), slog.Any("err", err))
	} else {
		user.LastLoginAt = &now
	}

	return s.session(user)
}

// Authenticate resolves a bearer token to the current state of its user.
// The role is read from the database, so promotions and demotions apply to
// tokens issued before them.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, fmt.Errorf("missing token: %w", errs.ErrUnauthenticated)
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", errs.ErrUnauthenticated)
	}

	user, err := s.store.GetUserByID(ctx, claims.ID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("user no longer exists: %w", errs.ErrUnauthenticated)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) session(user *models.User) (*Session, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

func validateRegistration(in RegisterInput) error {
	var problems []string
	if len(in.Username) < MinUsernameLength {
		problems = append(problems, fmt.Sprintf("username must be at least %d characters", MinUsernameLength))
	}
	if err := validate.Var(in.Email, "required,email"); err != nil {
		problems = append(problems, "email must be a valid address")
	}
	if len(in.Password) < MinPasswordLength {
		problems = append(problems, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if strings.TrimSpace(in.Firstname) == "" {
		problems = append(problems, "firstname is required")
	}
	if strings.TrimSpace(in.Lastname) == "" {
		problems = append(problems, "lastname is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), errs.ErrValidation)
	}
	return nil
}
