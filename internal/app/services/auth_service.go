package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
	"github.com/yigit/gradmap/internal/pkg/auth"
	"github.com/yigit/gradmap/internal/pkg/validation"
)

// AuthService handles account sign-in and sign-up
type AuthService struct {
	accountRepo *repositories.AccountRepository
	hasher      *auth.PasswordHasher
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	accountRepo *repositories.AccountRepository,
	hasher *auth.PasswordHasher,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

// ValidateCredentials is the validation step shared by both actions. It
// never touches the database. Username and email are trimmed; the password
// is trimmed only for the blank check and is otherwise carried verbatim.
func (s *AuthService) ValidateCredentials(action dto.AuthAction, form dto.LoginForm) (dto.Credentials, error) {
	username := validation.NewStringValidation(form.Username)
	password := validation.NewStringValidation(form.Password)
	creds := dto.Credentials{
		Username: username.Value,
		Password: form.Password,
	}

	if !username.Validate() || !password.Validate() {
		return creds, apperrors.ErrMissingCredentials
	}
	if !username.WithMaxLength(validation.UsernameMaxLength).Validate() {
		return creds, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("Username must be at most %d characters.", validation.UsernameMaxLength))
	}
	// bcrypt rejects longer input
	if len(form.Password) > validation.PasswordMaxBytes {
		return creds, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("Password must be at most %d bytes.", validation.PasswordMaxBytes))
	}

	if action != dto.AuthActionSignUp {
		return creds, nil
	}

	email := validation.NewStringValidation(form.Email)
	creds.Email = email.Value
	if !email.Validate() {
		return creds, apperrors.ErrEmailRequired
	}
	if !email.WithMaxLength(validation.EmailMaxLength).WithPattern(validation.CompiledPatterns.Email).Validate() {
		return creds, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Please enter a valid email address.")
	}
	return creds, nil
}

// SignUp registers a new account. Username uniqueness is checked first,
// then email, and exactly one row is inserted on success.
func (s *AuthService) SignUp(ctx context.Context, q db.Querier, creds dto.Credentials) (*models.User, error) {
	taken, err := s.accountRepo.UsernameExists(ctx, q, creds.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	taken, err = s.accountRepo.EmailExists(ctx, q, creds.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := creds.Email
	user := &models.User{
		Username:     creds.Username,
		Email:        &email,
		PasswordHash: hash,
	}
	id, err := s.accountRepo.Create(ctx, q, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userID", id).Str("username", user.Username).Msg("Account registered")
	return user, nil
}

// SignIn verifies the password of an existing account. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, q db.Querier, creds dto.Credentials) (*models.User, error) {
	user, err := s.accountRepo.GetByUsername(ctx, q, creds.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if !s.hasher.Check(user.PasswordHash, creds.Password) {
		s.logger.Debug().Str("username", creds.Username).Msg("Password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
