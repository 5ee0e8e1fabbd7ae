package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
	"github.com/yigit/gradmap/internal/pkg/dberrors"
	"github.com/yigit/gradmap/internal/pkg/logger"
)

// AccountRepository handles app_user database operations
type AccountRepository struct {
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{sb: statementBuilder()}
}

// UsernameExists reports whether an account with exactly this username
// (case-sensitive) exists.
func (r *AccountRepository) UsernameExists(ctx context.Context, q db.Querier, username string) (bool, error) {
	return r.exists(ctx, q, squirrel.Eq{"username": username})
}

// EmailExists reports whether an account already uses this email.
func (r *AccountRepository) EmailExists(ctx context.Context, q db.Querier, email string) (bool, error) {
	return r.exists(ctx, q, squirrel.Eq{"email": email})
}

func (r *AccountRepository) exists(ctx context.Context, q db.Querier, pred squirrel.Eq) (bool, error) {
	sql, args, err := r.sb.Select("user_id").
		From("app_user").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build account lookup query: %w", err)
	}

	var id int64
	err = q.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Msg("Error checking account existence")
		return false, fmt.Errorf("error checking account existence: %w", err)
	}
	return true, nil
}

// Create inserts a new account and returns its id.
func (r *AccountRepository) Create(ctx context.Context, q db.Querier, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("app_user").
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create account query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUsernameTaken
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create account query")
		return 0, fmt.Errorf("error creating account: %w", err)
	}
	return id, nil
}

// GetByUsername loads the account with exactly this username.
func (r *AccountRepository) GetByUsername(ctx context.Context, q db.Querier, username string) (*models.User, error) {
	sql, args, err := r.sb.Select("user_id", "username", "email", "password_hash").
		From("app_user").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get account query: %w", err)
	}

	user := &models.User{}
	err = q.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning account row")
		return nil, fmt.Errorf("error getting account by username: %w", err)
	}
	return user, nil
}
