package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
	"github.com/yigit/gradmap/internal/pkg/logger"
)

// ClubService defines the interface for club-related operations
type ClubService interface {
	CreateClub(ctx context.Context, conn db.Conn, club *models.Club) (*models.Club, error)
	GetAllClubs(ctx context.Context, q db.Querier) ([]*models.Club, error)
	SearchClubs(ctx context.Context, q db.Querier, term string) ([]*models.Club, error)
	DeleteClub(ctx context.Context, conn db.Conn, id int64) error
}

// clubServiceImpl implements the ClubService interface
type clubServiceImpl struct {
	clubRepo *repositories.ClubRepository
}

// NewClubService creates a new club service instance
func NewClubService(clubRepo *repositories.ClubRepository) ClubService {
	return &clubServiceImpl{
		clubRepo: clubRepo,
	}
}

func (s *clubServiceImpl) validateClub(club *models.Club) error {
	if club == nil {
		return fmt.Errorf("%w: club is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(club.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateClub inserts a club, defaulting its category
func (s *clubServiceImpl) CreateClub(ctx context.Context, conn db.Conn, club *models.Club) (*models.Club, error) {
	if err := s.validateClub(club); err != nil {
		return nil, err
	}
	if club.Category == nil || strings.TrimSpace(*club.Category) == "" {
		category := models.DefaultClubCategory
		club.Category = &category
	}

	var created *models.Club
	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		created, err = s.clubRepo.Create(ctx, tx, club)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetAllClubs lists clubs by name
func (s *clubServiceImpl) GetAllClubs(ctx context.Context, q db.Querier) ([]*models.Club, error) {
	return s.clubRepo.List(ctx, q)
}

// SearchClubs runs the description full-text search
func (s *clubServiceImpl) SearchClubs(ctx context.Context, q db.Querier, term string) ([]*models.Club, error) {
	return s.clubRepo.Search(ctx, q, term)
}

// DeleteClub refuses while the club has active members. The count and the
// deletes run in the same transaction.
func (s *clubServiceImpl) DeleteClub(ctx context.Context, conn db.Conn, id int64) error {
	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		count, err := s.clubRepo.CountActiveMembers(ctx, tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &apperrors.ActiveMembersError{ClubID: id, Count: count}
		}
		return s.clubRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrClubNotFound
		}
		return err
	}

	logger.Info().Int64("clubID", id).Msg("Club deleted")
	return nil
}
