package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
)

// FormOptions holds the dropdown contents of the add-student form
type FormOptions struct {
	Clubs      []*models.Club
	Locations  []*models.Location
	Industries []*models.Industry
}

// LookupService defines location and industry operations
type LookupService interface {
	GetLocations(ctx context.Context, q db.Querier) ([]*models.Location, error)
	GetIndustries(ctx context.Context, q db.Querier) ([]*models.Industry, error)
	GetFormOptions(ctx context.Context, q db.Querier) (*FormOptions, error)
	CreateLocation(ctx context.Context, conn db.Conn, location *models.Location) (*models.Location, error)
	CreateIndustry(ctx context.Context, conn db.Conn, industry *models.Industry) (*models.Industry, error)
}

type lookupServiceImpl struct {
	lookupRepo *repositories.LookupRepository
	clubRepo   *repositories.ClubRepository
}

// NewLookupService creates a new lookup service instance
func NewLookupService(lookupRepo *repositories.LookupRepository, clubRepo *repositories.ClubRepository) LookupService {
	return &lookupServiceImpl{lookupRepo: lookupRepo, clubRepo: clubRepo}
}

func (s *lookupServiceImpl) GetLocations(ctx context.Context, q db.Querier) ([]*models.Location, error) {
	return s.lookupRepo.Locations(ctx, q)
}

func (s *lookupServiceImpl) GetIndustries(ctx context.Context, q db.Querier) ([]*models.Industry, error) {
	return s.lookupRepo.Industries(ctx, q)
}

// GetFormOptions loads clubs, locations and industries in that order
func (s *lookupServiceImpl) GetFormOptions(ctx context.Context, q db.Querier) (*FormOptions, error) {
	clubs, err := s.clubRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	locations, err := s.lookupRepo.Locations(ctx, q)
	if err != nil {
		return nil, err
	}
	industries, err := s.lookupRepo.Industries(ctx, q)
	if err != nil {
		return nil, err
	}
	return &FormOptions{Clubs: clubs, Locations: locations, Industries: industries}, nil
}

// CreateLocation inserts a location; the country defaults to USA
func (s *lookupServiceImpl) CreateLocation(ctx context.Context, conn db.Conn, location *models.Location) (*models.Location, error) {
	if location == nil || strings.TrimSpace(location.City) == "" {
		return nil, fmt.Errorf("%w: city cannot be empty", apperrors.ErrValidationFailed)
	}
	if location.Country == nil || strings.TrimSpace(*location.Country) == "" {
		country := models.DefaultCountry
		location.Country = &country
	}

	var created *models.Location
	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		created, err = s.lookupRepo.CreateLocation(ctx, tx, location)
		return err
	})
	return created, err
}

// CreateIndustry inserts an industry; duplicates are a conflict
func (s *lookupServiceImpl) CreateIndustry(ctx context.Context, conn db.Conn, industry *models.Industry) (*models.Industry, error) {
	if industry == nil || strings.TrimSpace(industry.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	var created *models.Industry
	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		created, err = s.lookupRepo.CreateIndustry(ctx, tx, industry)
		return err
	})
	return created, err
}
