package services

import (
	"context"
	"fmt"

	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/db"
)

// GraduateService defines the read-only graduate views
type GraduateService interface {
	GetGraduates(ctx context.Context, q db.Querier, filter models.GraduateFilter) ([]*models.Graduate, error)
	GetYears(ctx context.Context, q db.Querier) ([]int, error)
	GetStatistics(ctx context.Context, q db.Querier, filter models.GraduateFilter) (*models.Statistics, error)
}

type graduateServiceImpl struct {
	graduateRepo *repositories.GraduateRepository
}

// NewGraduateService creates a new graduate service instance
func NewGraduateService(graduateRepo *repositories.GraduateRepository) GraduateService {
	return &graduateServiceImpl{graduateRepo: graduateRepo}
}

func (s *graduateServiceImpl) GetGraduates(ctx context.Context, q db.Querier, filter models.GraduateFilter) ([]*models.Graduate, error) {
	return s.graduateRepo.List(ctx, q, filter)
}

func (s *graduateServiceImpl) GetYears(ctx context.Context, q db.Querier) ([]int, error) {
	return s.graduateRepo.Years(ctx, q)
}

// GetStatistics runs the location and industry distributions one after the
// other on the same connection.
func (s *graduateServiceImpl) GetStatistics(ctx context.Context, q db.Querier, filter models.GraduateFilter) (*models.Statistics, error) {
	locations, err := s.graduateRepo.LocationCounts(ctx, q, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load location statistics: %w", err)
	}
	industries, err := s.graduateRepo.IndustryCounts(ctx, q, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load industry statistics: %w", err)
	}
	return &models.Statistics{Locations: locations, Industries: industries}, nil
}
