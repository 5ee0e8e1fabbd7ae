package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
	"github.com/yigit/gradmap/internal/pkg/dberrors"
)

// LookupRepository handles the location and industry dimension tables
type LookupRepository struct {
	sb squirrel.StatementBuilderType
}

// NewLookupRepository creates a new LookupRepository
func NewLookupRepository() *LookupRepository {
	return &LookupRepository{sb: statementBuilder()}
}

// Locations returns every location ordered by city.
func (r *LookupRepository) Locations(ctx context.Context, q db.Querier) ([]*models.Location, error) {
	sql, args, err := r.sb.Select("loc_id", "city", "state", "country").
		From("location").
		OrderBy("city", "state").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build locations query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing locations: %w", err)
	}
	defer rows.Close()

	locations := []*models.Location{}
	for rows.Next() {
		l := &models.Location{}
		if err := rows.Scan(&l.ID, &l.City, &l.State, &l.Country); err != nil {
			return nil, fmt.Errorf("error scanning location row: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location rows: %w", err)
	}
	return locations, nil
}

// CreateLocation inserts a location and sets its id.
func (r *LookupRepository) CreateLocation(ctx context.Context, q db.Querier, l *models.Location) (*models.Location, error) {
	sql, args, err := r.sb.Insert("location").
		Columns("city", "state", "country").
		Values(l.City, l.State, l.Country).
		Suffix("RETURNING loc_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create location query: %w", err)
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&l.ID); err != nil {
		return nil, fmt.Errorf("error creating location: %w", err)
	}
	return l, nil
}

// Industries returns every industry ordered by name.
func (r *LookupRepository) Industries(ctx context.Context, q db.Querier) ([]*models.Industry, error) {
	sql, args, err := r.sb.Select("industry_id", "name").
		From("industry").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build industries query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing industries: %w", err)
	}
	defer rows.Close()

	industries := []*models.Industry{}
	for rows.Next() {
		i := &models.Industry{}
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, fmt.Errorf("error scanning industry row: %w", err)
		}
		industries = append(industries, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating industry rows: %w", err)
	}
	return industries, nil
}

// CreateIndustry inserts an industry; a duplicate name yields
// apperrors.ErrIndustryAlreadyExists.
func (r *LookupRepository) CreateIndustry(ctx context.Context, q db.Querier, i *models.Industry) (*models.Industry, error) {
	sql, args, err := r.sb.Insert("industry").
		Columns("name").
		Values(i.Name).
		Suffix("RETURNING industry_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create industry query: %w", err)
	}
	if err := q.QueryRow(ctx, sql, args...).Scan(&i.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrIndustryAlreadyExists
		}
		return nil, fmt.Errorf("error creating industry: %w", err)
	}
	return i, nil
}

// CountRows returns the number of rows in one of the dimension tables. The
// seeder uses it to detect an empty database.
func (r *LookupRepository) CountRows(ctx context.Context, q db.Querier, table string) (int64, error) {
	switch table {
	case "location", "industry", "club":
	default:
		return 0, fmt.Errorf("unknown dimension table %q", table)
	}
	sql, args, err := r.sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var n int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s rows: %w", table, err)
	}
	return n, nil
}
