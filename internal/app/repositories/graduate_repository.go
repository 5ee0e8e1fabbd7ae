package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/logger"
)

// GraduateRepository serves the read-only joined views of the home page and
// the statistics API.
type GraduateRepository struct {
	sb squirrel.StatementBuilderType
}

// NewGraduateRepository creates a new GraduateRepository
func NewGraduateRepository() *GraduateRepository {
	return &GraduateRepository{sb: statementBuilder()}
}

// graduatesQuery joins every student to their current residence, current
// employment, active membership and graduation record. Students without a
// current residence are excluded.
func (r *GraduateRepository) graduatesQuery(filter models.GraduateFilter) squirrel.SelectBuilder {
	query := r.sb.Select(
		"s.student_id", "s.first_name", "s.last_name", "s.email",
		"l.city", "l.state",
		"g.year AS graduation_year", "g.degree", "g.honors",
		"i.name AS industry_name",
		"c.club_id", "c.name AS club_name", "c.category AS club_category",
	).
		From("student s").
		LeftJoin("graduated_in g ON s.student_id = g.student_id").
		LeftJoin("lives_in li ON s.student_id = li.student_id AND li.until_date IS NULL").
		LeftJoin("location l ON li.loc_id = l.loc_id").
		LeftJoin("works_in w ON s.student_id = w.student_id AND w.end_year IS NULL").
		LeftJoin("industry i ON w.industry_id = i.industry_id").
		LeftJoin("member_of m ON s.student_id = m.student_id AND m.leave_date IS NULL").
		LeftJoin("club c ON m.club_id = c.club_id").
		Where("l.loc_id IS NOT NULL")

	if filter.ClubID != nil {
		query = query.Where(squirrel.Eq{"c.club_id": *filter.ClubID})
	}
	if filter.Year != nil {
		query = query.Where(squirrel.Eq{"g.year": *filter.Year})
	}
	return query.OrderBy("s.last_name", "s.first_name")
}

// List returns the graduates matching filter.
func (r *GraduateRepository) List(ctx context.Context, q db.Querier, filter models.GraduateFilter) ([]*models.Graduate, error) {
	sql, args, err := r.graduatesQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build graduates query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing graduates query")
		return nil, fmt.Errorf("error listing graduates: %w", err)
	}
	defer rows.Close()

	graduates := []*models.Graduate{}
	for rows.Next() {
		g := &models.Graduate{}
		err := rows.Scan(
			&g.StudentID, &g.FirstName, &g.LastName, &g.Email,
			&g.City, &g.State,
			&g.GraduationYear, &g.Degree, &g.Honors,
			&g.Industry,
			&g.ClubID, &g.Club, &g.ClubCategory,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning graduate row: %w", err)
		}
		graduates = append(graduates, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating graduate rows: %w", err)
	}
	return graduates, nil
}

// Years returns the distinct graduation years, newest first.
func (r *GraduateRepository) Years(ctx context.Context, q db.Querier) ([]int, error) {
	sql, args, err := r.sb.Select("DISTINCT year").
		From("graduated_in").
		OrderBy("year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build years query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing years: %w", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("error scanning year row: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating year rows: %w", err)
	}
	return years, nil
}

func statisticsFilter(query squirrel.SelectBuilder, filter models.GraduateFilter) squirrel.SelectBuilder {
	query = query.
		LeftJoin("graduated_in g ON s.student_id = g.student_id").
		LeftJoin("member_of m ON s.student_id = m.student_id AND m.leave_date IS NULL")
	if filter.ClubID != nil {
		query = query.Where(squirrel.Eq{"m.club_id": *filter.ClubID})
	}
	if filter.Year != nil {
		query = query.Where(squirrel.Eq{"g.year": *filter.Year})
	}
	return query
}

// LocationCounts groups matching students by current city.
func (r *GraduateRepository) LocationCounts(ctx context.Context, q db.Querier, filter models.GraduateFilter) ([]*models.LocationCount, error) {
	query := r.sb.Select("l.city", "l.state", "COUNT(DISTINCT s.student_id) AS student_count").
		From("student s").
		Join("lives_in li ON s.student_id = li.student_id AND li.until_date IS NULL").
		Join("location l ON li.loc_id = l.loc_id")
	sql, args, err := statisticsFilter(query, filter).
		GroupBy("l.city", "l.state").
		OrderBy("student_count DESC", "l.city").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build location statistics query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying location statistics: %w", err)
	}
	defer rows.Close()

	counts := []*models.LocationCount{}
	for rows.Next() {
		c := &models.LocationCount{}
		if err := rows.Scan(&c.City, &c.State, &c.StudentCount); err != nil {
			return nil, fmt.Errorf("error scanning location statistics row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location statistics rows: %w", err)
	}
	return counts, nil
}

// IndustryCounts groups matching students by current industry.
func (r *GraduateRepository) IndustryCounts(ctx context.Context, q db.Querier, filter models.GraduateFilter) ([]*models.IndustryCount, error) {
	query := r.sb.Select("i.name AS industry_name", "COUNT(DISTINCT s.student_id) AS student_count").
		From("student s").
		Join("works_in w ON s.student_id = w.student_id AND w.end_year IS NULL").
		Join("industry i ON w.industry_id = i.industry_id")
	sql, args, err := statisticsFilter(query, filter).
		GroupBy("i.name").
		OrderBy("student_count DESC", "i.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build industry statistics query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying industry statistics: %w", err)
	}
	defer rows.Close()

	counts := []*models.IndustryCount{}
	for rows.Next() {
		c := &models.IndustryCount{}
		if err := rows.Scan(&c.Industry, &c.StudentCount); err != nil {
			return nil, fmt.Errorf("error scanning industry statistics row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating industry statistics rows: %w", err)
	}
	return counts, nil
}
