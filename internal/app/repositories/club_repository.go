package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
	"github.com/yigit/gradmap/internal/pkg/dberrors"
	"github.com/yigit/gradmap/internal/pkg/logger"
)

const clubDocument = "to_tsvector('english', coalesce(c.description, ''))"

// ClubRepository handles club database operations
type ClubRepository struct {
	sb squirrel.StatementBuilderType
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository() *ClubRepository {
	return &ClubRepository{sb: statementBuilder()}
}

// Create inserts a club and returns it with its id.
func (r *ClubRepository) Create(ctx context.Context, q db.Querier, club *models.Club) (*models.Club, error) {
	sql, args, err := r.sb.Insert("club").
		Columns("name", "category", "description").
		Values(club.Name, club.Category, club.Description).
		Suffix("RETURNING club_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create club query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&club.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrClubAlreadyExists
		}
		logger.Error().Err(err).Str("name", club.Name).Msg("Error executing create club query")
		return nil, fmt.Errorf("error creating club: %w", err)
	}
	return club, nil
}

// List returns every club ordered by name.
func (r *ClubRepository) List(ctx context.Context, q db.Querier) ([]*models.Club, error) {
	sql, args, err := r.sb.Select("c.club_id", "c.name", "c.category", "c.description").
		From("club c").
		OrderBy("c.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list clubs query: %w", err)
	}
	return r.scanClubs(ctx, q, sql, args, false)
}

// Search runs a full-text query over club descriptions, best match first.
// A blank term falls back to List.
func (r *ClubRepository) Search(ctx context.Context, q db.Querier, term string) ([]*models.Club, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.List(ctx, q)
	}

	sql, args, err := r.sb.Select("c.club_id", "c.name", "c.category", "c.description").
		Column(squirrel.Alias(squirrel.Expr("ts_rank("+clubDocument+", plainto_tsquery('english', ?))", term), "rank")).
		From("club c").
		Where(squirrel.Expr(clubDocument+" @@ plainto_tsquery('english', ?)", term)).
		OrderBy("rank DESC", "c.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search clubs query: %w", err)
	}
	return r.scanClubs(ctx, q, sql, args, true)
}

func (r *ClubRepository) scanClubs(ctx context.Context, q db.Querier, sql string, args []any, ranked bool) ([]*models.Club, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing club query")
		return nil, fmt.Errorf("error querying clubs: %w", err)
	}
	defer rows.Close()

	clubs := []*models.Club{}
	for rows.Next() {
		c := &models.Club{}
		dest := []any{&c.ID, &c.Name, &c.Category, &c.Description}
		if ranked {
			dest = append(dest, &c.Rank)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning club row: %w", err)
		}
		clubs = append(clubs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating club rows: %w", err)
	}
	return clubs, nil
}

// CountActiveMembers counts member_of rows of the club with no leave date.
func (r *ClubRepository) CountActiveMembers(ctx context.Context, q db.Querier, clubID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("member_of").
		Where(squirrel.Eq{"club_id": clubID, "leave_date": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build active members query: %w", err)
	}

	var count int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting active members: %w", err)
	}
	return count, nil
}

// Delete removes the club's historical memberships and then the club.
// Callers check CountActiveMembers first, inside the same transaction.
func (r *ClubRepository) Delete(ctx context.Context, q db.Querier, clubID int64) error {
	sql, args, err := r.sb.Delete("member_of").Where(squirrel.Eq{"club_id": clubID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete memberships query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting club memberships: %w", err)
	}

	sql, args, err = r.sb.Delete("club").Where(squirrel.Eq{"club_id": clubID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete club query: %w", err)
	}
	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("clubID", clubID).Msg("Error executing delete club query")
		return fmt.Errorf("error deleting club: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
