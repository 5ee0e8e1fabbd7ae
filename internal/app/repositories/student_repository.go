package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/logger"
)

// StudentEmailConstraint is the unique constraint on student.email
const StudentEmailConstraint = "student_email_key"

// StudentRepository handles student and student link-table operations
type StudentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{sb: statementBuilder()}
}

// studentDependents lists the link tables that reference student, in
// deletion order.
var studentDependents = []string{"member_of", "lives_in", "works_in", "graduated_in"}

// Create inserts the student row and returns the generated id.
func (r *StudentRepository) Create(ctx context.Context, q db.Querier, s *models.NewStudent) (int64, error) {
	tags := s.IndustryTags
	if tags == nil {
		tags = []string{}
	}
	sql, args, err := r.sb.Insert("student").
		Columns("first_name", "last_name", "email", "industry_tags").
		Values(s.FirstName, s.LastName, s.Email, tags).
		Suffix("RETURNING student_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}

// AddResidence opens a lives_in row starting today.
func (r *StudentRepository) AddResidence(ctx context.Context, q db.Querier, studentID, locationID int64) error {
	sql, args, err := r.sb.Insert("lives_in").
		Columns("student_id", "loc_id", "since_date").
		Values(studentID, locationID, squirrel.Expr("CURRENT_DATE")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build residence query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error adding residence: %w", err)
	}
	return nil
}

// AddEmployment opens a works_in row starting in startYear.
func (r *StudentRepository) AddEmployment(ctx context.Context, q db.Querier, studentID, industryID int64, company *string, startYear int) error {
	sql, args, err := r.sb.Insert("works_in").
		Columns("student_id", "industry_id", "company", "start_year").
		Values(studentID, industryID, company, startYear).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build employment query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error adding employment: %w", err)
	}
	return nil
}

// AddMembership opens a member_of row joined today.
func (r *StudentRepository) AddMembership(ctx context.Context, q db.Querier, studentID, clubID int64) error {
	sql, args, err := r.sb.Insert("member_of").
		Columns("student_id", "club_id", "join_date").
		Values(studentID, clubID, squirrel.Expr("CURRENT_DATE")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build membership query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error adding membership: %w", err)
	}
	return nil
}

// AddGraduation makes sure the year exists in year_dim and records the degree.
func (r *StudentRepository) AddGraduation(ctx context.Context, q db.Querier, studentID int64, year int, degree string) error {
	yearSQL, yearArgs, err := r.sb.Insert("year_dim").
		Columns("year").
		Values(year).
		Suffix("ON CONFLICT (year) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build year query: %w", err)
	}
	if _, err := q.Exec(ctx, yearSQL, yearArgs...); err != nil {
		return fmt.Errorf("error adding graduation year: %w", err)
	}

	sql, args, err := r.sb.Insert("graduated_in").
		Columns("student_id", "year", "degree").
		Values(studentID, year, degree).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build graduation query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error adding graduation: %w", err)
	}
	return nil
}

// List returns every student ordered by last name, then first name.
func (r *StudentRepository) List(ctx context.Context, q db.Querier) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("student_id", "first_name", "last_name", "email", "industry_tags").
		From("student").
		OrderBy("last_name", "first_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.IndustryTags); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// GetByID loads one student including the home address composite fields.
func (r *StudentRepository) GetByID(ctx context.Context, q db.Querier, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.student_id", "s.first_name", "s.last_name", "s.email", "s.industry_tags",
		"(s.home_address).street", "(s.home_address).city",
		"(s.home_address).state", "(s.home_address).country",
	).
		From("student s").
		Where(squirrel.Eq{"s.student_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	addr := &models.Address{}
	err = q.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.IndustryTags,
		&addr.Street, &addr.City, &addr.State, &addr.Country,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	if addr.Street != nil || addr.City != nil || addr.State != nil || addr.Country != nil {
		s.HomeAddress = addr
	}
	return s, nil
}

// CurrentResidence returns the open lives_in row, or nil when there is none.
func (r *StudentRepository) CurrentResidence(ctx context.Context, q db.Querier, studentID int64) (*models.Residence, error) {
	sql, args, err := r.sb.Select("l.loc_id", "l.city", "l.state", "l.country", "li.since_date").
		From("lives_in li").
		Join("location l ON li.loc_id = l.loc_id").
		Where(squirrel.Eq{"li.student_id": studentID, "li.until_date": nil}).
		OrderBy("li.since_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build residence query: %w", err)
	}

	res := &models.Residence{}
	err = q.QueryRow(ctx, sql, args...).Scan(
		&res.Location.ID, &res.Location.City, &res.Location.State, &res.Location.Country, &res.SinceDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting current residence: %w", err)
	}
	return res, nil
}

// CurrentEmployment returns the open works_in row, or nil when there is none.
func (r *StudentRepository) CurrentEmployment(ctx context.Context, q db.Querier, studentID int64) (*models.Employment, error) {
	sql, args, err := r.sb.Select("i.industry_id", "i.name", "w.company", "w.start_year").
		From("works_in w").
		Join("industry i ON w.industry_id = i.industry_id").
		Where(squirrel.Eq{"w.student_id": studentID, "w.end_year": nil}).
		OrderBy("w.start_year DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build employment query: %w", err)
	}

	emp := &models.Employment{}
	err = q.QueryRow(ctx, sql, args...).Scan(&emp.Industry.ID, &emp.Industry.Name, &emp.Company, &emp.StartYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting current employment: %w", err)
	}
	return emp, nil
}

// Memberships returns all member_of rows, active and historical, newest first.
func (r *StudentRepository) Memberships(ctx context.Context, q db.Querier, studentID int64) ([]*models.Membership, error) {
	sql, args, err := r.sb.Select("c.club_id", "c.name", "c.category", "m.join_date", "m.leave_date").
		From("member_of m").
		Join("club c ON m.club_id = c.club_id").
		Where(squirrel.Eq{"m.student_id": studentID}).
		OrderBy("m.join_date DESC", "c.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build memberships query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing memberships: %w", err)
	}
	defer rows.Close()

	memberships := []*models.Membership{}
	for rows.Next() {
		m := &models.Membership{}
		if err := rows.Scan(&m.ClubID, &m.ClubName, &m.Category, &m.JoinDate, &m.LeaveDate); err != nil {
			return nil, fmt.Errorf("error scanning membership row: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}
	return memberships, nil
}

// Graduation returns the most recent graduated_in row, or nil.
func (r *StudentRepository) Graduation(ctx context.Context, q db.Querier, studentID int64) (*models.Graduation, error) {
	sql, args, err := r.sb.Select("year", "degree", "honors").
		From("graduated_in").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("year DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build graduation query: %w", err)
	}

	g := &models.Graduation{}
	if err := q.QueryRow(ctx, sql, args...).Scan(&g.Year, &g.Degree, &g.Honors); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting graduation: %w", err)
	}
	return g, nil
}

// Delete removes the student's link rows and then the student. It must run
// inside a transaction; ErrNotFound is returned when no student row matched.
func (r *StudentRepository) Delete(ctx context.Context, q db.Querier, id int64) error {
	for _, table := range studentDependents {
		sql, args, err := r.sb.Delete(table).Where(squirrel.Eq{"student_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete %s query: %w", table, err)
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error deleting %s rows: %w", table, err)
		}
	}

	sql, args, err := r.sb.Delete("student").Where(squirrel.Eq{"student_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}
	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
