package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
)

func newMock(t *testing.T) pgxmock.PgxConnIface {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close(context.Background()) })
	return mock
}

func TestGraduatesQueryWithoutFilters(t *testing.T) {
	sql, args, err := NewGraduateRepository().graduatesQuery(models.GraduateFilter{}).ToSql()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, sql, "LEFT JOIN lives_in li ON s.student_id = li.student_id AND li.until_date IS NULL")
	assert.Contains(t, sql, "WHERE l.loc_id IS NOT NULL")
	assert.NotContains(t, sql, "c.club_id =")
	assert.True(t, regexp.MustCompile(`ORDER BY s\.last_name, s\.first_name$`).MatchString(sql))
}

func TestGraduatesQueryBindsFilters(t *testing.T) {
	club := int64(4)
	year := 2021
	sql, args, err := NewGraduateRepository().graduatesQuery(models.GraduateFilter{ClubID: &club, Year: &year}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "c.club_id = $1")
	assert.Contains(t, sql, "g.year = $2")
	assert.Equal(t, []any{int64(4), 2021}, args)
}

func TestUsernameExists(t *testing.T) {
	mock := newMock(t)
	repo := NewAccountRepository()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM app_user WHERE username")).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM app_user WHERE username")).
		WithArgs("Alice").
		WillReturnError(pgx.ErrNoRows)

	exists, err := repo.UsernameExists(context.Background(), mock, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists(context.Background(), mock, "Alice")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccountMapsUniqueViolation(t *testing.T) {
	mock := newMock(t)
	email := "a@example.com"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO app_user")).
		WithArgs("alice", &email, "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := NewAccountRepository().Create(context.Background(), mock, &models.User{
		Username: "alice", Email: &email, PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsernameNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM app_user WHERE username")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	user, err := NewAccountRepository().GetByUsername(context.Background(), mock, "ghost")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClubSearchBlankTermListsByName(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM club c ORDER BY c.name")).
		WillReturnRows(pgxmock.NewRows([]string{"club_id", "name", "category", "description"}).
			AddRow(int64(1), "Chess", nil, nil).
			AddRow(int64(2), "Robotics", nil, nil))

	clubs, err := NewClubRepository().Search(context.Background(), mock, "   ")
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Chess", clubs[0].Name)
	assert.Nil(t, clubs[0].Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClubSearchRanksMatches(t *testing.T) {
	mock := newMock(t)
	rank := float32(0.6)
	mock.ExpectQuery(regexp.QuoteMeta("ts_rank(")).
		WithArgs("robots", "robots").
		WillReturnRows(pgxmock.NewRows([]string{"club_id", "name", "category", "description", "rank"}).
			AddRow(int64(2), "Robotics", nil, nil, &rank))

	clubs, err := NewClubRepository().Search(context.Background(), mock, "robots")
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	require.NotNil(t, clubs[0].Rank)
	assert.InDelta(t, 0.6, *clubs[0].Rank, 0.0001)
}

func TestCountActiveMembersFiltersOpenRows(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM member_of WHERE club_id = $1 AND leave_date IS NULL")).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	n, err := NewClubRepository().CountActiveMembers(context.Background(), mock, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStudentDeleteRemovesDependentsFirst(t *testing.T) {
	mock := newMock(t)
	for _, table := range studentDependents {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table + " WHERE student_id")).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
	}
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM student WHERE student_id")).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewStudentRepository().Delete(context.Background(), mock, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountRowsRejectsUnknownTable(t *testing.T) {
	_, err := NewLookupRepository().CountRows(context.Background(), newMock(t), "app_user")
	assert.Error(t, err)
}
