package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
)

func newStudentService() *studentServiceImpl {
	return &studentServiceImpl{
		studentRepo: repositories.NewStudentRepository(),
		now:         func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestAddStudentRequiredFieldsOnly(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO student")).
		WithArgs("Ada", "Lovelace", pgxmock.AnyArg(), []string{}).
		WillReturnRows(pgxmock.NewRows([]string{"student_id"}).AddRow(int64(21)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lives_in")).
		WithArgs(int64(21), int64(4)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	id, err := newStudentService().AddStudent(context.Background(), mock, &models.NewStudent{
		FirstName: "Ada", LastName: "Lovelace", LocationID: 4, Degree: models.DefaultDegree,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), id)
	// Exactly one student and one residence insert, nothing else.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddStudentWithAllLinks(t *testing.T) {
	club, industry, year := int64(2), int64(3), 2020
	company := "Initech"

	mock := newMockConn(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO student")).
		WithArgs("Ada", "Lovelace", pgxmock.AnyArg(), []string{}).
		WillReturnRows(pgxmock.NewRows([]string{"student_id"}).AddRow(int64(22)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lives_in")).
		WithArgs(int64(22), int64(4)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO works_in")).
		WithArgs(int64(22), int64(3), &company, 2024).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO member_of")).
		WithArgs(int64(22), int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO year_dim")).
		WithArgs(2020).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO graduated_in")).
		WithArgs(int64(22), 2020, "MS").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	_, err := newStudentService().AddStudent(context.Background(), mock, &models.NewStudent{
		FirstName: "Ada", LastName: "Lovelace", LocationID: 4,
		ClubID: &club, IndustryID: &industry, Company: &company,
		GraduationYear: &year, Degree: "MS",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddStudentRollsBackOnUnknownLocation(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO student")).
		WithArgs("Ada", "Lovelace", pgxmock.AnyArg(), []string{}).
		WillReturnRows(pgxmock.NewRows([]string{"student_id"}).AddRow(int64(23)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lives_in")).
		WithArgs(int64(23), int64(404)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	_, err := newStudentService().AddStudent(context.Background(), mock, &models.NewStudent{
		FirstName: "Ada", LastName: "Lovelace", LocationID: 404,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddStudentUniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantEmail  bool
	}{
		{"student email", repositories.StudentEmailConstraint, true},
		{"other constraint", "lives_in_pkey", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockConn(t)
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO student")).
				WithArgs("Ada", "Lovelace", pgxmock.AnyArg(), []string{}).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})
			mock.ExpectRollback()

			_, err := newStudentService().AddStudent(context.Background(), mock, &models.NewStudent{
				FirstName: "Ada", LastName: "Lovelace", LocationID: 4,
			})
			require.Error(t, err)
			assert.Equal(t, tt.wantEmail, errors.Is(err, apperrors.ErrStudentEmailExists))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteStudentMissing(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectBegin()
	for _, table := range []string{"member_of", "lives_in", "works_in", "graduated_in"} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table)).
			WithArgs(int64(8)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
	}
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM student")).
		WithArgs(int64(8)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := newStudentService().DeleteStudent(context.Background(), mock, 8)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileMissing(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM student s WHERE s.student_id")).
		WithArgs(int64(8)).
		WillReturnError(pgx.ErrNoRows)

	_, err := newStudentService().GetProfile(context.Background(), mock, 8)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
