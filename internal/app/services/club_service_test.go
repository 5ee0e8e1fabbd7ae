package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
)

var (
	countActive       = regexp.QuoteMeta("SELECT COUNT(*) FROM member_of WHERE club_id")
	deleteMemberships = regexp.QuoteMeta("DELETE FROM member_of WHERE club_id")
	deleteClub        = regexp.QuoteMeta("DELETE FROM club WHERE club_id")
)

func newClubService() ClubService {
	return NewClubService(repositories.NewClubRepository())
}

func TestDeleteClubRefusedWithActiveMembers(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectBegin()
	mock.ExpectQuery(countActive).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectRollback()

	err := newClubService().DeleteClub(context.Background(), mock, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrClubHasActiveMembers)
	assert.Equal(t, "Cannot delete club: it has 2 active member(s).", err.Error())

	var active *apperrors.ActiveMembersError
	require.True(t, errors.As(err, &active))
	assert.Equal(t, int64(2), active.Count)
	// No DELETE was issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClubWithoutActiveMembers(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectBegin()
	mock.ExpectQuery(countActive).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectExec(deleteMemberships).WithArgs(int64(3)).WillReturnResult(pgxmock.NewResult("DELETE", 4))
	mock.ExpectExec(deleteClub).WithArgs(int64(3)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, newClubService().DeleteClub(context.Background(), mock, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClubMissing(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectBegin()
	mock.ExpectQuery(countActive).WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectExec(deleteMemberships).WithArgs(int64(99)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(deleteClub).WithArgs(int64(99)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := newClubService().DeleteClub(context.Background(), mock, 99)
	assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClubDefaultsCategory(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO club")).
		WithArgs("Chess", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"club_id"}).AddRow(int64(12)))
	mock.ExpectCommit()

	club, err := newClubService().CreateClub(context.Background(), mock, &models.Club{Name: "Chess"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), club.ID)
	require.NotNil(t, club.Category)
	assert.Equal(t, models.DefaultClubCategory, *club.Category)
}

func TestCreateClubRejectsBlankName(t *testing.T) {
	_, err := newClubService().CreateClub(context.Background(), newMockConn(t), &models.Club{Name: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
