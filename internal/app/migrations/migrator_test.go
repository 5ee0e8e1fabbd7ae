package migrations

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	createSchema    = regexp.QuoteMeta(`CREATE SCHEMA IF NOT EXISTS "public"`)
	createTracking  = regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")
	migrationExists = regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)")
	recordMigration = regexp.QuoteMeta("INSERT INTO schema_migrations (version, applied_at)")
)

func newMock(t *testing.T) pgxmock.PgxConnIface {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close(context.Background()) })
	return mock
}

func expectTracking(mock pgxmock.PgxConnIface) {
	mock.ExpectExec(createSchema).WillReturnResult(pgxmock.NewResult("CREATE SCHEMA", 0))
	mock.ExpectExec(createTracking).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
}

func expectApplied(mock pgxmock.PgxConnIface, version string, applied bool) {
	mock.ExpectQuery(migrationExists).
		WithArgs(version).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(applied))
}

func TestApplyCoreCreatesAccountTable(t *testing.T) {
	mock := newMock(t)
	expectTracking(mock)

	expectApplied(mock, "core/001", false)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS app_user")).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(recordMigration).
		WithArgs("core/001", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	expectApplied(mock, "core/002", false)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS app_user_email_idx")).
		WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))
	mock.ExpectExec(recordMigration).
		WithArgs("core/002", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, NewMigrator(mock, "public", zerolog.Nop()).Apply(context.Background(), SetCore))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplySkipsRecordedMigrations(t *testing.T) {
	mock := newMock(t)
	expectTracking(mock)
	expectApplied(mock, "core/001", true)
	expectApplied(mock, "core/002", true)

	require.NoError(t, NewMigrator(mock, "public", zerolog.Nop()).Apply(context.Background(), SetCore))
	// No transaction was opened and nothing was recorded.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStopsOnFailingFile(t *testing.T) {
	mock := newMock(t)
	expectTracking(mock)
	expectApplied(mock, "core/001", false)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS app_user")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := NewMigrator(mock, "public", zerolog.Nop()).Apply(context.Background(), SetCore)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "core/001")
	// core/002 was never checked.
	assert.NoError(t, mock.ExpectationsWereMet())
}
