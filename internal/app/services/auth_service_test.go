package services

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/app/repositories"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
	"github.com/yigit/gradmap/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

var (
	selectByUsername = regexp.QuoteMeta("SELECT user_id FROM app_user WHERE username")
	selectByEmail    = regexp.QuoteMeta("SELECT user_id FROM app_user WHERE email")
	insertAccount    = regexp.QuoteMeta("INSERT INTO app_user")
	loadAccount      = regexp.QuoteMeta("SELECT user_id, username, email, password_hash FROM app_user")
)

func newMockConn(t *testing.T) pgxmock.PgxConnIface {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close(context.Background()) })
	return mock
}

func newAuthService() *AuthService {
	return NewAuthService(repositories.NewAccountRepository(), auth.NewPasswordHasher(bcrypt.MinCost), zerolog.Nop())
}

func TestValidateCredentials(t *testing.T) {
	svc := newAuthService()

	tests := []struct {
		name    string
		action  dto.AuthAction
		form    dto.LoginForm
		wantErr error
	}{
		{"blank username", dto.AuthActionSignIn, dto.LoginForm{Username: "  ", Password: "pw"}, apperrors.ErrMissingCredentials},
		{"blank password", dto.AuthActionSignIn, dto.LoginForm{Username: "alice", Password: " "}, apperrors.ErrMissingCredentials},
		{"signin ignores email", dto.AuthActionSignIn, dto.LoginForm{Username: "alice", Password: "pw"}, nil},
		{"signup needs email", dto.AuthActionSignUp, dto.LoginForm{Username: "alice", Password: "pw"}, apperrors.ErrEmailRequired},
		{"signup bad email", dto.AuthActionSignUp, dto.LoginForm{Username: "alice", Password: "pw", Email: "nope"}, apperrors.ErrValidationFailed},
		{"signup ok", dto.AuthActionSignUp, dto.LoginForm{Username: "alice", Password: "pw", Email: "alice@x.com"}, nil},
		{"password over 72 bytes", dto.AuthActionSignUp, dto.LoginForm{Username: "alice", Password: strings.Repeat("p", 73), Email: "alice@x.com"}, apperrors.ErrValidationFailed},
		{"password of 72 bytes", dto.AuthActionSignIn, dto.LoginForm{Username: "alice", Password: strings.Repeat("p", 72)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateCredentials(tt.action, tt.form)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCredentialsTrimsAllButPassword(t *testing.T) {
	creds, err := newAuthService().ValidateCredentials(dto.AuthActionSignUp, dto.LoginForm{
		Username: " alice ", Password: " pw123\t", Email: " alice@x.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, dto.Credentials{Username: "alice", Password: " pw123\t", Email: "alice@x.com"}, creds)
}

func TestOverlongPasswordMessage(t *testing.T) {
	_, err := newAuthService().ValidateCredentials(dto.AuthActionSignUp, dto.LoginForm{
		Username: "alice", Password: strings.Repeat("é", 40), Email: "alice@x.com",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Password must be at most 72 bytes.", err.Error())
}

func TestSignInWithPaddedPasswordFails(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)
	email := "alice@x.com"
	svc := newAuthService()

	creds, err := svc.ValidateCredentials(dto.AuthActionSignIn, dto.LoginForm{Username: "alice", Password: "  pw123\t"})
	require.NoError(t, err)

	mock := newMockConn(t)
	mock.ExpectQuery(loadAccount).WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "username", "email", "password_hash"}).
			AddRow(int64(1), "alice", &email, string(hash)))

	user, err := svc.SignIn(context.Background(), mock, creds)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUpCreatesAccount(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectQuery(selectByUsername).WithArgs("alice").WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(selectByEmail).WithArgs("alice@x.com").WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(insertAccount).
		WithArgs("alice", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(int64(7)))

	user, err := newAuthService().SignUp(context.Background(), mock, dto.Credentials{
		Username: "alice", Password: "pw123", Email: "alice@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice", user.Username)
	require.NotNil(t, user.Email)
	assert.Equal(t, "alice@x.com", *user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUpRejectsTakenUsernameWithoutInsert(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectQuery(selectByUsername).WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(int64(1)))

	_, err := newAuthService().SignUp(context.Background(), mock, dto.Credentials{
		Username: "alice", Password: "pw123", Email: "other@x.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	// No email check and no INSERT were issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignUpRejectsTakenEmailForNewUsername(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectQuery(selectByUsername).WithArgs("bob").WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(selectByEmail).WithArgs("alice@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(int64(1)))

	_, err := newAuthService().SignUp(context.Background(), mock, dto.Credentials{
		Username: "bob", Password: "pw123", Email: "alice@x.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)
	email := "alice@x.com"

	accountRows := func() *pgxmock.Rows {
		return pgxmock.NewRows([]string{"user_id", "username", "email", "password_hash"}).
			AddRow(int64(1), "alice", &email, string(hash))
	}

	t.Run("correct password", func(t *testing.T) {
		mock := newMockConn(t)
		mock.ExpectQuery(loadAccount).WithArgs("alice").WillReturnRows(accountRows())

		user, err := newAuthService().SignIn(context.Background(), mock, dto.Credentials{Username: "alice", Password: "pw123"})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		mock := newMockConn(t)
		mock.ExpectQuery(loadAccount).WithArgs("alice").WillReturnRows(accountRows())

		user, err := newAuthService().SignIn(context.Background(), mock, dto.Credentials{Username: "alice", Password: "PW123"})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		mock := newMockConn(t)
		mock.ExpectQuery(loadAccount).WithArgs("mallory").WillReturnError(pgx.ErrNoRows)

		_, err := newAuthService().SignIn(context.Background(), mock, dto.Credentials{Username: "mallory", Password: "pw123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
