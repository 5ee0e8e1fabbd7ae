package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/middleware"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
)

func TestResolveError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{apperrors.ErrMissingCredentials, http.StatusBadRequest, middleware.MsgMissingCredentials},
		{apperrors.ErrEmailRequired, http.StatusBadRequest, middleware.MsgEmailRequired},
		{apperrors.ErrUsernameTaken, http.StatusConflict, middleware.MsgUsernameTaken},
		{apperrors.ErrEmailTaken, http.StatusConflict, middleware.MsgEmailTaken},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, middleware.MsgInvalidCredentials},
		{fmt.Errorf("%w after 3 attempts: refused", db.ErrUnavailable), http.StatusServiceUnavailable, middleware.MsgUnavailable},
		{&apperrors.ActiveMembersError{ClubID: 1, Count: 3}, http.StatusBadRequest, "Cannot delete club: it has 3 active member(s)."},
		{apperrors.ErrClubNotFound, http.StatusNotFound, "Club not found."},
		{apperrors.NewCustomError(apperrors.ErrValidationFailed, "Bad input."), http.StatusBadRequest, "Bad input."},
		{errors.New("pq: relation does not exist"), http.StatusInternalServerError, middleware.MsgGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := middleware.ResolveError(tt.err)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}
