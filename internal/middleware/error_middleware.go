package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
	"github.com/yigit/gradmap/internal/pkg/logger"
)

// Messages shown to users. Unexpected failures never expose error text
// outside debug mode.
const (
	MsgMissingCredentials = "Please enter username and password"
	MsgEmailRequired      = "Email is required for registration."
	MsgUsernameTaken      = "Username already exists. Please choose another one."
	MsgEmailTaken         = "Email already registered. Please use a different email."
	MsgInvalidCredentials = "Invalid username or password."
	MsgUnavailable        = "Database is temporarily unavailable. Please try again in a moment."
	MsgGeneric            = "An error occurred. Please try again."
)

// ResolvedError is the client-facing form of an error.
type ResolvedError struct {
	Status  int
	Code    dto.ErrorCode
	Message string
}

// ResolveError maps an error from the service layer to status, code and
// user message.
func ResolveError(err error) ResolvedError {
	var custom *apperrors.CustomError
	var active *apperrors.ActiveMembersError

	switch {
	case errors.Is(err, apperrors.ErrMissingCredentials):
		return ResolvedError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, MsgMissingCredentials}
	case errors.Is(err, apperrors.ErrEmailRequired):
		return ResolvedError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, MsgEmailRequired}
	case errors.Is(err, apperrors.ErrUsernameTaken):
		return ResolvedError{http.StatusConflict, dto.ErrorCodeUsernameTaken, MsgUsernameTaken}
	case errors.Is(err, apperrors.ErrEmailTaken):
		return ResolvedError{http.StatusConflict, dto.ErrorCodeEmailTaken, MsgEmailTaken}
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return ResolvedError{http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, MsgInvalidCredentials}
	case errors.Is(err, db.ErrUnavailable):
		return ResolvedError{http.StatusServiceUnavailable, dto.ErrorCodeDatabaseUnavailable, MsgUnavailable}
	case errors.As(err, &active):
		return ResolvedError{http.StatusBadRequest, dto.ErrorCodeResourceInUse, active.Error()}
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return ResolvedError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found."}
	case errors.Is(err, apperrors.ErrClubNotFound):
		return ResolvedError{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Club not found."}
	case errors.Is(err, apperrors.ErrClubAlreadyExists):
		return ResolvedError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Club name already exists."}
	case errors.Is(err, apperrors.ErrIndustryAlreadyExists):
		return ResolvedError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Industry already exists."}
	case errors.Is(err, apperrors.ErrStudentEmailExists):
		return ResolvedError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "A student with this email already exists."}
	case errors.Is(err, apperrors.ErrUnknownReference):
		return ResolvedError{http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "The selected location, club or industry does not exist."}
	case errors.Is(err, apperrors.ErrUnauthorized):
		return ResolvedError{http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"}
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		msg := "Validation failed"
		if errors.As(err, &custom) && custom.Message != "" {
			msg = custom.Message
		}
		return ResolvedError{http.StatusBadRequest, dto.ErrorCodeValidationFailed, msg}
	default:
		return ResolvedError{http.StatusInternalServerError, dto.ErrorCodeInternalServer, MsgGeneric}
	}
}

func logUnexpected(c *gin.Context, err error, resolved ResolvedError) {
	if resolved.Status < http.StatusInternalServerError {
		return
	}
	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("traceId", TraceID(c)).
		Msg("Request failed")
}

// HandleAPIError writes a JSON error envelope for err
func HandleAPIError(c *gin.Context, err error) {
	resolved := ResolveError(err)
	logUnexpected(c, err, resolved)

	detail := dto.NewErrorDetail(resolved.Code, resolved.Message)
	if resolved.Status == http.StatusInternalServerError && gin.IsDebugging() {
		detail = detail.WithDebugInfo("%v", err)
	}
	c.AbortWithStatusJSON(resolved.Status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// ErrorPage is the data rendered into error.html
type ErrorPage struct {
	Status    int
	Message   string
	DebugInfo string
	Username  string
}

// HandlePageError renders the HTML error page for err
func HandlePageError(c *gin.Context, err error) {
	resolved := ResolveError(err)
	logUnexpected(c, err, resolved)

	page := ErrorPage{Status: resolved.Status, Message: resolved.Message}
	if identity, ok := CurrentIdentity(c); ok {
		page.Username = identity.Username
	}
	if resolved.Status == http.StatusInternalServerError && gin.IsDebugging() {
		page.DebugInfo = err.Error()
	}
	c.HTML(resolved.Status, "error.html", page)
	c.Abort()
}

// RespondValidationError answers a binding failure on a JSON route
func RespondValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
