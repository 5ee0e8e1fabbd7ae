package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/app/services"
	"github.com/yigit/gradmap/internal/db"
	"github.com/yigit/gradmap/internal/middleware"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
)

// AuthController handles the login page, sign-in, sign-up and logout
type AuthController struct {
	authService *services.AuthService
	sessions    *middleware.AuthMiddleware
	connector   db.Connector
	retry       db.RetryPolicy
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(
	authService *services.AuthService,
	sessions *middleware.AuthMiddleware,
	connector db.Connector,
	retry db.RetryPolicy,
	logger zerolog.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		connector:   connector,
		retry:       retry,
		logger:      logger,
	}
}

// LoginPage renders the login form
func (c *AuthController) LoginPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", dto.LoginPage{Action: dto.AuthActionSignIn})
}

// Login handles POST /login. action=signin (the default) checks the
// password, action=signup registers a new account. Success sets the session
// cookie and redirects to /.
func (c *AuthController) Login(ctx *gin.Context) {
	var form dto.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.renderLogin(ctx, formError(err), form, dto.AuthActionSignIn)
		return
	}

	action, err := dto.ParseAuthAction(form.Action)
	if err != nil {
		c.renderLogin(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Unknown action."), form, dto.AuthActionSignIn)
		return
	}

	creds, err := c.authService.ValidateCredentials(action, form)
	if err != nil {
		c.renderLogin(ctx, err, form, action)
		return
	}

	conn, release, err := c.connection(ctx)
	if err != nil {
		c.renderLogin(ctx, err, form, action)
		return
	}
	defer release()

	var user *models.User
	switch action {
	case dto.AuthActionSignUp:
		user, err = c.authService.SignUp(ctx.Request.Context(), conn, creds)
	default:
		user, err = c.authService.SignIn(ctx.Request.Context(), conn, creds)
	}
	if err != nil {
		c.renderLogin(ctx, err, form, action)
		return
	}

	if err := c.sessions.Establish(ctx, models.IdentityOf(user)); err != nil {
		c.renderLogin(ctx, err, form, action)
		return
	}

	c.logger.Info().Str("username", user.Username).Str("action", string(action)).Msg("Session established")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session and returns to the login page
func (c *AuthController) Logout(ctx *gin.Context) {
	c.sessions.Clear(ctx)
	ctx.Redirect(http.StatusFound, "/login")
}

// connection returns the request's connection, or acquires one with
// retries when the scope has none. The returned release func closes only a
// connection acquired here.
func (c *AuthController) connection(ctx *gin.Context) (db.Conn, func(), error) {
	if conn := middleware.DBScope(ctx).Conn(); conn != nil {
		return conn, func() {}, nil
	}

	conn, err := db.AcquireWithRetry(ctx.Request.Context(), c.connector, c.retry, c.logger)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := conn.Close(context.WithoutCancel(ctx.Request.Context())); err != nil {
			c.logger.Debug().Err(err).Msg("Ignoring connection close error")
		}
	}
	return conn, release, nil
}

func (c *AuthController) renderLogin(ctx *gin.Context, err error, form dto.LoginForm, action dto.AuthAction) {
	resolved := middleware.ResolveError(err)
	if resolved.Status >= http.StatusInternalServerError {
		c.logger.Error().Err(err).Str("action", string(action)).Msg("Login request failed")
	}
	ctx.HTML(resolved.Status, "login.html", dto.LoginPage{
		Error:    resolved.Message,
		Username: strings.TrimSpace(form.Username),
		Email:    strings.TrimSpace(form.Email),
		Action:   action,
	})
}
