package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/pkg/auth"
	"github.com/yigit/gradmap/internal/pkg/logger"
)

const identityKey = "identity"

// AuthMiddleware manages the signed session cookie
type AuthMiddleware struct {
	tokens     *auth.SessionTokens
	cookieName string
	secure     bool
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens *auth.SessionTokens, cookieName string, secure bool) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Establish stores identity in the session cookie. The cookie has no
// Max-Age, so it lasts for the browser session.
func (m *AuthMiddleware) Establish(c *gin.Context, identity models.Identity) error {
	token, err := m.tokens.Issue(identity)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, 0, "/", "", m.secure, true)
	c.Set(identityKey, &identity)
	return nil
}

// Clear drops the session cookie
func (m *AuthMiddleware) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// LoadSession reads the cookie, if any, and exposes the identity to
// handlers. Invalid or expired cookies are treated as absent.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
			identity, err := m.tokens.Parse(token)
			if err != nil {
				logger.Debug().Err(err).Msg("Ignoring invalid session cookie")
			} else {
				c.Set(identityKey, identity)
			}
		}
		c.Next()
	}
}

// RequireSession redirects anonymous page requests to /login
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAPISession answers anonymous API requests with 401
func (m *AuthMiddleware) RequireAPISession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Session cookie missing or invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the logged-in identity, if any
func CurrentIdentity(c *gin.Context) (*models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*models.Identity)
	return identity, ok && identity != nil && identity.Username != ""
}

// CurrentUsername returns the logged-in username or ""
func CurrentUsername(c *gin.Context) string {
	if identity, ok := CurrentIdentity(c); ok {
		return identity.Username
	}
	return ""
}
