package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/middleware"
	"github.com/yigit/gradmap/internal/pkg/auth"
)

func newSessionMiddleware() *middleware.AuthMiddleware {
	tokens := auth.NewSessionTokens(auth.SessionConfig{SecretKey: "test-secret", Lifetime: time.Hour, Issuer: "gradmap"})
	return middleware.NewAuthMiddleware(tokens, "gradmap_session", false)
}

func TestEstablishSetsBrowserSessionCookie(t *testing.T) {
	m := newSessionMiddleware()
	r := gin.New()
	r.GET("/in", func(c *gin.Context) {
		require.NoError(t, m.Establish(c, models.Identity{Username: "alice", Email: "alice@x.com"}))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/in", nil))

	header := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, "gradmap_session="))
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Lax")
	assert.NotContains(t, header, "Max-Age")
}

func TestSessionRoundTrip(t *testing.T) {
	m := newSessionMiddleware()
	r := gin.New()
	r.Use(m.LoadSession())
	r.GET("/in", func(c *gin.Context) {
		_ = m.Establish(c, models.Identity{Username: "alice", Email: "alice@x.com"})
		c.Status(http.StatusNoContent)
	})
	r.GET("/me", m.RequireSession(), func(c *gin.Context) {
		identity, _ := middleware.CurrentIdentity(c)
		c.String(http.StatusOK, identity.Username+"|"+identity.Email)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/in", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice|alice@x.com", w.Body.String())
}

func TestRequireSessionRedirectsPages(t *testing.T) {
	m := newSessionMiddleware()
	r := gin.New()
	r.Use(m.LoadSession())
	r.GET("/", m.RequireSession(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "gradmap_session", Value: "forged"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAPISessionAnswers401(t *testing.T) {
	m := newSessionMiddleware()
	r := gin.New()
	r.Use(m.LoadSession())
	r.GET("/api/v1/clubs", m.RequireAPISession(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clubs", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}
