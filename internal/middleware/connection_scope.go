package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/gradmap/internal/db"
)

const scopeKey = "dbScope"

// ScopeSkipper reports requests that get no connection.
type ScopeSkipper func(r *http.Request) bool

// DefaultScopeSkipper skips static assets, the API docs, the health check
// and the login page itself.
func DefaultScopeSkipper(r *http.Request) bool {
	path := r.URL.Path
	switch {
	case strings.HasPrefix(path, "/static/"), strings.HasPrefix(path, "/swagger/"):
		return true
	case path == "/health":
		return true
	case path == "/login" && r.Method == http.MethodGet:
		return true
	}
	return false
}

// ConnectionScope opens one connection per request and always closes it
// when the handler chain returns, including on panic. A failed Connect
// leaves the scope empty; handlers decide how to answer.
func ConnectionScope(connector db.Connector, skip ScopeSkipper, log zerolog.Logger) gin.HandlerFunc {
	if skip == nil {
		skip = DefaultScopeSkipper
	}
	return func(c *gin.Context) {
		if skip(c.Request) {
			c.Next()
			return
		}

		conn, err := connector.Connect(c.Request.Context())
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Failed to open request connection")
		}
		scope := db.NewScope(conn, err)
		c.Set(scopeKey, scope)

		defer func() {
			if err := scope.Release(context.WithoutCancel(c.Request.Context())); err != nil {
				log.Debug().Err(err).Msg("Ignoring connection close error")
			}
		}()

		c.Next()
	}
}

// DBScope returns the request's scope. It is never nil.
func DBScope(c *gin.Context) *db.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if scope, ok := v.(*db.Scope); ok {
			return scope
		}
	}
	return db.NewScope(nil, nil)
}

// RequireConn returns the request's connection or db.ErrUnavailable.
func RequireConn(c *gin.Context) (db.Conn, error) {
	conn := DBScope(c).Conn()
	if conn == nil {
		return nil, db.ErrUnavailable
	}
	return conn, nil
}
