package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradmap/internal/db/dbtest"
	"github.com/yigit/gradmap/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func scopedRouter(connector *dbtest.Connector) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(zerolog.Nop()))
	r.Use(middleware.ConnectionScope(connector, nil, zerolog.Nop()))
	return r
}

func TestConnectionScopeOpensAndClosesOnce(t *testing.T) {
	connector := &dbtest.Connector{}
	r := scopedRouter(connector)

	var sawConn bool
	r.GET("/", func(c *gin.Context) {
		sawConn = middleware.DBScope(c).Conn() != nil
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sawConn)
	require.Len(t, connector.Conns(), 1)
	assert.Equal(t, 1, connector.Conns()[0].Closed())
}

func TestConnectionScopeSkipsStaticAndLoginPage(t *testing.T) {
	connector := &dbtest.Connector{}
	r := scopedRouter(connector)
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/static/*filepath", ok)
	r.GET("/login", ok)
	r.POST("/login", ok)
	r.GET("/health", ok)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/static/style.css", nil),
		httptest.NewRequest(http.MethodGet, "/login", nil),
		httptest.NewRequest(http.MethodGet, "/health", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	assert.Equal(t, 0, connector.Calls())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, 1, connector.Calls())
}

func TestConnectionScopeClosesOnPanic(t *testing.T) {
	connector := &dbtest.Connector{}
	r := scopedRouter(connector)
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, connector.Conns(), 1)
	assert.Equal(t, 1, connector.Conns()[0].Closed())
}

func TestConnectionScopeSwallowsCloseError(t *testing.T) {
	connector := &dbtest.Connector{CloseErr: errors.New("close failed")}
	r := scopedRouter(connector)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
	assert.Equal(t, 1, connector.Conns()[0].Closed())
}

func TestConnectionScopeConnectFailureLeavesScopeEmpty(t *testing.T) {
	connector := &dbtest.Connector{FailAll: true}
	r := scopedRouter(connector)
	r.GET("/", func(c *gin.Context) {
		_, err := middleware.RequireConn(c)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), middleware.MsgUnavailable)
	assert.Equal(t, 1, connector.Calls())
}
