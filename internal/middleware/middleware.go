package middleware

import (
	"io"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceKey    = "traceId"
	traceHeader = "X-Trace-Id"
)

// Trace assigns every request a trace id, reusing the client's X-Trace-Id
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(traceHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(traceKey, id)
		c.Header(traceHeader, id)
		c.Next()
	}
}

// TraceID returns the request's trace id
func TraceID(c *gin.Context) string {
	return c.GetString(traceKey)
}

// RequestLogger logs one line per request after it completes
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIp", c.ClientIP()).
			Str("traceId", TraceID(c)).
			Msg("Request handled")
	}
}

// APICORS applies the CORS policy to /api/ paths. It runs ahead of routing
// so preflight requests are answered here and never open a connection.
func APICORS(config cors.Config) gin.HandlerFunc {
	handle := cors.New(config)
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			return
		}
		handle(c)
	}
}

// Recovery turns a panic into a 500 and logs it. Deferred cleanup in later
// middleware (the connection scope) still runs while the panic unwinds.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Str("traceId", TraceID(c)).Msg("Recovered from panic")
		c.AbortWithStatus(500)
	})
}
