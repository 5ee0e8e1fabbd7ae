package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnavailable means no connection could be established.
var ErrUnavailable = errors.New("database is temporarily unavailable")

// Scope is the per-request execution context that carries the request's
// connection. A nil connection means acquisition failed or was skipped.
type Scope struct {
	conn Conn
	err  error
}

// NewScope wraps an established connection (or none) for one request.
func NewScope(conn Conn, err error) *Scope {
	return &Scope{conn: conn, err: err}
}

// Conn returns the request's connection, or nil.
func (s *Scope) Conn() Conn {
	if s == nil {
		return nil
	}
	return s.conn
}

// Err returns the acquisition error, if any.
func (s *Scope) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Release closes the connection. Close errors are returned for logging only.
func (s *Scope) Release(ctx context.Context) error {
	if s == nil || s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	return conn.Close(ctx)
}

// RetryPolicy bounds connection attempts made outside the per-request scope.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// DefaultRetryPolicy is three attempts one second apart.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Backoff: time.Second}

// AcquireWithRetry calls connector.Connect up to policy.Attempts times,
// sleeping policy.Backoff after every failed attempt but the last. On
// exhaustion it returns an error wrapping ErrUnavailable.
func AcquireWithRetry(ctx context.Context, connector Connector, policy RetryPolicy, log zerolog.Logger) (Conn, error) {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err := connector.Connect(ctx)
		if err == nil {
			return conn, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("Connection attempt failed, retrying")

		timer := time.NewTimer(policy.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		case <-timer.C:
		}
	}

	log.Error().Err(lastErr).Int("attempts", attempts).Msg("Failed to create connection")
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrUnavailable, attempts, lastErr)
}
