// Package dbtest provides in-memory stand-ins for db.Connector in handler
// and middleware tests.
package dbtest

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/gradmap/internal/db"
)

// ErrNotSupported is returned by every statement method of Conn.
var ErrNotSupported = errors.New("dbtest: statements are not supported")

// Conn is a connection that records Close calls and runs no SQL.
type Conn struct {
	mu       sync.Mutex
	closed   int
	CloseErr error
}

func (c *Conn) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, ErrNotSupported
}

func (c *Conn) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, ErrNotSupported
}

func (c *Conn) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

func (c *Conn) Begin(context.Context) (pgx.Tx, error) {
	return nil, ErrNotSupported
}

func (c *Conn) Close(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return c.CloseErr
}

// Closed returns how many times Close was called.
func (c *Conn) Closed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

type errRow struct{}

func (errRow) Scan(...any) error { return ErrNotSupported }

// Connector fails the first FailFirst calls (or all calls when FailAll is
// set) and otherwise hands out fresh Conns.
type Connector struct {
	mu        sync.Mutex
	FailFirst int
	FailAll   bool
	CloseErr  error
	calls     int
	conns     []*Conn
}

// Connect implements db.Connector.
func (f *Connector) Connect(context.Context) (db.Conn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.FailAll || f.calls <= f.FailFirst {
		return nil, errors.New("dbtest: connection refused")
	}
	conn := &Conn{CloseErr: f.CloseErr}
	f.conns = append(f.conns, conn)
	return conn, nil
}

// Close implements db.Connector.
func (f *Connector) Close() {}

// Calls returns the number of Connect calls.
func (f *Connector) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Conns returns every connection handed out so far.
func (f *Connector) Conns() []*Conn {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Conn(nil), f.conns...)
}
