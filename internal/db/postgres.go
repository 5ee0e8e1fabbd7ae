package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/gradmap/internal/config"
	"github.com/yigit/gradmap/internal/pkg/logger"
)

// Querier is the statement surface repositories need. *pgx.Conn,
// *pgxpool.Conn and pgx.Tx all satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn is one database session owned by a single request.
type Conn interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Close(ctx context.Context) error
}

// Connector hands out connections.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
	Close()
}

// NewConnector builds the connector selected by configuration: a fresh
// connection per call, or a pool when database.pooled is set.
func NewConnector(ctx context.Context, cfg *config.Config) (Connector, error) {
	connConfig, err := pgx.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	connConfig.RuntimeParams["search_path"] = cfg.Database.Schema
	connectTimeout := config.Duration(cfg.Database.ConnectTimeout, 5*time.Second)

	if !cfg.Database.Pooled {
		return &DirectConnector{config: connConfig, timeout: connectTimeout}, nil
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}
	poolConfig.ConnConfig = connConfig
	if cfg.Database.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	}
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy pooled connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}
	return &PoolConnector{pool: pool, timeout: connectTimeout}, nil
}

// DirectConnector opens a new connection for every Connect call and keeps
// nothing between requests.
type DirectConnector struct {
	config  *pgx.ConnConfig
	timeout time.Duration
}

// Connect dials the database.
func (d *DirectConnector) Connect(ctx context.Context) (Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	conn, err := pgx.ConnectConfig(ctx, d.config.Copy())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}

// Close is a no-op; every connection is closed by its request.
func (d *DirectConnector) Close() {}

// PoolConnector acquires connections from a pgxpool.
type PoolConnector struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// Connect acquires a pooled connection.
func (p *PoolConnector) Connect(ctx context.Context) (Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire database connection: %w", err)
	}
	return &pooledConn{Conn: conn}, nil
}

// Close shuts the pool down.
func (p *PoolConnector) Close() {
	p.pool.Close()
}

type pooledConn struct {
	*pgxpool.Conn
}

// Close hands the connection back to the pool.
func (c *pooledConn) Close(context.Context) error {
	c.Release()
	return nil
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// WithTransaction runs fn inside a transaction on conn. It commits when fn
// returns nil and rolls back otherwise.
func WithTransaction(ctx context.Context, conn Conn, fn TransactionFn) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("%w (rollback error: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
