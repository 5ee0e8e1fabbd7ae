package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/gradmap/internal/db"
)

//go:embed sql
var files embed.FS

// Migration sets
const (
	// SetCore holds the tables the application owns (app_user).
	SetCore = "core"
	// SetDomain holds the student/club schema normally managed outside the app.
	SetDomain = "domain"
)

// Migrator applies embedded SQL files inside the configured schema.
type Migrator struct {
	conn   db.Conn
	schema string
	fsys   fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a new migrator working on conn.
func NewMigrator(conn db.Conn, schema string, logger zerolog.Logger) *Migrator {
	return &Migrator{
		conn:   conn,
		schema: schema,
		fsys:   files,
		logger: logger,
	}
}

// ensureSchema creates the namespace and the migration tracking table.
func (m *Migrator) ensureSchema(ctx context.Context) error {
	ident := pgx.Identifier{m.schema}.Sanitize()
	if _, err := m.conn.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+ident); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", m.schema, err)
	}

	_, err := m.conn.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := m.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Apply runs every not-yet-applied file of the given sets, in set order
// and then file-name order. Each file runs in its own transaction.
func (m *Migrator) Apply(ctx context.Context, sets ...string) error {
	if err := m.ensureSchema(ctx); err != nil {
		return err
	}

	for _, set := range sets {
		names, err := m.listFiles(set)
		if err != nil {
			return err
		}
		for _, name := range names {
			if err := m.applyFile(ctx, set, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Migrator) listFiles(set string) ([]string, error) {
	entries, err := fs.ReadDir(m.fsys, path.Join("sql", set))
	if err != nil {
		return nil, fmt.Errorf("failed to read migration set %s: %w", set, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *Migrator) applyFile(ctx context.Context, set, name string) error {
	// "001_app_user.sql" in set "core" => "core/001"
	version := set + "/" + strings.SplitN(name, "_", 2)[0]

	applied, err := m.isApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		m.logger.Debug().Str("migration", version).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(m.fsys, path.Join("sql", set, name))
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	err = db.WithTransaction(ctx, m.conn, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during SQL migration %s: %w", version, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`, version, time.Now()); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Info().Str("migration", version).Str("file", name).Msg("Migration applied")
	return nil
}
