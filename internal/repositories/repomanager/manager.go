// Package repomanager vends credential repositories for the configured
// database and applies the embedded schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/phishguard/internal/dbx"
	"github.com/dmitrijs2005/phishguard/internal/filex"
	"github.com/dmitrijs2005/phishguard/internal/logging"
	"github.com/dmitrijs2005/phishguard/internal/repositories/users"
	"github.com/pressly/goose/v3"
)

// RepositoryManager binds repositories to a DBTX (a pool or a transaction)
// and owns schema initialization. RunMigrations is idempotent.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Open connects to dsn, picks the matching RepositoryManager and brings the
// schema up to date. postgres:// and postgresql:// URLs use pgx; anything
// else is treated as a SQLite database file.
func Open(ctx context.Context, dsn string, logger logging.Logger) (*sql.DB, RepositoryManager, error) {
	var (
		driver string
		source string
		m      RepositoryManager
	)

	if IsPostgresDSN(dsn) {
		driver, source = "pgx", dsn
		m = NewPostgresRepositoryManager(logger)
	} else {
		if path, ok := sqliteFilePath(dsn); ok {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return nil, nil, fmt.Errorf("prepare sqlite db: %w", err)
			}
		}
		driver, source = "sqlite", SQLiteDSN(dsn)
		m = NewSQLiteRepositoryManager(logger)
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, m, nil
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// gooseLogger routes goose progress messages to the application logger.
type gooseLogger struct {
	logger logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.logger.Debug(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.logger.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}
