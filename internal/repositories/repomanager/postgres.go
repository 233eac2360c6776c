package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/phishguard/internal/dbx"
	"github.com/dmitrijs2005/phishguard/internal/logging"
	"github.com/dmitrijs2005/phishguard/internal/migrations"
	"github.com/dmitrijs2005/phishguard/internal/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories, for
// deployments where several hosts share one credential table.
type PostgresRepositoryManager struct {
	logger logging.Logger
}

func NewPostgresRepositoryManager(logger logging.Logger) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{logger: logger}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{logger: m.logger})
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, migrations.PostgresDir)
}
