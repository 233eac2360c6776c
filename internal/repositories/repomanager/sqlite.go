package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/phishguard/internal/dbx"
	"github.com/dmitrijs2005/phishguard/internal/logging"
	"github.com/dmitrijs2005/phishguard/internal/migrations"
	"github.com/dmitrijs2005/phishguard/internal/repositories/users"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// sqliteParams serialize writers across connections and processes: every
// transaction takes the write lock on BEGIN and waits up to five seconds for
// it, while WAL keeps readers unblocked.
const sqliteParams = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"

// SQLiteDSN turns a database file path into a modernc.org/sqlite DSN. A DSN
// that already carries query parameters is returned unchanged.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?" + sqliteParams
}

// sqliteFilePath extracts the database file from a SQLite DSN. In-memory
// databases report false.
func sqliteFilePath(dsn string) (string, bool) {
	path, _, _ := strings.Cut(dsn, "?")
	path = strings.TrimPrefix(path, "file:")
	if path == "" || strings.HasPrefix(path, ":memory:") {
		return "", false
	}
	return path, true
}

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct {
	logger logging.Logger
}

func NewSQLiteRepositoryManager(logger logging.Logger) *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{logger: logger}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded SQLite migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{logger: m.logger})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, migrations.SQLiteDir)
}
