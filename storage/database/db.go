package database

import (
	"database/sql"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/trezcool/goose"
	_ "modernc.org/sqlite"

	"github.com/trezcool/edulog/core"
	"github.com/trezcool/edulog/fs"
)

// Engines
const (
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// Engine derives the storage engine from a database URL: postgres://
// selects the networked relational store, sqlite:// (or a bare file
// path) the local file-based store.
func Engine(dbURL string) (string, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", errors.Wrap(err, "parsing database URL")
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		return EnginePostgres, nil
	case "sqlite", "":
		return EngineSQLite, nil
	default:
		return "", errors.Errorf("unsupported database engine %q", u.Scheme)
	}
}

func Open(conf *core.Config) (*sqlx.DB, error) {
	return OpenURL(conf.DatabaseURL)
}

// OpenURL opens the store a database URL points at.
func OpenURL(dbURL string) (*sqlx.DB, error) {
	engine, err := Engine(dbURL)
	if err != nil {
		return nil, err
	}

	switch engine {
	case EnginePostgres:
		return sqlx.Open("postgres", dbURL)
	default:
		path := strings.TrimPrefix(dbURL, "sqlite://")
		return sqlx.Open("sqlite", path)
	}
}

// Ping waits for the database to be ready. Waits 100ms longer between each attempt.
func Ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

func gooseDialect(engine string) string {
	if engine == EnginePostgres {
		return "postgres"
	}
	return "sqlite3"
}

// Migrate runs all pending migrations for the engine's dialect.
func Migrate(db *sql.DB, engine string) error {
	return RunMigration(db, engine, "up")
}

// RunMigration runs an arbitrary goose command against the engine's
// migration directory.
func RunMigration(db *sql.DB, engine, command string, args ...string) error {
	if err := goose.SetDialect(gooseDialect(engine)); err != nil {
		return errors.Wrap(err, "setting goose dialect")
	}
	if err := goose.RunFS(command, db, appfs.FS, "migrations/"+engine, args...); err != nil {
		return errors.Wrapf(err, "running migration command %q", command)
	}
	return nil
}
