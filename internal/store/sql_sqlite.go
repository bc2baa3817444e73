package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/migrations"
)

// defaultSQLiteDSN keeps the whole database in process memory, shared across
// all pooled connections. This is the default backend, mirroring the
// original deployment where the store ran against an in-memory relational
// database.
const defaultSQLiteDSN = "file::memory:?cache=shared"

// NewConnectSQLite opens an SQLite connection (in-memory unless a file DSN
// is supplied), verifies it with a ping, and returns a [*DB] ready for use
// by the repositories.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if dsn == "" {
		dsn = defaultSQLiteDSN
	}

	conn, err := openSQL(migrations.DialectSQLite, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// a shared in-memory database disappears once the last connection
	// closes, so keep at least one open at all times
	conn.SetMaxIdleConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("connected to sqlite database")

	return &DB{
		DB:      conn,
		dialect: migrations.DialectSQLite,
		logger:  log,
	}, nil
}

func openSQL(driver, dsn string) (*sql.DB, error) {
	return sql.Open(driver, dsn)
}
