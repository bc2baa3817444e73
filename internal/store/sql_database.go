package store

import (
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver dialect so
// that repositories can build queries with the correct placeholder format
// and migrations can pick the matching schema directory.
type DB struct {
	*sql.DB

	dialect string
	logger  *logger.Logger
}

// Builder returns a squirrel statement builder configured with the
// placeholder format of the underlying driver ($1 for postgres, ? for
// sqlite).
func (db *DB) Builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Migrate applies all embedded schema migrations for the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isUniqueViolation reports whether err originates from a unique constraint
// (primary key or unique index) violation on either backend.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	// mattn/go-sqlite3 reports constraint failures as plain error text
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isUsernameViolation narrows a unique violation down to the username
// column, distinguishing a taken username from a caller-supplied id clash.
func isUsernameViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.Contains(pgErr.ConstraintName, "username")
	}

	return err != nil && strings.Contains(err.Error(), "username")
}
