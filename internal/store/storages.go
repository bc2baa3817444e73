package store

import (
	"context"
	"strings"

	"github.com/retailstack/store-api/internal/config"
	"github.com/retailstack/store-api/internal/logger"
)

// Storages aggregates all repository implementations behind their
// interfaces. It is the single dependency the service layer takes on the
// persistence tier.
type Storages struct {
	ProductRepository ProductRepository
	OrderRepository   OrderRepository
	UserRepository    UserRepository
}

// NewStorages selects the database backend from cfg (postgres when the DSN
// carries a postgres scheme, in-memory SQLite otherwise), runs the embedded
// migrations, and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		ProductRepository: NewProductRepository(db, log),
		OrderRepository:   NewOrderRepository(db, log),
		UserRepository:    NewUserRepository(db, log),
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
