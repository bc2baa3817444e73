package store

import (
	"context"

	"github.com/retailstack/store-api/models"
)

// ProductRepository is the data-access contract for product records.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Update(ctx context.Context, product models.Product) error
	Delete(ctx context.Context, id int64) error
}

// OrderRepository is the data-access contract for order records.
//
// Create and Update also maintain the order_products join table; both run
// the order row write and the association writes inside a single
// transaction.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (models.Order, error)
	Create(ctx context.Context, order models.Order) (models.Order, error)
	Update(ctx context.Context, order models.Order) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id int64) error
}
