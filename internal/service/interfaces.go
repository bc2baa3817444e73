package service

import (
	"context"

	"github.com/retailstack/store-api/models"
)

// ProductService exposes catalog operations shared by the REST handlers and
// the legacy envelope endpoint. Both transports sit on top of the same
// implementation so the catalog behaves identically regardless of protocol.
type ProductService interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (models.Product, error)
	Add(ctx context.Context, product models.Product) (models.Product, error)
	Update(ctx context.Context, product models.Product) error
	Delete(ctx context.Context, id int64) error
}

// OrderService exposes order operations, including maintenance of the
// order-to-product associations.
type OrderService interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (models.Order, error)
	Add(ctx context.Context, order models.Order) (models.Order, error)
	Update(ctx context.Context, order models.Order) error
	Delete(ctx context.Context, id int64) error
}

// UserService exposes account management operations. All returned users are
// sanitized: credential material never leaves the service layer.
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	Add(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id int64) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
