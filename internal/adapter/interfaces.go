// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a typed Go client for the store API.
//
// The primary abstraction is [APIClient], which decouples callers from the
// HTTP transport. The package ships a resty-based implementation
// ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/retailstack/store-api/models"
)

// APIClient defines typed access to the store API. Implementations are
// responsible for serialisation, authentication header management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and captures the bearer token from the
	// Authorization response header.
	Register(ctx context.Context, user models.User) error

	// Login authenticates an existing account and captures the bearer token
	// from the Authorization response header.
	Login(ctx context.Context, user models.User) error

	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	AddProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	AddOrder(ctx context.Context, order models.Order) (models.Order, error)
	UpdateOrder(ctx context.Context, order models.Order) error
	DeleteOrder(ctx context.Context, id int64) error

	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	AddUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id int64) error
}
