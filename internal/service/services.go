package service

import (
	"github.com/retailstack/store-api/internal/config"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/store"
)

type Services struct {
	ProductService ProductService
	OrderService   OrderService
	UserService    UserService
	AuthService    AuthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		ProductService: NewProductService(storages.ProductRepository, logger),
		OrderService:   NewOrderService(storages.OrderRepository, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
	}
}
