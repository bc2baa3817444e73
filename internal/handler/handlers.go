package handler

import (
	"github.com/retailstack/store-api/internal/config"
	"github.com/retailstack/store-api/internal/handler/http"
	"github.com/retailstack/store-api/internal/handler/legacy"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/service"
)

type Handlers struct {
	HTTP           *http.Handler
	LegacyProducts *legacy.ProductServiceHandler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP:           http.NewHandler(services, cfg, logger),
		LegacyProducts: legacy.NewProductServiceHandler(services.ProductService, logger),
	}, nil
}
