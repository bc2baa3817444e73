package http

import (
	"time"

	"github.com/retailstack/store-api/internal/config"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every inbound request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
