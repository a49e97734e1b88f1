package http

import (
	"github.com/jmattila/webshop/internal/config"
	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/internal/service"
)

// Handler owns the HTTP transport: the dispatcher, the access-control gates,
// and the controllers that call into the domain services.
type Handler struct {
	services *service.Services

	// publicDir is the directory static assets are served from.
	publicDir string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler.
func NewHandler(services *service.Services, cfg config.Assets, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		publicDir: cfg.PublicDir,
		logger:    logger,
	}
}
