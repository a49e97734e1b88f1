package service

import (
	"github.com/jmattila/webshop/internal/config"
	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/internal/store"
)

// Services bundles every domain service the HTTP layer depends on.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	ProductService ProductService
	OrderService   OrderService
}

// NewServices wires all services to their repositories.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		UserService:    NewUserService(storages.UserRepository, cfg.BcryptCost, logger),
		ProductService: NewProductService(storages.ProductRepository, logger),
		OrderService:   NewOrderService(storages.OrderRepository, logger),
	}
}
