package service

import (
	"context"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/internal/store"
	"github.com/jmattila/webshop/models"
)

// orderService is the concrete implementation of [OrderService].
type orderService struct {
	orderRepository store.OrderRepository
	logger          *logger.Logger
}

// NewOrderService constructs an [OrderService].
func NewOrderService(orderRepository store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

// ListOrders returns all orders for an admin and only the principal's own
// orders for a customer.
func (s *orderService) ListOrders(ctx context.Context, principal models.Principal) ([]models.Order, error) {
	if principal.IsAdmin() {
		return s.orderRepository.FindAllOrders(ctx, "")
	}

	return s.orderRepository.FindAllOrders(ctx, principal.ID)
}

// GetOrder returns a single order. A customer asking for another customer's
// order gets the same not-found as for a nonexistent one, so order IDs cannot
// be probed.
func (s *orderService) GetOrder(ctx context.Context, principal models.Principal, id string) (models.Order, error) {
	order, err := s.orderRepository.FindOrderByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !principal.IsAdmin() && order.CustomerID != principal.ID {
		return models.Order{}, store.ErrOrderNotFound
	}

	return order, nil
}

// CreateOrder places a new order for the principal. Admins are rejected
// before the payload is even validated; ordering is a customer operation.
// Each incoming item is reduced to its product snapshot and quantity.
func (s *orderService) CreateOrder(ctx context.Context, principal models.Principal, payload models.NewOrder) (models.Order, error) {
	if principal.IsAdmin() {
		return models.Order{}, ErrAdminOrderForbidden
	}

	if err := validateNewOrder(payload); err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, models.OrderItem{
			Product: models.OrderedProduct{
				ID:    *item.Product.ID,
				Name:  *item.Product.Name,
				Price: *item.Product.Price,
			},
			Quantity: *item.Quantity,
		})
	}

	order := models.Order{
		CustomerID: principal.ID,
		Items:      items,
	}

	created, err := s.orderRepository.CreateOrder(ctx, order)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("order creation failed")
	}

	return created, err
}
