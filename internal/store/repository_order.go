package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. Orders span two tables: "orders" for the head record and
// "order_items" for the product snapshots.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder persists the order head and all its items in one transaction
// and returns the order with its server-assigned ID.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error beginning transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() // no-op after commit

	order.ID = newID()
	row := tx.QueryRowContext(ctx, createOrder, order.ID, order.CustomerID)
	if err := row.Scan(&order.ID, &order.CustomerID); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	for position, item := range order.Items {
		_, err := tx.ExecContext(ctx, createOrderItem,
			order.ID, position, item.Product.ID, item.Product.Name, item.Product.Price, item.Quantity)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order item")
			return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error committing transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return order, nil
}

// FindOrderByID retrieves a single order with its items.
// An empty result set maps to [ErrOrderNotFound].
func (r *orderRepository) FindOrderByID(ctx context.Context, id string) (models.Order, error) {
	log := logger.FromContext(ctx)

	var order models.Order
	row := r.db.QueryRowContext(ctx, findOrderByID, id)
	if err := row.Scan(&order.ID, &order.CustomerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}

		log.Err(err).Str("func", "*orderRepository.FindOrderByID").Msg("error scanning order row")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	items, err := r.findItems(ctx, order.ID)
	if err != nil {
		return models.Order{}, err
	}
	order.Items = items

	return order, nil
}

// FindAllOrders returns orders with their items. When customerID is
// non-empty the result is restricted to that customer; the WHERE clause is
// assembled with squirrel so the two listing shapes share one query.
func (r *orderRepository) FindAllOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "customer_id").
		From(models.Order{}.TableName()).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)
	if customerID != "" {
		builder = builder.Where(sq.Eq{"customer_id": customerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.FindAllOrders").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.FindAllOrders").Msg("error querying orders")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.CustomerID); err != nil {
			log.Err(err).Str("func", "*orderRepository.FindAllOrders").Msg("error scanning order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.findItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// findItems loads the item lines of one order in position order.
func (r *orderRepository) findItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findOrderItems, orderID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.findItems").Msg("error querying order items")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	items := make([]models.OrderItem, 0)
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.Product.ID, &item.Product.Name, &item.Product.Price, &item.Quantity); err != nil {
			log.Err(err).Str("func", "*orderRepository.findItems").Msg("error scanning order item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
