package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/jmattila/webshop/models"
)

// UserRepository is the persistence boundary for user accounts. The
// authenticator and the user controllers depend on this interface only, so
// they can be exercised against a fake in tests.
type UserRepository interface {
	// CreateUser persists a new account and returns it with a
	// server-assigned ID. Returns ErrEmailAlreadyExists when the email is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the single account with the given email or
	// ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given ID or ErrUserNotFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// FindAllUsers returns every registered account.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUserRole assigns a new role and returns the updated account.
	UpdateUserRole(ctx context.Context, id string, role models.Role) (models.User, error)

	// DeleteUser removes the account and returns the deleted record.
	DeleteUser(ctx context.Context, id string) (models.User, error)
}

// ProductRepository is the persistence boundary for the product catalog.
type ProductRepository interface {
	// CreateProduct persists a new catalog item. Returns
	// ErrProductAlreadyExists when a product with the same name exists.
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)

	// FindProductByID returns the product with the given ID or
	// ErrProductNotFound.
	FindProductByID(ctx context.Context, id string) (models.Product, error)

	// FindAllProducts returns the whole catalog.
	FindAllProducts(ctx context.Context) ([]models.Product, error)

	// UpdateProduct overwrites the mutable fields of an existing product and
	// returns the updated record.
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)

	// DeleteProduct removes the product and returns the deleted record.
	DeleteProduct(ctx context.Context, id string) (models.Product, error)
}

// OrderRepository is the persistence boundary for orders.
type OrderRepository interface {
	// CreateOrder persists an order together with its items in one
	// transaction and returns it with a server-assigned ID.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// FindOrderByID returns the order with the given ID, items included, or
	// ErrOrderNotFound.
	FindOrderByID(ctx context.Context, id string) (models.Order, error)

	// FindAllOrders returns orders, optionally restricted to a single
	// customer. An empty customerID means no restriction.
	FindAllOrders(ctx context.Context, customerID string) ([]models.Order, error)
}
