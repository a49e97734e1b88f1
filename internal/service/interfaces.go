package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/jmattila/webshop/models"
)

// AuthService resolves raw Basic-auth credentials to a verified principal.
type AuthService interface {
	// Authenticate looks up the account by email and verifies the password
	// against the stored bcrypt hash. Unknown email and wrong password are
	// indistinguishable to the caller: both return ErrAuthenticationFailed.
	Authenticate(ctx context.Context, email, password string) (models.Principal, error)
}

// UserService covers registration and user administration.
type UserService interface {
	// Register creates a new customer account from the registration payload.
	// The requested role is validated but ignored: every new account is a
	// customer.
	Register(ctx context.Context, payload models.NewUser) (models.User, error)

	// ListUsers returns all registered accounts.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns a single account by ID.
	GetUser(ctx context.Context, id string) (models.User, error)

	// ChangeRole assigns a new role to the given account. Admins cannot
	// change their own role.
	ChangeRole(ctx context.Context, principal models.Principal, id string, change models.RoleChange) (models.User, error)

	// RemoveUser deletes the given account and returns the deleted record.
	// Admins cannot delete their own account.
	RemoveUser(ctx context.Context, principal models.Principal, id string) (models.User, error)
}

// ProductService covers the product catalog.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	CreateProduct(ctx context.Context, payload models.NewProduct) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, payload models.NewProduct) (models.Product, error)
	RemoveProduct(ctx context.Context, id string) (models.Product, error)
}

// OrderService covers order placement and retrieval. Every operation is
// scoped by the requesting principal: customers only ever see their own
// orders.
type OrderService interface {
	ListOrders(ctx context.Context, principal models.Principal) ([]models.Order, error)
	GetOrder(ctx context.Context, principal models.Principal, id string) (models.Order, error)
	CreateOrder(ctx context.Context, principal models.Principal, payload models.NewOrder) (models.Order, error)
}
