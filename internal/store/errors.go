package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registration fails because an
	// account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email is already in use")

	// ErrProductAlreadyExists is returned when product creation fails because
	// a product with the same name is already in the catalog.
	ErrProductAlreadyExists = errors.New("product is already in database")

	// ErrUserNotFound is returned when a user lookup produces no rows.
	ErrUserNotFound = errors.New("no user was found")

	// ErrProductNotFound is returned when a product lookup produces no rows.
	ErrProductNotFound = errors.New("no product was found")

	// ErrOrderNotFound is returned when an order lookup produces no rows.
	ErrOrderNotFound = errors.New("no order was found")
)

// Low-level database operation errors, returned wrapped by repository methods
// when a SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
