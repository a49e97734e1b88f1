package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, role updates and deletion against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation of the created account.
//
// The INSERT returns all columns via a RETURNING clause. An ID is assigned
// here so the route-matching layer can rely on its lexical shape.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = newID()
	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Name, user.Email, user.Password, user.Role)

	var created models.User
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Password, &created.Role); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}

		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the single user record with the given email.
// An empty result set maps to [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.scanUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the user record with the given ID.
// An empty result set maps to [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.scanUser(ctx, findUserByID, id)
}

// FindAllUsers returns every registered account ordered by ID.
func (r *userRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error querying users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role); err != nil {
			log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateUserRole assigns a new role to the account and returns the updated
// record from the UPDATE's RETURNING clause. The caller is expected to have
// read and checked the current record first; the update itself writes a new
// value rather than mutating a shared one.
func (r *userRepository) UpdateUserRole(ctx context.Context, id string, role models.Role) (models.User, error) {
	return r.scanUser(ctx, updateUserRole, id, role)
}

// DeleteUser removes the account and returns the deleted record, so the
// handler can echo back what was removed.
func (r *userRepository) DeleteUser(ctx context.Context, id string) (models.User, error) {
	return r.scanUser(ctx, deleteUser, id)
}

// scanUser runs a query expected to produce exactly one user row and scans
// it. [sql.ErrNoRows] is mapped to [ErrUserNotFound].
func (r *userRepository) scanUser(ctx context.Context, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.scanUser").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}
