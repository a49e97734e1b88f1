package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/internal/store"
	"github.com/jmattila/webshop/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	userRepository store.UserRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserService constructs a [UserService]. A bcryptCost of zero selects
// the bcrypt library default.
func NewUserService(userRepository store.UserRepository, bcryptCost int, logger *logger.Logger) UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return &userService{
		userRepository: userRepository,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Register validates the payload, hashes the password once at creation time,
// and persists the new account as a customer.
//
// Validation errors take precedence over a duplicate email: an invalid
// payload is reported as a *ValidationError even when the email is also
// taken. A duplicate email surfaces as [store.ErrEmailAlreadyExists].
func (s *userService) Register(ctx context.Context, payload models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateNewUser(payload); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	// The requested role was validated above but is deliberately not used:
	// accounts can only be promoted by an admin after registration.
	user := models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: string(hash),
		Role:     models.RoleCustomer,
	}

	return s.userRepository.CreateUser(ctx, user)
}

// ListUsers returns all registered accounts.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.FindAllUsers(ctx)
}

// GetUser returns a single account by ID or [store.ErrUserNotFound].
func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

// ChangeRole assigns a new role to the account with the given ID.
//
// The check order is part of the API contract: an unknown target is a
// not-found before any payload inspection, changing one's own role is
// rejected next, then a missing role, then an invalid one. The update itself
// is a read-modify-write that returns the new record; the record read for
// the checks is never mutated.
func (s *userService) ChangeRole(ctx context.Context, principal models.Principal, id string, change models.RoleChange) (models.User, error) {
	if _, err := s.userRepository.FindUserByID(ctx, id); err != nil {
		return models.User{}, err
	}

	if id == principal.ID {
		return models.User{}, ErrOwnUserUpdate
	}

	if change.Role == nil {
		return models.User{}, ErrRoleMissing
	}

	if !change.Role.Valid() {
		return models.User{}, ErrUnknownRole
	}

	return s.userRepository.UpdateUserRole(ctx, id, *change.Role)
}

// RemoveUser deletes the account with the given ID and returns the deleted
// record. Deleting one's own account is rejected before the target is even
// looked up.
func (s *userService) RemoveUser(ctx context.Context, principal models.Principal, id string) (models.User, error) {
	if id == principal.ID {
		return models.User{}, ErrOwnUserDelete
	}

	return s.userRepository.DeleteUser(ctx, id)
}
