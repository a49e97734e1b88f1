package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/internal/store"
	"github.com/jmattila/webshop/models"
)

// dummyHash is a bcrypt hash of an unguessable value. When a lookup finds no
// account, the password is still compared against this hash so the response
// time does not reveal whether the email exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService is the concrete implementation of [AuthService]. It resolves
// Basic-auth credentials against the user repository and verifies passwords
// with bcrypt.
type authService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate resolves an email/password pair to a verified principal.
//
// The two failure modes, unknown email and wrong password, are collapsed
// into [ErrAuthenticationFailed]. On the unknown-email path a dummy bcrypt
// comparison still runs so both paths cost roughly the same.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return models.Principal{}, ErrAuthenticationFailed
		}

		log.Err(err).Msg("user lookup failed during authentication")
		return models.Principal{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Principal{}, ErrAuthenticationFailed
	}

	return models.Principal{ID: user.ID, Role: user.Role}, nil
}
