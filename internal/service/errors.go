package service

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the services. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrAuthenticationFailed is returned by Authenticate for both an unknown
	// email and a wrong password, so callers cannot enumerate accounts.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrOwnUserDelete is returned when an admin attempts to delete their own
	// account.
	ErrOwnUserDelete = errors.New("Deleting own data is not allowed")

	// ErrOwnUserUpdate is returned when an admin attempts to change their own
	// role.
	ErrOwnUserUpdate = errors.New("Updating own data is not allowed")

	// ErrRoleMissing is returned when a role-change payload carries no role.
	ErrRoleMissing = errors.New("User is missing or not valid")

	// ErrUnknownRole is returned when a role-change payload carries a role
	// outside the supported set.
	ErrUnknownRole = errors.New("Unknown role")

	// ErrAdminOrderForbidden is returned when an admin attempts to place an
	// order; ordering is a customer-only operation.
	ErrAdminOrderForbidden = errors.New("admins are not allowed to place orders")
)

// ValidationError carries the itemized message list produced when a request
// payload fails validation. The HTTP layer serializes Messages verbatim as
// the error body.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
