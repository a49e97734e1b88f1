package models

// Role enumerates the access levels a user account can hold.
type Role string

const (
	// RoleCustomer is the default role assigned to every newly registered user.
	RoleCustomer Role = "customer"

	// RoleAdmin grants access to user management and product administration.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the two supported role values.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User represents a registered account. It carries identity attributes and
// the stored credential.
type User struct {
	// ID is the unique identifier of the user: 24 lowercase hex characters,
	// assigned by the persistence layer at creation time.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password. It is never
	// serialized to JSON and must never leave the trusted boundary.
	Password string `json:"-"`

	// Role is either "customer" or "admin".
	Role Role `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
