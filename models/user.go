package models

import "time"

// Role is the access level attached to an account and embedded into every
// issued token.
type Role string

const (
	// RoleAdmin may manage analyst accounts.
	RoleAdmin Role = "admin"

	// RoleAnalyst may only use the dashboard and manage its own profile.
	RoleAnalyst Role = "analyst"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAnalyst
}

// User represents a dashboard account as it is persisted in the "users" table.
// Sensitive fields must never be exposed outside trusted boundaries; use
// [User.Public] when the account is written to a response.
type User struct {
	// UserID is the unique identifier assigned by the database.
	UserID int64 `json:"_id"`

	// Username is unique across all accounts. Analysts log in with it.
	Username string `json:"username"`

	// Email is optional for analysts and unique when present.
	// Admins log in with it.
	Email *string `json:"email,omitempty"`

	// PasswordHash stores the bcrypt digest of the account password.
	// It is never serialised.
	PasswordHash string `json:"-"`

	// Role is fixed at creation time.
	Role Role `json:"role"`

	// Logo is a server-relative URL (/uploads/<filename>) of the account logo.
	Logo *string `json:"logo,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the redacted view of the account.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Logo:     u.Logo,
	}
}

// PublicUser is the account view returned by the API. It never carries the
// password hash.
type PublicUser struct {
	UserID   int64   `json:"_id"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	Role     Role    `json:"role"`
	Logo     *string `json:"logo,omitempty"`
}

// UserUpdate describes a partial profile update. Only non-nil fields are
// written.
type UserUpdate struct {
	UserID   int64
	Username *string
	Email    *string
	Logo     *string
}

// Empty reports whether the update changes nothing.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.Logo == nil
}
