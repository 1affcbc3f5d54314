package model

import "time"

// Role values stored in users.role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserType values stored in users.user_type. The field is a cached view of
// which profile table owns a row for the user; it is set inside the same
// transaction that creates the profile row.
const (
	UserTypeCompany      = "company"
	UserTypeEmployee     = "employee"
	UserTypeProfessional = "health_professional"
	UserTypeAdmin        = "admin"
)

// User represents a row in the `users` table. OpenID carries the external
// identity-provider key when the account was created through that flow;
// PasswordHash is set for accounts using email/password login. Either may be
// nil, never both.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	OpenID       – unique external identity key (nullable).
//	Name         – display name (nullable).
//	Email        – email address (nullable, unique when present).
//	PasswordHash – bcrypt hashed password (nullable).
//	Role         – "user" or "admin".
//	UserType     – cached profile type (nullable until a profile is claimed).
//	LastSignedIn – timestamp of the most recent login.
type User struct {
	ID           uint64     `json:"id"`
	OpenID       *string    `json:"openId,omitempty"`
	Name         *string    `json:"name"`
	Email        *string    `json:"email"`
	PasswordHash *string    `json:"-"`
	Role         string     `json:"role"`
	UserType     *string    `json:"userType"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastSignedIn time.Time  `json:"lastSignedIn"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// HasUserType reports whether the cached profile type matches t.
func (u User) HasUserType(t string) bool { return u.UserType != nil && *u.UserType == t }
