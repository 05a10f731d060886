package models

import "time"

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                // Primary key
	FirstName    string    `json:"firstName" db:"first_name"` // Required first name
	LastName     string    `json:"lastName" db:"last_name"`   // Required last name
	Email        string    `json:"email" db:"email"`          // Unique email, also the login name
	PasswordHash string    `json:"-" db:"password_hash"`      // bcrypt hash, never serialized
	Role         Role      `json:"userType" db:"role"`        // Fixed at registration
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}

// Principal is the authenticated caller as asserted by a verified token.
type Principal struct {
	UserID int64
	Email  string
	Role   Role
}

// SignedInUser is the user summary returned on login.
// swagger:model SignedInUser
type SignedInUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UserType  Role   `json:"userType" swaggertype:"string" example:"Host"`
}

// LoginResult is the outcome of a successful credential check.
type LoginResult struct {
	Token string
	User  SignedInUser
}
