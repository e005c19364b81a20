package user

import "strings"

// User represents a user entity in the system.
type User struct {
	ID    uint64 // ID is the unique identifier; 0 means not yet persisted
	Name  string // Name is the full name of the user
	Email string // Email is the contact email address of the user
}

// New constructs a User with ID 0. The ID stays 0 until a store assigns one
// during Save. No validation is performed here.
func New(name, email string) *User {
	return &User{Name: name, Email: email}
}

// ValidateEmail reports whether the email contains an '@' character.
// It is a standalone check: the create path does not call it, callers that
// want stricter rules must invoke their own.
func (u *User) ValidateEmail() bool {
	return strings.Contains(u.Email, "@")
}
