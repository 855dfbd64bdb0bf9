// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

// User represents a registered account.
//
// SERIALIZATION CONTRACT:
// The `json:"..."` tags ARE the serialization contract. Encoding a User with
// encoding/json produces exactly {"id":..,"email":..,"is_active":..}.
//
// WHY json:"-" ON Password?
// The password field holds a bcrypt hash — an opaque credential. It must NEVER
// appear in an API response. The `json:"-"` tag tells encoding/json to skip the
// field entirely, so a handler cannot leak it by accident. Enforcing the rule
// at the type level (instead of copying into a "safe" struct in every handler)
// means it is written once and holds everywhere.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
	IsActive bool   `json:"is_active"`
}
