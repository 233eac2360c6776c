// Package models holds the persisted domain types.
package models

// User is a stored credential record. Records are written once at
// registration and never updated.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash []byte
}
