// Package users implements the credential store: durable user records with
// username and email uniqueness, for SQLite and PostgreSQL.
package users

import (
	"context"

	"github.com/dmitrijs2005/phishguard/internal/models"
)

// Repository is the credential store contract.
//
// Create returns common.ErrorConflict when the username or the email is
// already taken; GetPasswordHash returns common.ErrorNotFound when no record
// has the identifier as its username or email. Any other error is an
// infrastructure failure.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetPasswordHash(ctx context.Context, identifier string) ([]byte, error)
}
