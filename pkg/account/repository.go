package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrCredentialsTaken   = errors.New("credentials taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository abstracts persistence concerns from the domain layer.
// GetByID reports a missing account as ErrNotFound rather than a driver
// error so callers (the auth middleware in particular) stay simple.
type Repository interface {
	Create(ctx context.Context, acct Account) error
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	Update(ctx context.Context, acct Account) error
}
