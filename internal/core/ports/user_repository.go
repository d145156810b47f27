package ports

import (
	"context"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// A duplicate email fails with a uniqueness violation.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by login email. Used by authentication.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
