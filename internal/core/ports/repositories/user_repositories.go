package repositories

import (
	"context"

	"github.com/facturly/facturly-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, used for login and
	// duplicate-registration checks.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
//
// Note: User.InvoiceCounter is deliberately NOT writable here. The counter is
// owned by the invoice creation/duplication transactions and only moves via
// their atomic increment.
type UserWriter interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates profile, branding and plan fields of a user.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
