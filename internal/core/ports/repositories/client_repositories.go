package repositories

import (
	"context"

	"github.com/facturly/facturly-backend/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClientsByUser retrieves all clients owned by a user, newest first.
	ListClientsByUser(ctx context.Context, userID string) ([]domain.Client, error)

	// CountClientsByUser counts the clients owned by a user, used for
	// free-plan limit checks.
	CountClientsByUser(ctx context.Context, userID string) (int, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient inserts or fully replaces a client.
	SaveClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
