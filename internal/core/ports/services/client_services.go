package services

import (
	"context"

	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/dto"
)

// ClientSvcFacade defines the client operations exposed to the handlers.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, userID string, req dto.SaveClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, userID string, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, userID string, clientID string, req dto.SaveClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, userID string, clientID string) error
}
