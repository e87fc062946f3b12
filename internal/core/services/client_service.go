package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	portsrepo "github.com/facturly/facturly-backend/internal/core/ports/repositories"
	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/dto"
	"github.com/facturly/facturly-backend/internal/middleware"
)

// freeClientsMax caps the address book for non-premium accounts.
const freeClientsMax = 10

type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{
		clientRepo: clientRepo,
		userRepo:   userRepo,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func applyClientRequest(client *domain.Client, req dto.SaveClientRequest) {
	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.TaxID = req.TaxID
	client.Address = req.Address
	client.City = req.City
	client.State = req.State
	client.ZipCode = req.ZipCode
	client.Country = req.Country
	client.Notes = req.Notes
}

func (s *clientService) findOwnedClient(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return client, nil
}

// CreateClient adds a client to the user's address book, enforcing the
// free-plan cap.
func (s *clientService) CreateClient(ctx context.Context, userID string, req dto.SaveClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isPremiumActive(user, now) {
		count, err := s.clientRepo.CountClientsByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if count >= freeClientsMax {
			return nil, fmt.Errorf("%w: free plan allows %d clients", apperrors.ErrLimitReached, freeClientsMax)
		}
	}

	client := domain.Client{
		ClientID: uuid.NewString(),
		UserID:   userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	applyClientRequest(&client, req)

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to create client", slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves one of the user's clients.
func (s *clientService) GetClientByID(ctx context.Context, userID string, clientID string) (*domain.Client, error) {
	return s.findOwnedClient(ctx, userID, clientID)
}

// ListClients retrieves the user's clients, newest first.
func (s *clientService) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	return s.clientRepo.ListClientsByUser(ctx, userID)
}

// UpdateClient fully replaces an owned client's contact fields.
func (s *clientService) UpdateClient(ctx context.Context, userID string, clientID string, req dto.SaveClientRequest) (*domain.Client, error) {
	client, err := s.findOwnedClient(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}
	applyClientRequest(client, req)
	client.LastUpdatedAt = time.Now()

	if err := s.clientRepo.SaveClient(ctx, *client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes an owned client.
func (s *clientService) DeleteClient(ctx context.Context, userID string, clientID string) error {
	if _, err := s.findOwnedClient(ctx, userID, clientID); err != nil {
		return err
	}
	return s.clientRepo.DeleteClient(ctx, clientID)
}
