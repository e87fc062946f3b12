package services

import (
	"context"

	"github.com/facturly/facturly-backend/internal/core/domain"
	"github.com/facturly/facturly-backend/internal/dto"
)

// UserSvcFacade defines account and profile operations exposed to the handlers.
type UserSvcFacade interface {
	// RegisterUser creates a new account with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the matching user.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user profile.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateProfile applies the provided profile/branding fields.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// UpgradeToPremium marks the account premium for 30 days.
	UpgradeToPremium(ctx context.Context, userID string) (*domain.User, error)

	// UpdateLogoURL records the uploaded logo location on the profile.
	UpdateLogoURL(ctx context.Context, userID string, logoURL string) error
}
