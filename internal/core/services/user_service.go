package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	portsrepo "github.com/facturly/facturly-backend/internal/core/ports/repositories"
	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/dto"
	"github.com/facturly/facturly-backend/internal/middleware"
	"github.com/facturly/facturly-backend/internal/utils"
)

// ErrInvalidCredentials is returned on a failed login attempt. It deliberately
// does not distinguish an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

const (
	defaultInvoicePrefix = "INV"
	defaultCurrencyCode  = "USD"
	premiumDurationDays  = 30
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a new account with numbering and currency defaults.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		UserID:          uuid.NewString(),
		Email:           req.Email,
		PasswordHash:    hash,
		InvoicePrefix:   defaultInvoicePrefix,
		InvoiceCounter:  1,
		DefaultCurrency: defaultCurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// AuthenticateUser verifies credentials and returns the matching user.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID retrieves a user profile.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// UpdateProfile applies the provided fields. Nil pointers leave the current
// value untouched, so partial updates are safe.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.TaxID != nil {
		user.TaxID = *req.TaxID
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.ZipCode != nil {
		user.ZipCode = *req.ZipCode
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Website != nil {
		user.Website = *req.Website
	}
	if req.InvoicePrefix != nil {
		user.InvoicePrefix = *req.InvoicePrefix
	}
	if req.DefaultCurrency != nil {
		user.DefaultCurrency = *req.DefaultCurrency
	}
	if req.BrandColor != nil {
		user.BrandColor = *req.BrandColor
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpgradeToPremium marks the account premium for the standard window,
// extending from now rather than from the previous expiry.
func (s *userService) UpgradeToPremium(ctx context.Context, userID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiresAt := now.AddDate(0, 0, premiumDurationDays)
	user.IsPremium = true
	user.PremiumExpiresAt = &expiresAt
	user.LastUpdatedAt = now

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	logger.Info("User upgraded to premium", slog.String("user_id", userID), slog.Time("expires_at", expiresAt))
	return user, nil
}

// UpdateLogoURL records the uploaded logo location on the profile.
func (s *userService) UpdateLogoURL(ctx context.Context, userID string, logoURL string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.LogoURL = logoURL
	user.LastUpdatedAt = time.Now()
	return s.userRepo.UpdateUser(ctx, *user)
}
