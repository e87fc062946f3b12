package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/core/services"
	"github.com/facturly/facturly-backend/internal/dto"
	"github.com/facturly/facturly-backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockUserRepo)
}

func (s *UserServiceTestSuite) TestRegisterUser_AppliesDefaults() {
	ctx := context.Background()
	var saved domain.User
	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := s.service.RegisterUser(ctx, dto.RegisterRequest{Email: "new@example.com", Password: "s3cret-pass"})

	s.Require().NoError(err)
	s.Equal("new@example.com", user.Email)
	s.Equal("INV", saved.InvoicePrefix)
	s.Equal(int64(1), saved.InvoiceCounter)
	s.Equal("USD", saved.DefaultCurrency)
	s.NotEqual("s3cret-pass", saved.PasswordHash)
	s.True(utils.CheckPasswordHash("s3cret-pass", saved.PasswordHash))
}

func (s *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.RegisterUser(ctx, dto.RegisterRequest{Email: "taken@example.com", Password: "s3cret-pass"})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	s.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "u@example.com", PasswordHash: hash}
	s.mockUserRepo.On("FindUserByEmail", ctx, "u@example.com").Return(stored, nil).Once()

	_, err = s.service.AuthenticateUser(ctx, "u@example.com", "wrong-password")

	s.Require().Error(err)
	s.ErrorIs(err, services.ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailMasked() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	s.Require().Error(err)
	// Unknown email and wrong password must be indistinguishable to the caller.
	s.ErrorIs(err, services.ErrInvalidCredentials)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestUpdateProfile_PartialUpdate() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.User{
		UserID:          userID,
		Email:           "u@example.com",
		CompanyName:     "Old Studio",
		InvoicePrefix:   "INV",
		DefaultCurrency: "USD",
	}
	s.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()

	var updated domain.User
	s.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.User) }).
		Return(nil).Once()

	newName := "Estudio López"
	newCurrency := "MXN"
	_, err := s.service.UpdateProfile(ctx, userID, dto.UpdateProfileRequest{
		CompanyName:     &newName,
		DefaultCurrency: &newCurrency,
	})

	s.Require().NoError(err)
	s.Equal("Estudio López", updated.CompanyName)
	s.Equal("MXN", updated.DefaultCurrency)
	s.Equal("INV", updated.InvoicePrefix)
}

func (s *UserServiceTestSuite) TestUpgradeToPremium() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.User{UserID: userID, Email: "u@example.com"}
	s.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()

	var updated domain.User
	s.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := s.service.UpgradeToPremium(ctx, userID)

	s.Require().NoError(err)
	s.True(user.IsPremium)
	s.Require().NotNil(updated.PremiumExpiresAt)
	s.WithinDuration(time.Now().AddDate(0, 0, 30), *updated.PremiumExpiresAt, time.Minute)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
