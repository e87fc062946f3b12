package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/core/services"
	"github.com/facturly/facturly-backend/internal/dto"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.ClientSvcFacade

	userID string
	user   domain.User
}

func (s *ClientServiceTestSuite) SetupTest() {
	s.mockClientRepo = new(MockClientRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewClientService(s.mockClientRepo, s.mockUserRepo)

	s.userID = uuid.NewString()
	s.user = domain.User{UserID: s.userID, Email: "freelancer@example.com"}
}

func (s *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(&s.user, nil).Once()
	s.mockClientRepo.On("CountClientsByUser", ctx, s.userID).Return(3, nil).Once()
	s.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	client, err := s.service.CreateClient(ctx, s.userID, dto.SaveClientRequest{Name: "Acme Corp", Email: "billing@acme.example"})

	s.Require().NoError(err)
	s.Equal("Acme Corp", client.Name)
	s.Equal(s.userID, client.UserID)
	s.NotEmpty(client.ClientID)
}

func (s *ClientServiceTestSuite) TestCreateClient_FreePlanLimit() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(&s.user, nil).Once()
	s.mockClientRepo.On("CountClientsByUser", ctx, s.userID).Return(10, nil).Once()

	_, err := s.service.CreateClient(ctx, s.userID, dto.SaveClientRequest{Name: "One Too Many"})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrLimitReached)
	s.mockClientRepo.AssertNotCalled(s.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestCreateClient_PremiumBypassesLimit() {
	ctx := context.Background()
	premium := s.user
	premium.IsPremium = true
	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(&premium, nil).Once()
	s.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	_, err := s.service.CreateClient(ctx, s.userID, dto.SaveClientRequest{Name: "Client Eleven"})

	s.Require().NoError(err)
	s.mockClientRepo.AssertNotCalled(s.T(), "CountClientsByUser", mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestUpdateClient_NotOwned() {
	ctx := context.Background()
	clientID := uuid.NewString()
	foreign := &domain.Client{ClientID: clientID, UserID: uuid.NewString(), Name: "Someone Else's"}
	s.mockClientRepo.On("FindClientByID", ctx, clientID).Return(foreign, nil).Once()

	_, err := s.service.UpdateClient(ctx, s.userID, clientID, dto.SaveClientRequest{Name: "Hijacked"})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockClientRepo.AssertNotCalled(s.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestDeleteClient_Owned() {
	ctx := context.Background()
	clientID := uuid.NewString()
	owned := &domain.Client{ClientID: clientID, UserID: s.userID}
	s.mockClientRepo.On("FindClientByID", ctx, clientID).Return(owned, nil).Once()
	s.mockClientRepo.On("DeleteClient", ctx, clientID).Return(nil).Once()

	err := s.service.DeleteClient(ctx, s.userID, clientID)

	s.Require().NoError(err)
	s.mockClientRepo.AssertExpectations(s.T())
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
