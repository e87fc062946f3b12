package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/facturly/facturly-backend/internal/core/domain"
	portsrepo "github.com/facturly/facturly-backend/internal/core/ports/repositories"
)

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Invoice), returnedNextToken, args.Error(2)
}

func (m *MockInvoiceRepository) CountInvoicesCreatedBetween(ctx context.Context, userID string, from, to time.Time) (int, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, userID string, invoice domain.Invoice, items []domain.LineItem) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoice, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error {
	args := m.Called(ctx, invoice, items)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DuplicateInvoice(ctx context.Context, userID string, copy domain.Invoice, items []domain.LineItem) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, copy, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClientsByUser(ctx context.Context, userID string) ([]domain.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) CountClientsByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SumInvoicesIssuedBetween(ctx context.Context, userID string, from, to time.Time, statuses []domain.InvoiceStatus) (decimal.Decimal, int, error) {
	args := m.Called(ctx, userID, from, to, statuses)
	return args.Get(0).(decimal.Decimal), args.Int(1), args.Error(2)
}

func (m *MockReportingRepository) SumInvoicesByStatus(ctx context.Context, userID string, statuses []domain.InvoiceStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, statuses)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) FindRecentInvoices(ctx context.Context, userID string, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
