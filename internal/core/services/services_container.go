package services

import (
	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/repositories/database/pgsql"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos *pgsql.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepository)
	container.Client = NewClientService(repos.ClientRepository, repos.UserRepository)
	container.Invoice = NewInvoiceService(repos.InvoiceRepository, repos.ClientRepository, repos.UserRepository)
	container.Reporting = NewReportingService(repos.ReportingRepository, repos.ClientRepository)

	return container
}
