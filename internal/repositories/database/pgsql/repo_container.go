package pgsql

import (
	portsrepo "github.com/facturly/facturly-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryProvider bundles all pgsql-backed repositories behind their port
// interfaces.
type RepositoryProvider struct {
	UserRepository      portsrepo.UserRepositoryFacade
	ClientRepository    portsrepo.ClientRepositoryFacade
	InvoiceRepository   portsrepo.InvoiceRepositoryFacade
	ReportingRepository portsrepo.ReportingRepositoryFacade
}

// NewRepositoryProvider wires every repository onto the shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *RepositoryProvider {
	return &RepositoryProvider{
		UserRepository:      NewPgxUserRepository(pool),
		ClientRepository:    NewPgxClientRepository(pool),
		InvoiceRepository:   NewPgxInvoiceRepository(pool),
		ReportingRepository: NewPgxReportingRepository(pool),
	}
}
