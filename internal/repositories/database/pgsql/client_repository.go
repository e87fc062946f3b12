package pgsql

import (
	"context"
	"errors"

	"github.com/facturly/facturly-backend/internal/apperrors"
	"github.com/facturly/facturly-backend/internal/core/domain"
	portsrepo "github.com/facturly/facturly-backend/internal/core/ports/repositories"
	"github.com/facturly/facturly-backend/internal/models"
	"github.com/facturly/facturly-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `client_id, user_id, name, email, phone, tax_id, address, city, state, zip_code, country, notes, created_at, last_updated_at`

type PgxClientRepository struct {
	BaseRepository
}

// NewPgxClientRepository creates a new repository for client data.
func NewPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func scanClient(row pgx.Row) (*models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.TaxID,
		&m.Address,
		&m.City,
		&m.State,
		&m.ZipCode,
		&m.Country,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveClient inserts a client or fully replaces it when the ID already exists.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (client_id, user_id, name, email, phone, tax_id, address, city, state, zip_code, country, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (client_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			tax_id = EXCLUDED.tax_id,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip_code = EXCLUDED.zip_code,
			country = EXCLUDED.country,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.UserID,
		m.Name,
		m.Email,
		m.Phone,
		m.TaxID,
		m.Address,
		m.City,
		m.State,
		m.ZipCode,
		m.Country,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save client "+m.ClientID, err)
	}
	return nil
}

// DeleteClient removes a client row.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete client "+clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("client " + clientID + " not found for delete")
	}
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find client by ID "+clientID, err)
	}
	domainClient := mapping.ToDomainClient(*m)
	return &domainClient, nil
}

// ListClientsByUser retrieves all clients owned by a user, newest first.
func (r *PgxClientRepository) ListClientsByUser(ctx context.Context, userID string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 ORDER BY created_at DESC, client_id DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list clients for user "+userID, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan client row", err)
		}
		clients = append(clients, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating client rows", err)
	}
	return mapping.ToDomainClientSlice(clients), nil
}

// CountClientsByUser counts the clients owned by a user.
func (r *PgxClientRepository) CountClientsByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients WHERE user_id = $1;`, userID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count clients for user "+userID, err)
	}
	return count, nil
}
