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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, email, password_hash, company_name, tax_id, address, city, state, zip_code, country,
	phone, website, logo_url, brand_color, invoice_prefix, invoice_counter, default_currency,
	is_premium, premium_expires_at, created_at, last_updated_at`

type PgxUserRepository struct {
	BaseRepository
}

// NewPgxUserRepository creates a new repository for user data.
func NewPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.CompanyName,
		&m.TaxID,
		&m.Address,
		&m.City,
		&m.State,
		&m.ZipCode,
		&m.Country,
		&m.Phone,
		&m.Website,
		&m.LogoURL,
		&m.BrandColor,
		&m.InvoicePrefix,
		&m.InvoiceCounter,
		&m.DefaultCurrency,
		&m.IsPremium,
		&m.PremiumExpiresAt,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveUser inserts a new user. InvoicePrefix, counter and default currency
// fall back to column defaults when left zero-valued by the caller.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, email, password_hash, invoice_prefix, invoice_counter, default_currency, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.PasswordHash,
		m.InvoicePrefix,
		m.InvoiceCounter,
		m.DefaultCurrency,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save user "+m.UserID, err)
	}
	return nil
}

// UpdateUser updates the profile, branding and plan fields of a user.
// The invoice counter is never written here; it belongs to the invoice
// creation transaction.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET company_name = $2, tax_id = $3, address = $4, city = $5, state = $6, zip_code = $7,
		    country = $8, phone = $9, website = $10, logo_url = $11, brand_color = $12,
		    invoice_prefix = $13, default_currency = $14, is_premium = $15, premium_expires_at = $16,
		    last_updated_at = $17
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.CompanyName,
		m.TaxID,
		m.Address,
		m.City,
		m.State,
		m.ZipCode,
		m.Country,
		m.Phone,
		m.Website,
		m.LogoURL,
		m.BrandColor,
		m.InvoicePrefix,
		m.DefaultCurrency,
		m.IsPremium,
		m.PremiumExpiresAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+m.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + m.UserID + " not found for update")
	}
	return nil
}

// FindUserByID retrieves a user by its ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by ID "+userID, err)
	}
	domainUser := mapping.ToDomainUser(*m)
	return &domainUser, nil
}

// FindUserByEmail retrieves a user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by email", err)
	}
	domainUser := mapping.ToDomainUser(*m)
	return &domainUser, nil
}
