package repository

import (
	"context"
	"errors"
	"fmt"

	"brew-pos/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *customerRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new customer.
func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, address, customer_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Type,
		customer.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("customer_id", customer.ID.String()).
			Msg("failed to create customer")
		return fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().
		Str("customer_id", customer.ID.String()).
		Msg("customer created successfully")

	return nil
}

// GetByID retrieves a customer by its ID.
func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, customer_type, created_at
		FROM customers
		WHERE id = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Type, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}

// SetType updates a customer's type within the provided transaction.
func (r *customerRepository) SetType(ctx context.Context, tx pgx.Tx, id uuid.UUID, customerType string) error {
	query := `
		UPDATE customers
		SET customer_type = $2
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, id, customerType)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to update customer type")
		return fmt.Errorf("failed to update customer type: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
		return model.ErrCustomerNotFound
	}

	return nil
}

// CreateMember inserts a member record within the provided transaction.
func (r *customerRepository) CreateMember(ctx context.Context, tx pgx.Tx, member *model.Member) error {
	query := `
		INSERT INTO members (customer_id, password_hash, date_of_birth, registered_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := tx.Exec(ctx, query,
		member.CustomerID, member.PasswordHash, member.DateOfBirth, member.RegisteredAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Warn().
				Str("customer_id", member.CustomerID.String()).
				Msg("customer already has a member record")
			return model.ErrAlreadyMember
		}
		r.logger.Error().
			Err(err).
			Str("customer_id", member.CustomerID.String()).
			Msg("failed to create member")
		return fmt.Errorf("failed to create member: %w", err)
	}

	r.logger.Debug().
		Str("customer_id", member.CustomerID.String()).
		Msg("member created successfully")

	return nil
}

// ListMembers retrieves member customers joined with their member record.
func (r *customerRepository) ListMembers(ctx context.Context) ([]model.MemberProfile, error) {
	query := `
		SELECT c.id, c.name, c.phone, c.email, c.address, m.date_of_birth, m.registered_at
		FROM customers c
		JOIN members m ON c.id = m.customer_id
		ORDER BY m.registered_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query members")
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []model.MemberProfile
	for rows.Next() {
		var m model.MemberProfile
		err := rows.Scan(&m.CustomerID, &m.Name, &m.Phone, &m.Email, &m.Address,
			&m.DateOfBirth, &m.RegisteredAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan member row")
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating member rows")
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}

// GetMemberByEmail retrieves the login account for a MEMBER customer.
func (r *customerRepository) GetMemberByEmail(ctx context.Context, email string) (*model.MemberAccount, error) {
	query := `
		SELECT c.id, c.name, m.password_hash
		FROM customers c
		JOIN members m ON c.id = m.customer_id
		WHERE c.email = $1 AND c.customer_type = 'MEMBER'
	`

	var account model.MemberAccount
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&account.CustomerID, &account.Name, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query member account")
		return nil, fmt.Errorf("failed to query member account: %w", err)
	}

	return &account, nil
}
