package address

import (
	"context"
	"errors"
	"fmt"

	"mileage-logbook/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the address repository.
// Every operation is scoped by user_id; ownership is the only multi-tenancy
// boundary in the schema.
type RepositoryInterface interface {
	ListByUserID(ctx context.Context, userID string) ([]*models.Address, error)
	FindByID(ctx context.Context, userID, addressID string) (*models.Address, error)
	Insert(ctx context.Context, userID, text string) (*models.Address, error)
	Update(ctx context.Context, userID, addressID, text string) (*models.Address, error)
	Delete(ctx context.Context, userID, addressID string) error
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new address repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) scanAddress(row pgx.Row) (*models.Address, error) {
	var a models.Address
	if err := row.Scan(&a.ID, &a.UserID, &a.AddressText, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan address: %w", err)
	}
	return &a, nil
}

// ListByUserID returns the caller's addresses, newest first.
func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]*models.Address, error) {
	const query = `
		SELECT id, user_id, address_text, created_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListByUserID.Query: %w", err)
	}
	defer rows.Close()

	var addresses []*models.Address
	for rows.Next() {
		a, err := r.scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.ListByUserID.scanAddress: %w", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.ListByUserID.rows: %w", err)
	}
	return addresses, nil
}

// FindByID returns one address, or ErrNotFound when it is absent or owned by
// someone else.
func (r *Repository) FindByID(ctx context.Context, userID, addressID string) (*models.Address, error) {
	const query = `
		SELECT id, user_id, address_text, created_at
		FROM addresses
		WHERE id = $1 AND user_id = $2`
	a, err := r.scanAddress(r.db.QueryRow(ctx, query, addressID, userID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return a, nil
}

// Insert creates a new address row for the user.
func (r *Repository) Insert(ctx context.Context, userID, text string) (*models.Address, error) {
	const query = `
		INSERT INTO addresses (user_id, address_text)
		VALUES ($1, $2)
		RETURNING id, user_id, address_text, created_at`
	a, err := r.scanAddress(r.db.QueryRow(ctx, query, userID, text))
	if err != nil {
		return nil, fmt.Errorf("repository.Insert: %w", err)
	}
	return a, nil
}

// Update rewrites the address text of an owned row.
func (r *Repository) Update(ctx context.Context, userID, addressID, text string) (*models.Address, error) {
	const query = `
		UPDATE addresses
		SET address_text = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, address_text, created_at`
	a, err := r.scanAddress(r.db.QueryRow(ctx, query, text, addressID, userID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.Update: %w", err)
	}
	return a, nil
}

// Delete removes an owned row. A row owned by another user is left untouched
// and reported as ErrNotFound.
func (r *Repository) Delete(ctx context.Context, userID, addressID string) error {
	const query = `DELETE FROM addresses WHERE id = $1 AND user_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, addressID, userID)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
