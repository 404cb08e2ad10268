package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/quetzapay/quetzapay/internal/pkg/models"
	"github.com/quetzapay/quetzapay/services/merchants"
)

// PostgresMerchantRepo implements the MerchantRepo interface
type PostgresMerchantRepo struct {
	db *sqlx.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *sqlx.DB) merchants.MerchantRepo {
	return &PostgresMerchantRepo{
		db: db,
	}
}

// CreateMerchant inserts a new merchant record
func (r *PostgresMerchantRepo) CreateMerchant(ctx context.Context, merchant *models.Merchant) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO merchants (
			id, name, email, business_name, wallet_address,
			api_secret_hash, is_active, created_at, updated_at
		) VALUES (
			:id, :name, :email, :business_name, :wallet_address,
			:api_secret_hash, :is_active, :created_at, :updated_at
		)
	`, merchant)

	if err != nil {
		return fmt.Errorf("failed to create merchant: %w", err)
	}

	return nil
}

// GetMerchantByID retrieves a merchant by id
func (r *PostgresMerchantRepo) GetMerchantByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error) {
	return r.getMerchantByField(ctx, "id", id)
}

// GetMerchantByEmail retrieves a merchant by email
func (r *PostgresMerchantRepo) GetMerchantByEmail(ctx context.Context, email string) (*models.Merchant, error) {
	return r.getMerchantByField(ctx, "email", email)
}

// SetMerchantActive toggles a merchant's active flag
func (r *PostgresMerchantRepo) SetMerchantActive(ctx context.Context, id uuid.UUID, active bool) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE merchants
		SET is_active = $2, updated_at = $3
		WHERE id = $1
	`, id, active, time.Now())

	if err != nil {
		return fmt.Errorf("failed to update merchant: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return merchants.ErrMerchantNotFound
	}

	return nil
}

func (r *PostgresMerchantRepo) getMerchantByField(ctx context.Context, field string, value interface{}) (*models.Merchant, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, business_name, wallet_address,
		       api_secret_hash, is_active, created_at, updated_at
		FROM merchants
		WHERE %s = $1
	`, field)

	var merchant models.Merchant
	err := r.db.GetContext(ctx, &merchant, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, merchants.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}

	return &merchant, nil
}
