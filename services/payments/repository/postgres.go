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
	"github.com/quetzapay/quetzapay/services/payments"
)

// PostgresTransactionRepo implements the TransactionRepo interface
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) payments.TransactionRepo {
	return &PostgresTransactionRepo{
		db: db,
	}
}

// CreateTransaction inserts a new transaction record
func (r *PostgresTransactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	now := time.Now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO transactions (
			id, merchant_id, amount, currency, status, payment_reference,
			is_offline, synced, expires_at, completed_at, created_at, updated_at
		) VALUES (
			:id, :merchant_id, :amount, :currency, :status, :payment_reference,
			:is_offline, :synced, :expires_at, :completed_at, :created_at, :updated_at
		)
	`, tx)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a transaction by its id
func (r *PostgresTransactionRepo) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, merchant_id, amount, currency, status, payment_reference,
		       is_offline, synced, expires_at, completed_at, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// ListTransactions returns the merchant's transactions newest first,
// optionally filtered by status
func (r *PostgresTransactionRepo) ListTransactions(ctx context.Context, merchantID uuid.UUID, status string, limit, offset int) ([]*models.Transaction, error) {
	query := `
		SELECT id, merchant_id, amount, currency, status, payment_reference,
		       is_offline, synced, expires_at, completed_at, created_at, updated_at
		FROM transactions
		WHERE merchant_id = $1
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	txs := []*models.Transaction{}
	err := r.db.SelectContext(ctx, &txs, query, merchantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txs, nil
}

// ListUnsyncedOffline returns the merchant's offline transactions still
// awaiting reconciliation
func (r *PostgresTransactionRepo) ListUnsyncedOffline(ctx context.Context, merchantID uuid.UUID) ([]*models.Transaction, error) {
	query := `
		SELECT id, merchant_id, amount, currency, status, payment_reference,
		       is_offline, synced, expires_at, completed_at, created_at, updated_at
		FROM transactions
		WHERE merchant_id = $1
		  AND is_offline = TRUE
		  AND synced = FALSE
		  AND status = 'pending'
		ORDER BY created_at ASC
	`

	txs := []*models.Transaction{}
	err := r.db.SelectContext(ctx, &txs, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsynced transactions: %w", err)
	}

	return txs, nil
}

// MarkCompleted promotes a pending transaction to completed. The WHERE clause
// compares against the pending status so concurrent reconcilers cannot stamp
// completed_at twice; rows affected tells the caller whether it won.
func (r *PostgresTransactionRepo) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = 'completed', synced = TRUE,
		    completed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, id)

	if err != nil {
		return false, fmt.Errorf("failed to mark transaction completed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// MarkTerminal moves a pending transaction to failed or expired
func (r *PostgresTransactionRepo) MarkTerminal(ctx context.Context, id uuid.UUID, status models.TransactionStatus) (bool, error) {
	if !status.IsTerminal() {
		return false, fmt.Errorf("status %q is not terminal", status)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = $2, synced = TRUE, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, id, status)

	if err != nil {
		return false, fmt.Errorf("failed to mark transaction %s: %w", status, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
