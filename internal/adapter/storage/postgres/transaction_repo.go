package postgres

import (
	"context"
	"fmt"

	"paypal-subscription-webhook/internal/core/domain"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Insert writes a new transaction row.
func (r *TransactionRepo) Insert(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (user_id, order_id, transaction_id, payer_email, payer_name,
		amount, currency, create_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		t.UserID, t.OrderID, t.TransactionID, t.PayerEmail, t.PayerName,
		t.Amount, t.Currency, t.CreateTime, t.Status,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
