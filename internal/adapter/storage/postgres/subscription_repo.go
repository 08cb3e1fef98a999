package postgres

import (
	"context"
	"fmt"

	"paypal-subscription-webhook/internal/core/domain"
)

// SubscriptionRepo implements ports.SubscriptionRepository.
type SubscriptionRepo struct {
	pool Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// Upsert inserts or replaces the subscription row for s.UserID.
// end_date and transaction_id are overwritten on conflict, not merged.
func (r *SubscriptionRepo) Upsert(ctx context.Context, s *domain.Subscription) error {
	query := `INSERT INTO subscriptions (user_id, end_date, transaction_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET end_date = EXCLUDED.end_date, transaction_id = EXCLUDED.transaction_id`

	_, err := r.pool.Exec(ctx, query, s.UserID, s.EndDate, s.TransactionID)
	if err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	return nil
}
