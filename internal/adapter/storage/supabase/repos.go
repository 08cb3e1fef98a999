package supabase

import (
	"context"

	"paypal-subscription-webhook/internal/core/domain"
)

// TransactionRepo implements ports.TransactionRepository over PostgREST.
type TransactionRepo struct {
	client *Client
}

// NewTransactionRepo creates a Supabase-backed TransactionRepo.
func NewTransactionRepo(client *Client) *TransactionRepo {
	return &TransactionRepo{client: client}
}

// Insert writes a new transaction row.
func (r *TransactionRepo) Insert(ctx context.Context, t *domain.Transaction) error {
	return r.client.post(ctx, "/rest/v1/transactions", "return=minimal", t)
}

// SubscriptionRepo implements ports.SubscriptionRepository over PostgREST.
type SubscriptionRepo struct {
	client *Client
}

// NewSubscriptionRepo creates a Supabase-backed SubscriptionRepo.
func NewSubscriptionRepo(client *Client) *SubscriptionRepo {
	return &SubscriptionRepo{client: client}
}

// Upsert inserts or replaces the subscription row for s.UserID.
func (r *SubscriptionRepo) Upsert(ctx context.Context, s *domain.Subscription) error {
	return r.client.post(ctx, "/rest/v1/subscriptions?on_conflict=user_id",
		"resolution=merge-duplicates,return=minimal", s)
}
