package ports

import (
	"context"

	"paypal-subscription-webhook/internal/core/domain"
)

// TransactionRepository persists validated payment transactions.
// Rows are insert-only; nothing in this system mutates or deletes them.
type TransactionRepository interface {
	Insert(ctx context.Context, t *domain.Transaction) error
}

// SubscriptionRepository persists per-user subscriptions.
// Upsert is keyed by user_id and overwrites end_date and
// transaction_id on conflict.
type SubscriptionRepository interface {
	Upsert(ctx context.Context, s *domain.Subscription) error
}
