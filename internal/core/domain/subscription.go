package domain

import "time"

// SubscriptionPeriod is the window granted per validated payment.
// The end date is overwritten on every upsert, not extended.
const SubscriptionPeriod = 30 * 24 * time.Hour

// Subscription is the per-user subscription row, keyed by UserID.
type Subscription struct {
	UserID        string    `json:"user_id"`
	EndDate       time.Time `json:"end_date"`
	TransactionID string    `json:"transaction_id"`
}

// NewSubscription builds a subscription ending one period after now.
func NewSubscription(userID, transactionID string, now time.Time) *Subscription {
	return &Subscription{
		UserID:        userID,
		EndDate:       now.Add(SubscriptionPeriod),
		TransactionID: transactionID,
	}
}

// ActiveAt reports whether the subscription covers the given instant.
func (s *Subscription) ActiveAt(t time.Time) bool {
	return t.Before(s.EndDate)
}
