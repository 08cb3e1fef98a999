package ports

import (
	"context"

	"paypal-subscription-webhook/internal/core/domain"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks paypal-subscription-webhook/internal/core/ports WebhookService,PayPalGateway,TransactionRepository,SubscriptionRepository

// PayPalGateway defines the outbound PayPal REST calls. A fresh access
// token is fetched for every notification; tokens are never cached.
type PayPalGateway interface {
	GetAccessToken(ctx context.Context) (string, error)
	GetOrder(ctx context.Context, orderID string, accessToken string) (*domain.PayPalOrder, error)
}

// PaymentNotification holds the webhook input after ingress checks.
// Every field except OrderID is caller-supplied and unverified.
type PaymentNotification struct {
	OrderID       string
	TransactionID string
	Status        string
	Amount        float64
	Currency      string
	PayerName     string
	PayerEmail    string
	CreateTime    string
	UserID        string
}

// WebhookService re-validates a payment notification against PayPal
// and, on a completed order, records the transaction and updates the
// user's subscription.
type WebhookService interface {
	ProcessPaymentNotification(ctx context.Context, notif PaymentNotification) error
}
