package service

import (
	"context"
	"strconv"
	"time"

	"paypal-subscription-webhook/internal/core/domain"
	"paypal-subscription-webhook/internal/core/ports"
	"paypal-subscription-webhook/pkg/apperror"

	"github.com/rs/zerolog"
)

// WebhookServiceImpl implements ports.WebhookService.
type WebhookServiceImpl struct {
	paypal  ports.PayPalGateway
	txRepo  ports.TransactionRepository
	subRepo ports.SubscriptionRepository
	log     zerolog.Logger
}

// NewWebhookService creates a new WebhookServiceImpl.
func NewWebhookService(
	paypal ports.PayPalGateway,
	txRepo ports.TransactionRepository,
	subRepo ports.SubscriptionRepository,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		paypal:  paypal,
		txRepo:  txRepo,
		subRepo: subRepo,
		log:     log,
	}
}

// ProcessPaymentNotification re-validates the order against PayPal and,
// on COMPLETED, records the transaction and updates the subscription.
// The two writes are sequential and not atomic: a failed upsert leaves
// the transaction row in place.
func (s *WebhookServiceImpl) ProcessPaymentNotification(ctx context.Context, notif ports.PaymentNotification) error {
	token, err := s.paypal.GetAccessToken(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", notif.OrderID).Msg("paypal token fetch failed")
		return apperror.ErrPaymentValidation(err)
	}

	order, err := s.paypal.GetOrder(ctx, notif.OrderID, token)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", notif.OrderID).Msg("paypal order lookup failed")
		return apperror.ErrPaymentValidation(err)
	}

	if !order.IsCompleted() {
		s.log.Warn().
			Str("order_id", notif.OrderID).
			Str("status", order.Status).
			Msg("order not completed, rejecting notification")
		return apperror.ErrPaymentNotCompleted()
	}

	s.compareWithOrder(notif, order)

	txn := &domain.Transaction{
		UserID:        notif.UserID,
		OrderID:       notif.OrderID,
		TransactionID: notif.TransactionID,
		PayerEmail:    notif.PayerEmail,
		PayerName:     notif.PayerName,
		Amount:        notif.Amount,
		Currency:      notif.Currency,
		CreateTime:    notif.CreateTime,
		Status:        notif.Status,
	}
	if err := s.txRepo.Insert(ctx, txn); err != nil {
		s.log.Error().Err(err).Str("order_id", notif.OrderID).Msg("transaction insert failed")
		return apperror.ErrTransactionInsert(err)
	}

	sub := domain.NewSubscription(notif.UserID, notif.TransactionID, time.Now())
	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		// Intermediate state: the transaction row is already persisted.
		s.log.Warn().Err(err).
			Str("order_id", notif.OrderID).
			Str("user_id", notif.UserID).
			Msg("transaction recorded but subscription not updated")
		return apperror.ErrSubscriptionUpsert(err)
	}

	s.log.Info().
		Str("order_id", notif.OrderID).
		Str("user_id", notif.UserID).
		Time("end_date", sub.EndDate).
		Msg("subscription updated")
	return nil
}

// compareWithOrder logs discrepancies between the caller-supplied
// figures and PayPal's authoritative order. Diagnostics only; the
// stored record is the caller's data either way.
func (s *WebhookServiceImpl) compareWithOrder(notif ports.PaymentNotification, order *domain.PayPalOrder) {
	if order.Payer.Email != "" && order.Payer.Email != notif.PayerEmail {
		s.log.Warn().
			Str("order_id", notif.OrderID).
			Str("claimed", notif.PayerEmail).
			Str("paypal", order.Payer.Email).
			Msg("payer email differs from paypal order")
	}

	if amount, ok := order.CapturedAmount(); ok {
		captured, err := strconv.ParseFloat(amount.Value, 64)
		if err == nil && captured != notif.Amount {
			s.log.Warn().
				Str("order_id", notif.OrderID).
				Float64("claimed", notif.Amount).
				Float64("captured", captured).
				Msg("amount differs from paypal capture")
		}
	}
}
