package handler

import (
	"paypal-subscription-webhook/internal/adapter/http/dto"
	"paypal-subscription-webhook/internal/core/ports"
	"paypal-subscription-webhook/pkg/apperror"
	"paypal-subscription-webhook/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles inbound PayPal payment notifications.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc}
}

// HandlePayPal handles POST /webhook/paypal.
func (h *WebhookHandler) HandlePayPal(c *gin.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMissingOrderID())
		return
	}
	if req.OrderID == "" {
		response.Error(c, apperror.ErrMissingOrderID())
		return
	}

	err := h.webhookSvc.ProcessPaymentNotification(c.Request.Context(), ports.PaymentNotification{
		OrderID:       req.OrderID,
		TransactionID: req.TransactionData.TransactionID,
		Status:        req.TransactionData.Status,
		Amount:        req.TransactionData.Amount,
		Currency:      req.TransactionData.Currency,
		PayerName:     req.TransactionData.PayerName,
		PayerEmail:    req.TransactionData.PayerEmail,
		CreateTime:    req.TransactionData.CreateTime,
		UserID:        req.TransactionData.UserID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subscripcion actualizada")
}
