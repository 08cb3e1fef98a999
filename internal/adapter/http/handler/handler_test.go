package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"paypal-subscription-webhook/internal/adapter/http/dto"
	"paypal-subscription-webhook/internal/core/ports"
	"paypal-subscription-webhook/internal/core/ports/mocks"
	"paypal-subscription-webhook/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postWebhook(h *WebhookHandler, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhook/paypal", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.HandlePayPal(c)
	return w
}

func TestHandlePayPal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWebhookService(ctrl)
	h := NewWebhookHandler(mockSvc)

	mockSvc.EXPECT().ProcessPaymentNotification(gomock.Any(), ports.PaymentNotification{
		OrderID:       "ABC123",
		TransactionID: "T1",
		Status:        "X",
		Amount:        10,
		Currency:      "USD",
		PayerName:     "A",
		PayerEmail:    "a@x.com",
		CreateTime:    "2024-01-01T00:00:00Z",
		UserID:        "U1",
	}).Return(nil)

	body, _ := json.Marshal(dto.WebhookRequest{
		OrderID: "ABC123",
		TransactionData: dto.TransactionData{
			TransactionID: "T1",
			Status:        "X",
			Amount:        10,
			Currency:      "USD",
			PayerName:     "A",
			PayerEmail:    "a@x.com",
			CreateTime:    "2024-01-01T00:00:00Z",
			UserID:        "U1",
		},
	})

	w := postWebhook(h, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Subscripcion actualizada"}`, w.Body.String())
}

func TestHandlePayPal_MissingOrderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the service must never be reached.
	mockSvc := mocks.NewMockWebhookService(ctrl)
	h := NewWebhookHandler(mockSvc)

	for name, body := range map[string]string{
		"absent field": `{"transactionData":{"user_id":"U1"}}`,
		"empty string": `{"orderID":"","transactionData":{"user_id":"U1"}}`,
		"null":         `{"orderID":null,"transactionData":{"user_id":"U1"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := postWebhook(h, []byte(body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Falta orderID"}`, w.Body.String())
		})
	}
}

func TestHandlePayPal_MalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWebhookService(ctrl)
	h := NewWebhookHandler(mockSvc)

	w := postWebhook(h, []byte(`{not json`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Falta orderID"}`, w.Body.String())
}

func TestHandlePayPal_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "payment not completed",
			svcErr:     apperror.ErrPaymentNotCompleted(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Pago no completado"}`,
		},
		{
			name:       "paypal validation failure",
			svcErr:     apperror.ErrPaymentValidation(assert.AnError),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Error al validar el pago"}`,
		},
		{
			name:       "transaction insert failure",
			svcErr:     apperror.ErrTransactionInsert(assert.AnError),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Error insertando en la base de datos"}`,
		},
		{
			name:       "subscription upsert failure surfaces storage message",
			svcErr:     apperror.ErrSubscriptionUpsert(assert.AnError),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"` + assert.AnError.Error() + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := mocks.NewMockWebhookService(ctrl)
			mockSvc.EXPECT().ProcessPaymentNotification(gomock.Any(), gomock.Any()).Return(tt.svcErr)
			h := NewWebhookHandler(mockSvc)

			w := postWebhook(h, []byte(`{"orderID":"ABC123","transactionData":{"user_id":"U1"}}`))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHealthCheck_NoCheckers(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_UnhealthyDependency(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(failingChecker{})(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	db := deps["postgres"].(map[string]interface{})
	assert.Equal(t, "unhealthy", db["status"])
}

type failingChecker struct{}

func (failingChecker) Ping(_ context.Context) error { return assert.AnError }
func (failingChecker) Name() string                 { return "postgres" }

func TestSetupRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWebhookService(ctrl)
	mockSvc.EXPECT().ProcessPaymentNotification(gomock.Any(), gomock.Any()).Return(nil)

	r := SetupRouter(RouterDeps{
		WebhookSvc: mockSvc,
		Logger:     zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/paypal",
		bytes.NewReader([]byte(`{"orderID":"ABC123","transactionData":{"user_id":"U1"}}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
