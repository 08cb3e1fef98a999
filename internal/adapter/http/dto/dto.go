package dto

// TransactionData carries the payment figures reported by the caller.
// Fields are passed through to storage as received; PayPal's order is
// the source of truth for whether the payment actually completed.
type TransactionData struct {
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PayerName     string  `json:"payer_name"`
	PayerEmail    string  `json:"payer_email"`
	CreateTime    string  `json:"create_time"`
	UserID        string  `json:"user_id"`
}

// WebhookRequest is the request body for the PayPal webhook endpoint.
// OrderID is checked by hand in the handler so that an empty string is
// rejected the same way as an absent field.
type WebhookRequest struct {
	OrderID         string          `json:"orderID"`
	TransactionData TransactionData `json:"transactionData"`
}
