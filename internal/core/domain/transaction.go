package domain

// Transaction is the persisted record of a validated PayPal payment.
// Fields arrive from the webhook caller and are stored as received;
// only OrderID comes from the validated request path.
type Transaction struct {
	UserID        string  `json:"user_id"`
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	PayerEmail    string  `json:"payer_email"`
	PayerName     string  `json:"payer_name"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CreateTime    string  `json:"create_time"`
	Status        string  `json:"status"`
}
