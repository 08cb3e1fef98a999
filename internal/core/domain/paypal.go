package domain

// OrderStatusCompleted is the only PayPal order status that triggers
// persistence.
const OrderStatusCompleted = "COMPLETED"

// PayPalOrder is the parsed body of a PayPal order lookup.
type PayPalOrder struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	Payer         PayPalPayer    `json:"payer"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}

type PayPalPayer struct {
	PayerID string `json:"payer_id"`
	Email   string `json:"email_address"`
}

type PayPalAmount struct {
	Currency string `json:"currency_code"`
	Value    string `json:"value"`
}

type PayPalCapture struct {
	ID         string       `json:"id"`
	Status     string       `json:"status"`
	CreateTime string       `json:"create_time"`
	Final      bool         `json:"final_capture"`
	Amount     PayPalAmount `json:"amount"`
}

type PayPalPayments struct {
	Captures []PayPalCapture `json:"captures"`
}

type PurchaseUnit struct {
	ReferenceID string         `json:"reference_id"`
	Payments    PayPalPayments `json:"payments"`
}

// IsCompleted reports whether the order has been fully captured.
func (o *PayPalOrder) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// CapturedAmount returns the first captured amount, if any. Used for
// diagnostic comparison against caller-supplied figures.
func (o *PayPalOrder) CapturedAmount() (PayPalAmount, bool) {
	for _, pu := range o.PurchaseUnits {
		for _, c := range pu.Payments.Captures {
			return c.Amount, true
		}
	}
	return PayPalAmount{}, false
}
