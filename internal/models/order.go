package models

const (
	PaymentCard     = "card"
	PaymentTransfer = "transfer"

	OrderStatusCreated = "created"
)

type PaymentDetails struct {
	CardHolder    string `json:"card_holder,omitempty"`
	CardLast4     string `json:"card_last4,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`

	Holder        string `json:"holder,omitempty"`
	Bank          string `json:"bank,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

type Order struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Items          []CartItem     `json:"items"`
	Total          float64        `json:"total"`
	PaymentMethod  string         `json:"payment_method"`
	Status         string         `json:"status"`
	PaymentDetails PaymentDetails `json:"payment_details"`
	CreatedAt      string         `json:"created_at"`
}
