package cart

import (
	"strings"

	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

// PaymentData is what the buyer sends along with the payment method.
// Only the fields of the chosen method are read.
type PaymentData struct {
	CardHolder string `json:"card_holder"`
	CardNumber string `json:"card_number"`
	CardToken  string `json:"card_token"`

	Holder        string `json:"holder"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
}

func incomplete() error {
	return httperr.ErrBusiness("incomplete_payment_data")
}

// Last4 returns the last four digits of a card number, ignoring spaces
// and dashes. ok is false when it has fewer than four digits.
func Last4(cardNumber string) (last4 string, ok bool) {
	var digits strings.Builder
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 4 {
		return "", false
	}
	return d[len(d)-4:], true
}

// ValidatePayment checks the fields the method requires. requireToken is
// set when card payments go through a gateway that charges a card token.
func ValidatePayment(method string, data PaymentData, requireToken bool) error {
	switch method {
	case models.PaymentCard:
		if strings.TrimSpace(data.CardHolder) == "" {
			return incomplete()
		}
		if _, ok := Last4(data.CardNumber); !ok {
			return incomplete()
		}
		if requireToken && strings.TrimSpace(data.CardToken) == "" {
			return incomplete()
		}

	case models.PaymentTransfer:
		if strings.TrimSpace(data.Holder) == "" ||
			strings.TrimSpace(data.Bank) == "" ||
			strings.TrimSpace(data.AccountNumber) == "" {
			return incomplete()
		}
	}
	return nil
}

// Details builds the stored payment details; transactionID is only used
// for card payments. Call ValidatePayment first.
func Details(method string, data PaymentData, transactionID string) models.PaymentDetails {
	switch method {
	case models.PaymentCard:
		last4, _ := Last4(data.CardNumber)
		return models.PaymentDetails{
			CardHolder:    data.CardHolder,
			CardLast4:     last4,
			TransactionID: transactionID,
		}
	case models.PaymentTransfer:
		return models.PaymentDetails{
			Holder:        data.Holder,
			Bank:          data.Bank,
			AccountNumber: data.AccountNumber,
		}
	}
	return models.PaymentDetails{}
}
