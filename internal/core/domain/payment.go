package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "Credit Card"
	PaymentCash         PaymentMethod = "Cash"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
)

var paymentAliases = map[string]PaymentMethod{
	"credit card":   PaymentCreditCard,
	"credit_card":   PaymentCreditCard,
	"creditcard":    PaymentCreditCard,
	"cash":          PaymentCash,
	"bank transfer": PaymentBankTransfer,
	"bank_transfer": PaymentBankTransfer,
	"banktransfer":  PaymentBankTransfer,
}

// ParsePaymentMethod accepts the display names as well as snake_case and
// camel-cased spellings.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if m, ok := paymentAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
}

type Payment struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Amount    decimal.Decimal
	PaidAt    time.Time
	Method    PaymentMethod
}
