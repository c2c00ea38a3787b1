package events

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositMadeEvent journals an accepted deposit. Amount is positive.
type DepositMadeEvent struct {
	BaseEvent
	TransactionID uuid.UUID       `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
}

// WithdrawalMadeEvent journals an accepted withdrawal. Amount is the positive
// quantity taken out; the transaction row records it negated.
type WithdrawalMadeEvent struct {
	BaseEvent
	TransactionID uuid.UUID       `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
}
