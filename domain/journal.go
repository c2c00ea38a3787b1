package domain

import (
	"fmt"

	"simple-bank/events"
)

// TransactionEvent maps a recorded transaction to its journal event.
func TransactionEvent(aggregateID string, version int, t Transaction) events.Event {
	if t.Amount.IsNegative() {
		return events.WithdrawalMadeEvent{
			BaseEvent:     events.NewBaseEvent(aggregateID, version, events.WithdrawalMadeType, t.Timestamp),
			TransactionID: t.ID,
			Amount:        t.Amount.Neg().Decimal(),
			Balance:       t.Balance.Decimal(),
		}
	}
	return events.DepositMadeEvent{
		BaseEvent:     events.NewBaseEvent(aggregateID, version, events.DepositMadeType, t.Timestamp),
		TransactionID: t.ID,
		Amount:        t.Amount.Decimal(),
		Balance:       t.Balance.Decimal(),
	}
}

// HistoryFromEvents rebuilds a transaction list from a journal stream.
func HistoryFromEvents(stream []events.Event) (TransactionList, error) {
	txs := make([]Transaction, 0, len(stream))
	for _, event := range stream {
		t, err := transactionFromEvent(event)
		if err != nil {
			return TransactionList{}, err
		}
		txs = append(txs, t)
	}
	return TransactionList{items: txs}, nil
}

func transactionFromEvent(event events.Event) (Transaction, error) {
	base := event.GetBase()
	switch e := event.(type) {
	case events.DepositMadeEvent:
		return newTransaction(e.TransactionID, NewMoney(e.Amount), NewMoney(e.Balance), base.Timestamp)
	case events.WithdrawalMadeEvent:
		return newTransaction(e.TransactionID, NewMoney(e.Amount).Neg(), NewMoney(e.Balance), base.Timestamp)
	default:
		return Transaction{}, fmt.Errorf("%w: unknown event type %T (v%d)", ErrCorruptHistory, event, base.Version)
	}
}
