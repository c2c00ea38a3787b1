package domain

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Transaction records one balance change and the balance it left behind.
type Transaction struct {
	ID        uuid.UUID
	Amount    Money
	Balance   Money
	Timestamp time.Time
}

func NewTransaction(amount, balance Money, at time.Time) (Transaction, error) {
	return newTransaction(uuid.New(), amount, balance, at)
}

func newTransaction(id uuid.UUID, amount, balance Money, at time.Time) (Transaction, error) {
	if amount.IsZero() {
		return Transaction{}, ErrZeroTransactionAmount
	}
	if balance.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: %s", ErrNegativeBalance, balance)
	}
	return Transaction{
		ID:        id,
		Amount:    amount,
		Balance:   balance,
		Timestamp: at,
	}, nil
}

// TransactionList is an append-only, chronologically ordered history.
// Add never touches the receiver, so older lists stay valid snapshots.
type TransactionList struct {
	items []Transaction
}

func NewTransactionList(txs ...Transaction) TransactionList {
	return TransactionList{items: slices.Clone(txs)}
}

// Add returns a new list with t appended. The receiver is clipped first so the
// append always lands in a fresh array and sibling lists never see each other.
func (l TransactionList) Add(t Transaction) TransactionList {
	return TransactionList{items: append(slices.Clip(l.items), t)}
}

func (l TransactionList) Len() int {
	return len(l.items)
}

func (l TransactionList) IsEmpty() bool {
	return len(l.items) == 0
}

func (l TransactionList) At(i int) Transaction {
	return l.items[i]
}

func (l TransactionList) Last() (Transaction, bool) {
	if len(l.items) == 0 {
		return Transaction{}, false
	}
	return l.items[len(l.items)-1], true
}

func (l TransactionList) All() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, t := range l.items {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Slice returns a copy of the transactions.
func (l TransactionList) Slice() []Transaction {
	return slices.Clone(l.items)
}
