package domain

import (
	"fmt"
	"time"

	"simple-bank/shared"
)

// BankAccount is an immutable aggregate of a balance and the history that produced it.
// Deposit and Withdraw return a new value; the receiver is never modified, so the
// caller decides which value is current.
type BankAccount struct {
	balance Money
	history TransactionList
	clock   shared.Clock
}

type AccountOption func(*BankAccount)

// WithClock sets the time source stamped on new transactions.
func WithClock(clock shared.Clock) AccountOption {
	return func(a *BankAccount) {
		if clock != nil {
			a.clock = clock
		}
	}
}

func NewBankAccount(opts ...AccountOption) BankAccount {
	a := BankAccount{
		balance: Zero,
		clock:   shared.SystemClock,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// RestoreAccount rebuilds an account from an existing history. Every row must
// chain from the previous balance, otherwise ErrCorruptHistory is returned.
func RestoreAccount(history TransactionList, opts ...AccountOption) (BankAccount, error) {
	a := NewBankAccount(opts...)
	running := Zero
	for i, t := range history.All() {
		if t.Amount.IsZero() {
			return BankAccount{}, fmt.Errorf("%w: row %d has a zero amount", ErrCorruptHistory, i+1)
		}
		running = running.Add(t.Amount)
		if !running.Equal(t.Balance) {
			return BankAccount{}, fmt.Errorf("%w: row %d balance %s, expected %s",
				ErrCorruptHistory, i+1, t.Balance, running)
		}
		if running.IsNegative() {
			return BankAccount{}, fmt.Errorf("%w: row %d: %w", ErrCorruptHistory, i+1, ErrNegativeBalance)
		}
	}
	a.balance = running
	a.history = history
	return a, nil
}

func (a BankAccount) Balance() Money {
	return a.balance
}

func (a BankAccount) History() TransactionList {
	return a.history
}

func (a BankAccount) Deposit(amount Money) (BankAccount, error) {
	if !amount.IsPositive() {
		return a, fmt.Errorf("%w: deposit amount must be positive: %s", ErrInvalidAmount, amount)
	}

	newBalance := a.balance.Add(amount)
	return a.record(amount, newBalance)
}

func (a BankAccount) Withdraw(amount Money) (BankAccount, error) {
	sufficient, err := a.IsBalanceSufficient(amount)
	if err != nil {
		return a, err
	}
	if !sufficient {
		return a, fmt.Errorf("%w: requested %s, available %s", ErrInsufficientBalance, amount, a.balance)
	}

	newBalance := a.balance.Sub(amount)
	return a.record(amount.Neg(), newBalance)
}

func (a BankAccount) IsBalanceSufficient(amount Money) (bool, error) {
	if !amount.IsPositive() {
		return false, fmt.Errorf("%w: withdrawal amount must be positive: %s", ErrInvalidAmount, amount)
	}
	return !a.balance.LessThan(amount), nil
}

func (a BankAccount) GenerateStatement() AccountStatement {
	return NewAccountStatement(a.history)
}

func (a BankAccount) record(amount, newBalance Money) (BankAccount, error) {
	t, err := NewTransaction(amount, newBalance, a.now())
	if err != nil {
		return a, err
	}
	return BankAccount{
		balance: newBalance,
		history: a.history.Add(t),
		clock:   a.clock,
	}, nil
}

func (a BankAccount) now() time.Time {
	if a.clock == nil {
		return shared.SystemClock()
	}
	return a.clock()
}
