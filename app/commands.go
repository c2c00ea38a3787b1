package app

import (
	"fmt"
	"strings"

	"simple-bank/domain"
)

// Selector is the single-letter key a user types to pick an operation.
type Selector string

const (
	SelectorDeposit   Selector = "d"
	SelectorWithdraw  Selector = "w"
	SelectorStatement Selector = "p"
	SelectorQuit      Selector = "q"
)

var (
	ErrUnknownSelector = domain.NewDomainError("unknown operation key")
	ErrMissingAmount   = domain.NewDomainError("operation requires an amount")
	ErrJournalMismatch = domain.NewDomainError("journal does not match account")
)

// ParseSelector is case-insensitive and ignores surrounding whitespace.
func ParseSelector(text string) (Selector, error) {
	sel := Selector(strings.ToLower(strings.TrimSpace(text)))
	switch sel {
	case SelectorDeposit, SelectorWithdraw, SelectorStatement, SelectorQuit:
		return sel, nil
	}
	return "", &UnknownSelectorError{Key: strings.TrimSpace(text)}
}

// UnknownSelectorError carries the key that matched no operation.
type UnknownSelectorError struct {
	Key string
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownSelector, e.Key)
}

func (e *UnknownSelectorError) Unwrap() error {
	return ErrUnknownSelector
}

// RequiresAmount reports whether the caller must collect an amount before dispatch.
func (s Selector) RequiresAmount() bool {
	return s == SelectorDeposit || s == SelectorWithdraw
}

// TransactionType is the verb used when prompting for the amount.
func (s Selector) TransactionType() string {
	switch s {
	case SelectorDeposit:
		return "deposit"
	case SelectorWithdraw:
		return "withdraw"
	}
	return ""
}

// Result is what a dispatched operation hands back to the caller. Account is the
// value the caller should hold from now on; Exit asks the caller to end the session.
type Result struct {
	Account domain.BankAccount
	Message string
	Exit    bool
}
