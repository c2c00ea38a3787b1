package app

import (
	"errors"
	"fmt"

	"simple-bank/domain"
)

const (
	DefaultCurrencySymbol = "$"

	msgDepositSuccess      = "Deposit successful. %s%s has been added to your account."
	msgWithdrawalSuccess   = "Thank you. %s%s has been withdrawn."
	msgInsufficientBalance = "Insufficient balance. Unable to complete withdrawal."
	msgNonPositiveAmount   = "Transaction amount must be positive."
	msgInvalidFormat       = "Invalid number format."
	msgTooManyDecimals     = "Amount can have at most 2 decimal places."
)

// Operation is a pure step from one account value to the next. amount is nil for
// operations that take none.
type Operation func(account domain.BankAccount, amount *domain.Money) (Result, error)

// OperationTable maps each selector to its operation.
type OperationTable map[Selector]Operation

func NewOperationTable(currencySymbol string) OperationTable {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}
	return OperationTable{
		SelectorDeposit:   deposit(currencySymbol),
		SelectorWithdraw:  withdraw(currencySymbol),
		SelectorStatement: printStatement,
		SelectorQuit:      quit,
	}
}

func (t OperationTable) Dispatch(sel Selector, account domain.BankAccount, amount *domain.Money) (Result, error) {
	op, ok := t[sel]
	if !ok {
		return Result{Account: account}, &UnknownSelectorError{Key: string(sel)}
	}
	return op(account, amount)
}

func deposit(symbol string) Operation {
	return func(account domain.BankAccount, amount *domain.Money) (Result, error) {
		if amount == nil {
			return Result{Account: account}, fmt.Errorf("%w: deposit", ErrMissingAmount)
		}
		next, err := account.Deposit(*amount)
		if err != nil {
			return Result{Account: account}, err
		}
		return Result{
			Account: next,
			Message: fmt.Sprintf(msgDepositSuccess, symbol, amount),
		}, nil
	}
}

func withdraw(symbol string) Operation {
	return func(account domain.BankAccount, amount *domain.Money) (Result, error) {
		if amount == nil {
			return Result{Account: account}, fmt.Errorf("%w: withdraw", ErrMissingAmount)
		}
		next, err := account.Withdraw(*amount)
		if err != nil {
			return Result{Account: account}, err
		}
		return Result{
			Account: next,
			Message: fmt.Sprintf(msgWithdrawalSuccess, symbol, amount),
		}, nil
	}
}

func printStatement(account domain.BankAccount, _ *domain.Money) (Result, error) {
	return Result{
		Account: account,
		Message: account.GenerateStatement().Render(),
	}, nil
}

func quit(account domain.BankAccount, _ *domain.Money) (Result, error) {
	return Result{Account: account, Exit: true}, nil
}

// UserMessage turns an operation or input error into the feedback shown to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return msgInsufficientBalance
	case errors.Is(err, domain.ErrInvalidAmount):
		return msgNonPositiveAmount
	case errors.Is(err, domain.ErrInvalidFormat):
		return msgInvalidFormat
	case errors.Is(err, domain.ErrTooManyDecimalPlaces):
		return msgTooManyDecimals
	}
	var unknown *UnknownSelectorError
	if errors.As(err, &unknown) {
		return fmt.Sprintf("The key '%s' is not recognized as a valid key for an operation.", unknown.Key)
	}
	return err.Error()
}
