package domain

import "fmt"

type DomainError struct {
	message string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

var (
	ErrInvalidAmount       = NewDomainError("invalid amount")
	ErrInsufficientBalance = NewDomainError("insufficient balance")

	ErrInvalidFormat        = NewDomainError("invalid number format")
	ErrTooManyDecimalPlaces = NewDomainError("too many decimal places")

	ErrZeroTransactionAmount = NewDomainError("transaction amount must be non-zero")
	ErrNegativeBalance       = NewDomainError("account balance must be non-negative")
	ErrCorruptHistory        = NewDomainError("transaction history is inconsistent")
)
