package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	NoTransactionsMessage = "No Transactions Found!"

	// StatementDateLayout renders as e.g. "7 Mar 2024 2:05:09PM".
	StatementDateLayout = "2 Jan 2006 3:04:05PM"

	dateHeader    = "Date"
	amountHeader  = "Amount"
	balanceHeader = "Balance"

	minDateWidth    = 4
	minAmountWidth  = 10
	minBalanceWidth = 10
	cellPadding     = 2
)

// AccountStatement is a read-only table view over a history snapshot.
// Column widths are fixed at construction from the full set of rows.
type AccountStatement struct {
	history      TransactionList
	dateWidth    int
	amountWidth  int
	balanceWidth int
}

func NewAccountStatement(history TransactionList) AccountStatement {
	s := AccountStatement{
		history:      history,
		dateWidth:    max(minDateWidth, width(dateHeader)+cellPadding),
		amountWidth:  max(minAmountWidth, width(amountHeader)+cellPadding),
		balanceWidth: max(minBalanceWidth, width(balanceHeader)+cellPadding),
	}
	for _, t := range history.All() {
		date, amount, balance := statementCells(t)
		s.dateWidth = max(s.dateWidth, width(date)+cellPadding)
		s.amountWidth = max(s.amountWidth, width(amount)+cellPadding)
		s.balanceWidth = max(s.balanceWidth, width(balance)+cellPadding)
	}
	return s
}

// Render returns the header plus one line per transaction, oldest first,
// or NoTransactionsMessage when there is nothing to show.
func (s AccountStatement) Render() string {
	if s.history.IsEmpty() {
		return NoTransactionsMessage
	}

	var sb strings.Builder
	sb.WriteString(s.row(dateHeader, amountHeader, balanceHeader))
	for _, t := range s.history.All() {
		sb.WriteByte('\n')
		sb.WriteString(s.row(statementCells(t)))
	}
	return sb.String()
}

func (s AccountStatement) String() string {
	return s.Render()
}

func (s AccountStatement) row(date, amount, balance string) string {
	return strings.Join([]string{
		center(date, s.dateWidth),
		center(amount, s.amountWidth),
		center(balance, s.balanceWidth),
	}, "|")
}

func statementCells(t Transaction) (date, amount, balance string) {
	return t.Timestamp.Format(StatementDateLayout), t.Amount.String(), t.Balance.String()
}

// center pads str to w runes; an odd leftover space goes on the left.
func center(str string, w int) string {
	slack := w - width(str)
	if slack <= 0 {
		return str
	}
	left := (slack + 1) / 2
	right := slack / 2
	return strings.Repeat(" ", left) + str + strings.Repeat(" ", right)
}

func width(str string) int {
	return utf8.RuneCountInString(str)
}
