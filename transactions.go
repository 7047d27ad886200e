package finance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType is a typed string identifying the kind of a transaction.
type TransactionType string

// Transaction types, as persisted.
const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a transaction type, ignoring case and
// surrounding spaces.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expense:
		return t, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidTransactionType, s)
	}
}

// signed returns the amount as it is recorded for this type of transaction:
// income keeps the amount as given, expense records its opposite.
//
// The sign of the given amount is not checked, a negative expense therefore
// increases the balance.
func (t TransactionType) signed(amount decimal.Decimal) decimal.Decimal {
	if t == Expense {
		return amount.Neg()
	}
	return amount
}

// Transaction is an immutable record of a signed change to an account balance.
type Transaction struct {
	Amount      decimal.Decimal // Amount is positive for income, negative for expense.
	Type        TransactionType // Type is either Income or Expense.
	Description string          // Description is free text, possibly empty.
}

// NewTransaction creates the transaction recorded when posting amount with type t.
func NewTransaction(amount decimal.Decimal, t TransactionType, description string) Transaction {
	return Transaction{
		Amount:      t.signed(amount),
		Type:        t,
		Description: description,
	}
}

// Equal reports whether both transactions are identical.
func (t Transaction) Equal(u Transaction) bool {
	return t.Amount.Equal(u.Amount) && t.Type == u.Type && t.Description == u.Description
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Fields are always written in the same order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", t.Amount)
	w.Append("type", t.Type)
	w.Append("description", t.Description)
	return w.MarshalJSON()
}
