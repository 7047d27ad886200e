package renderer

import (
	"fmt"

	"github.com/etnz/finance"
)

// Transaction renders a one line confirmation of a transaction posted on an account.
func Transaction(account string, tx finance.Transaction, currency string) string {
	amount := NewAmount(tx.Amount, currency).SignedString()
	var s string
	switch tx.Type {
	case finance.Income:
		s = fmt.Sprintf("Recorded income of %s on %s", amount, account)
	case finance.Expense:
		s = fmt.Sprintf("Recorded expense of %s on %s", amount, account)
	default:
		s = fmt.Sprintf("Recorded %s of %s on %s", tx.Type, amount, account)
	}
	if tx.Description != "" {
		s += fmt.Sprintf(" (%s)", tx.Description)
	}
	return s
}
