package renderer

import (
	"strings"

	"github.com/etnz/finance"
)

// AccountSummary is the view of an account summary.
type AccountSummary struct {
	Name         string
	Balance      Amount
	Transactions []TransactionLine
}

// TransactionLine is a row of the transactions table of an account.
type TransactionLine struct {
	Index       int
	Type        finance.TransactionType
	Amount      Amount
	Description string // escaped for a table cell
}

// LedgerSummary is the view of all the accounts of a ledger.
type LedgerSummary struct {
	Accounts []AccountSummary
	Total    Amount
}

// NewAccountSummary creates the view of an account summary.
func NewAccountSummary(s finance.Summary, currency string) AccountSummary {
	v := AccountSummary{
		Name:         s.Name,
		Balance:      NewAmount(s.Balance, currency),
		Transactions: make([]TransactionLine, 0, len(s.Transactions)),
	}
	for i, tx := range s.Transactions {
		v.Transactions = append(v.Transactions, TransactionLine{
			Index:       i + 1,
			Type:        tx.Type,
			Amount:      NewAmount(tx.Amount, currency),
			Description: cell(tx.Description),
		})
	}
	return v
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
