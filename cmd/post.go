package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// postCmd posts a transaction. When fixed is set, the type is not a flag.
type postCmd struct {
	name  string
	fixed finance.TransactionType

	account     string
	typ         string
	description string
}

func (c *postCmd) Name() string { return c.name }
func (c *postCmd) Synopsis() string {
	switch c.fixed {
	case finance.Income:
		return "record an income on an account"
	case finance.Expense:
		return "record an expense on an account"
	default:
		return "record a transaction on an account"
	}
}
func (c *postCmd) Usage() string {
	if c.fixed != "" {
		return fmt.Sprintf(`fin %s -a <account> [-d <description>] <amount>

  Records an %s of <amount> on the account.
  Expenses are recorded with the opposite of the amount.
`, c.name, c.fixed)
	}
	return `fin post -a <account> -t <income|expense> [-d <description>] <amount>

  Records a transaction of <amount> on the account. The type is case insensitive.
  Income keeps the amount as given, expense records its opposite.
`
}

func (c *postCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to record the transaction on.")
	f.StringVar(&c.description, "d", "", "Description of the transaction.")
	if c.fixed == "" {
		f.StringVar(&c.typ, "t", "", "Transaction type: income or expense.")
	}
}

func (c *postCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a flag is required.")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one amount is required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	typ := c.typ
	if c.fixed != "" {
		typ = string(c.fixed)
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.PostTransaction(c.account, amount, typ, c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, finance.ErrInvalidTransactionType) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Transaction(c.account, tx, *currency))
	return subcommands.ExitSuccess
}
