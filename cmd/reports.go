package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the balance of accounts" }
func (*balanceCmd) Usage() string {
	return `fin balance [<name>...]

  Displays the balance of each named account.
  Without any name, displays the total balance of all accounts.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return (&totalCmd{}).Execute(ctx, f, args...)
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	for _, name := range f.Args() {
		balance, err := ledger.Balance(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		b.WriteString(renderer.Balance(name, balance, *currency))
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type totalCmd struct{}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "display the total balance of all accounts" }
func (*totalCmd) Usage() string {
	return `fin total

  Displays the sum of the balances of all accounts.
`
}

func (*totalCmd) SetFlags(f *flag.FlagSet) {}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TotalBalance(ledger.TotalBalance(), ledger.Len(), *currency))
	return subcommands.ExitSuccess
}

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display account summaries" }
func (*summaryCmd) Usage() string {
	return `fin summary [<name>...]

  Displays the balance and the transactions of each named account.
  Without any name, displays every account in creation order, and the total balance.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.Summaries(ledger.Summaries(), ledger.TotalBalance(), *currency))
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	for _, name := range f.Args() {
		s, err := ledger.Summary(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		b.WriteString(renderer.Summary(s, *currency))
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list account names" }
func (*accountsCmd) Usage() string {
	return `fin accounts

  Lists account names in creation order.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Accounts(ledger.Accounts()))
	return subcommands.ExitSuccess
}
