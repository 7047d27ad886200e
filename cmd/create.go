package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type createCmd struct{}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create one or more accounts" }
func (*createCmd) Usage() string {
	return `fin create <name>...

  Creates empty accounts. Account names are unique, creating an existing
  account is an error and leaves it untouched.
`
}

func (*createCmd) SetFlags(f *flag.FlagSet) {}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one account name is required.")
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, name := range f.Args() {
		if err := ledger.CreateAccount(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Account %q created.\n", name)
	}
	return status
}
