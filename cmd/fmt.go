package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	dryRun bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fin fmt [-n]

  Validates and formats the ledger file. This command reads all accounts and
  transactions, validates them, and writes them back in a canonical, indented
  JSON form, keeping accounts in their order.

Usage Examples:
# Rewrites the ledger file in-place.
$ fin fmt

# Prints the formatted ledger instead.
$ fin fmt -n
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.dryRun, "n", false, "Print the formatted ledger to stdout instead of rewriting the file.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filename := *ledgerFile
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: no ledger file %q to format.\n", filename)
		return subcommands.ExitSuccess
	}

	store := finance.NewFileStore(filename)
	state, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.dryRun {
		if err := finance.EncodeState(os.Stdout, state); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := store.Save(state); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s.\n", filename)
	return subcommands.ExitSuccess
}
