package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the ledger file" }
func (*queryCmd) Usage() string {
	return `fin query <jsonpath>

  Evaluates a JSONPath expression on the ledger file and prints the result as JSON.
  The ledger is validated first.

Usage Examples:
# balance of the checking account
$ fin query '$.checking.balance'

# descriptions of all expenses
$ fin query '$..transactions[?(@.type=="expense")].description'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is required.")
		return subcommands.ExitUsageError
	}

	result, err := Query(*ledgerFile, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

// Query evaluates a JSONPath expression on the ledger file at path.
// A missing file is queried as an empty ledger.
func Query(path, expr string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: could not read ledger file %q: %w", finance.ErrIO, path, err)
	}
	if _, err := finance.DecodeState(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}

	var doc any = map[string]any{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	result, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return result, nil
}
