package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

// useLedgerFile points the app to a temporary ledger file with the given content,
// for the duration of the test. An empty content means no file.
func useLedgerFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write ledger file: %v", err)
		}
	}

	oldLedgerFile, oldPlain := *ledgerFile, *plain
	*ledgerFile, *plain = path, true
	t.Cleanup(func() { *ledgerFile, *plain = oldLedgerFile, oldPlain })
	return path
}

// execute runs a subcommand with args, as the commander would.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

// reload reads the ledger file back.
func reload(t *testing.T) *finance.Ledger {
	t.Helper()
	l, err := OpenLedger()
	if err != nil {
		t.Fatalf("Failed to reopen ledger: %v", err)
	}
	return l
}
