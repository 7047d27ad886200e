// Package cmd implements the CLI application to manage a personal finance ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application, in display order.
// A main package registers them and calls Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&createCmd{},
	&postCmd{name: "post"},
	&postCmd{name: "income", fixed: finance.Income},
	&postCmd{name: "expense", fixed: finance.Expense},
	&balanceCmd{},
	&totalCmd{},
	&summaryCmd{},
	&accountsCmd{},
	&queryCmd{},
	&fmtCmd{},
	&menuCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "ledger.json", "Path to the ledger file (JSON format)")
	currency   = flag.String("currency", "", "Currency code used to display amounts (e.g. EUR, USD). Empty displays plain numbers.")
	configFile = flag.String("config", "fin.yaml", "Path to the YAML configuration file")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
	// Verbose enables diagnostic logging.
	Verbose = flag.Bool("v", false, "Enable verbose logging")
)

// LedgerFile returns the path of the ledger file in use.
func LedgerFile() string { return *ledgerFile }

// OpenLedger opens the ledger from the app ledger file, bound to it for write-through.
// A missing file opens an empty ledger.
func OpenLedger() (*finance.Ledger, error) {
	return finance.Open(finance.NewFileStore(*ledgerFile))
}

// printMarkdown prints markdown to stdout, rendered for the terminal unless -plain is set.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
