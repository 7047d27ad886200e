package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

const menuText = `
Personal Finance Ledger
1. Create account
2. Add transaction
3. View balance
4. View total balance
5. View account summary
6. View all summaries
7. Exit
Choose an option: `

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive menu" }
func (*menuCmd) Usage() string {
	return `fin menu

  Runs an interactive, numbered menu reading one answer per line.
  Errors are reported and the menu continues until "7" or the end of input.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	if err := Menu(os.Stdin, os.Stdout, ledger, *currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// menu holds the state of an interactive session.
type menu struct {
	in       *bufio.Scanner
	out      io.Writer
	ledger   *finance.Ledger
	currency string
}

// Menu runs the interactive menu on ledger, reading answers from in and
// writing to out, until the exit choice or the end of in.
// Ledger errors are printed and do not stop the menu.
func Menu(in io.Reader, out io.Writer, ledger *finance.Ledger, currency string) error {
	m := &menu{in: bufio.NewScanner(in), out: out, ledger: ledger, currency: currency}
	for {
		choice, ok := m.ask(menuText)
		if !ok {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		switch choice {
		case "1":
			m.createAccount()
		case "2":
			m.postTransaction()
		case "3":
			m.balance()
		case "4":
			fmt.Fprint(m.out, renderer.TotalBalance(m.ledger.TotalBalance(), m.ledger.Len(), m.currency))
		case "5":
			m.summary()
		case "6":
			fmt.Fprint(m.out, renderer.Summaries(m.ledger.Summaries(), m.ledger.TotalBalance(), m.currency))
		case "7":
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintf(m.out, "Invalid choice %q, please enter a number between 1 and 7.\n", choice)
		}
		if err := m.in.Err(); err != nil {
			return err
		}
	}
}

// ask prints the prompt and reads one trimmed line. It returns false at the end of input.
func (m *menu) ask(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) report(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

func (m *menu) createAccount() {
	name, ok := m.ask("Account name: ")
	if !ok {
		return
	}
	if err := m.ledger.CreateAccount(name); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Account %q created.\n", name)
}

func (m *menu) postTransaction() {
	name, ok := m.ask("Account name: ")
	if !ok {
		return
	}
	input, ok := m.ask("Amount: ")
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(input)
	if err != nil {
		m.report(fmt.Errorf("invalid amount %q", input))
		return
	}
	typ, ok := m.ask("Type (income/expense): ")
	if !ok {
		return
	}
	description, ok := m.ask("Description (optional): ")
	if !ok {
		return
	}

	tx, err := m.ledger.PostTransaction(name, amount, typ, description)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintln(m.out, renderer.Transaction(name, tx, m.currency))
}

func (m *menu) balance() {
	name, ok := m.ask("Account name: ")
	if !ok {
		return
	}
	balance, err := m.ledger.Balance(name)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprint(m.out, renderer.Balance(name, balance, m.currency))
}

func (m *menu) summary() {
	name, ok := m.ask("Account name: ")
	if !ok {
		return
	}
	s, err := m.ledger.Summary(name)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprint(m.out, renderer.Summary(s, m.currency))
}
