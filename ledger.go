package finance

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Store is the boundary between a Ledger and durable storage.
type Store interface {
	// Load returns the persisted state, or an empty state if nothing was persisted yet.
	Load() (*State, error)
	// Save persists the state.
	Save(*State) error
}

// account is a named balance with its transaction history.
type account struct {
	name         string
	balance      decimal.Decimal // running total of transactions amounts
	transactions []Transaction
}

// Summary describes an account for display.
type Summary struct {
	Name         string
	Balance      decimal.Decimal
	Transactions []Transaction
}

// Ledger represents the set of accounts managed by the user.
//
// In a Ledger accounts are always in creation order, and each account balance is
// the sum of its transactions amounts.
//
// When bound to a Store, every mutation is saved before returning (write-through).
type Ledger struct {
	accounts map[string]*account // index accounts by name
	names    []string            // account names in creation order
	store    Store
}

// NewLedger creates an empty ledger, not bound to any store.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[string]*account),
	}
}

// Open loads the ledger from the store and binds it to the store so that
// every mutation is saved.
func Open(store Store) (*Ledger, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	l, err := FromState(state)
	if err != nil {
		return nil, err
	}
	l.store = store
	return l, nil
}

// FromState creates an unbound ledger from a state, after validating it.
func FromState(s *State) (*Ledger, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	l := NewLedger()
	for _, a := range s.Accounts {
		l.accounts[a.Name] = &account{
			name:         a.Name,
			balance:      a.Balance,
			transactions: slices.Clone(a.Transactions),
		}
		l.names = append(l.names, a.Name)
	}
	return l, nil
}

// State returns a snapshot of the ledger.
func (l *Ledger) State() *State {
	s := &State{Accounts: make([]AccountState, 0, len(l.names))}
	for _, name := range l.names {
		a := l.accounts[name]
		s.Accounts = append(s.Accounts, AccountState{
			Name:         a.name,
			Balance:      a.balance,
			Transactions: slices.Clone(a.transactions),
		})
	}
	return s
}

// Len returns the number of accounts.
func (l *Ledger) Len() int { return len(l.names) }

// Accounts returns account names in creation order.
func (l *Ledger) Accounts() []string { return slices.Clone(l.names) }

// CreateAccount creates an empty account.
//
// The name is trimmed of surrounding spaces. It fails with ErrAlreadyExists if
// the name is taken.
func (l *Ledger) CreateAccount(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: the name cannot be empty", ErrInvalidAccountName)
	}
	if _, exists := l.accounts[name]; exists {
		return fmt.Errorf("cannot create %q: %w", name, ErrAlreadyExists)
	}

	l.accounts[name] = &account{name: name, balance: decimal.Zero}
	l.names = append(l.names, name)

	if err := l.save(); err != nil {
		// keep memory in sync with the storage.
		delete(l.accounts, name)
		l.names = l.names[:len(l.names)-1]
		return err
	}
	return nil
}

// PostTransaction records a transaction on an account.
//
// Income keeps the amount as given, expense records its opposite. Type is
// parsed ignoring case.
// It fails with ErrAccountNotFound or ErrInvalidTransactionType, in which case
// the account is left unchanged.
func (l *Ledger) PostTransaction(name string, amount decimal.Decimal, typ string, description string) (Transaction, error) {
	a, err := l.account(name)
	if err != nil {
		return Transaction{}, err
	}
	t, err := ParseTransactionType(typ)
	if err != nil {
		return Transaction{}, err
	}

	tx := NewTransaction(amount, t, description)
	previous, n := a.balance, len(a.transactions)
	a.balance = a.balance.Add(tx.Amount)
	a.transactions = append(a.transactions, tx)

	if err := l.save(); err != nil {
		a.balance, a.transactions = previous, a.transactions[:n]
		return Transaction{}, err
	}
	return tx, nil
}

// Balance returns the current balance of an account.
func (l *Ledger) Balance(name string) (decimal.Decimal, error) {
	a, err := l.account(name)
	if err != nil {
		return decimal.Zero, err
	}
	return a.balance, nil
}

// TotalBalance returns the sum of all accounts balances.
func (l *Ledger) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.accounts {
		total = total.Add(a.balance)
	}
	return total
}

// Summary returns the balance and the transactions of an account.
func (l *Ledger) Summary(name string) (Summary, error) {
	a, err := l.account(name)
	if err != nil {
		return Summary{}, err
	}
	return a.summary(), nil
}

// Summaries returns the summary of every account, in creation order.
func (l *Ledger) Summaries() []Summary {
	summaries := make([]Summary, 0, len(l.names))
	for _, name := range l.names {
		summaries = append(summaries, l.accounts[name].summary())
	}
	return summaries
}

func (a *account) summary() Summary {
	return Summary{
		Name:         a.name,
		Balance:      a.balance,
		Transactions: slices.Clone(a.transactions),
	}
}

func (l *Ledger) account(name string) (*account, error) {
	a, ok := l.accounts[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrAccountNotFound)
	}
	return a, nil
}

// save writes the ledger through to its store, if any.
func (l *Ledger) save() error {
	if l.store == nil {
		return nil
	}
	err := l.store.Save(l.State())
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrIO) {
		err = fmt.Errorf("%w: %w", ErrIO, err)
	}
	return fmt.Errorf("could not save ledger: %w", err)
}
