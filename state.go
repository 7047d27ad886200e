package finance

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// State is the serializable snapshot of a Ledger.
//
// Accounts are kept in creation order, which is also the order they are
// persisted in.
type State struct {
	Accounts []AccountState
}

// AccountState is the serializable snapshot of an account.
type AccountState struct {
	Name         string
	Balance      decimal.Decimal
	Transactions []Transaction
}

// MarshalJSON implements the json.Marshaler interface for State.
// The state is an object keyed by account name, in creation order.
func (s State) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, a := range s.Accounts {
		w.Append(a.Name, a)
	}
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for AccountState.
// The name is not part of the object, it is the key in the enclosing State.
func (a AccountState) MarshalJSON() ([]byte, error) {
	txs := a.Transactions
	if txs == nil {
		txs = []Transaction{}
	}
	var w jsonObjectWriter
	w.Append("balance", a.Balance)
	w.Append("transactions", txs)
	return w.MarshalJSON()
}

// Validate checks the invariants of a state: account names are unique and not
// empty, transaction types are known, and each balance equals the sum of its
// transaction amounts.
//
// All the issues found are reported, wrapped in ErrCorruptState.
func (s *State) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(s.Accounts))
	for _, a := range s.Accounts {
		if a.Name == "" {
			errs = append(errs, errors.New("empty account name"))
		}
		if seen[a.Name] {
			errs = append(errs, fmt.Errorf("account %q: duplicated", a.Name))
		}
		seen[a.Name] = true

		sum := decimal.Zero
		for i, tx := range a.Transactions {
			if tx.Type != Income && tx.Type != Expense {
				errs = append(errs, fmt.Errorf("account %q: transaction #%d: unknown type %q", a.Name, i+1, tx.Type))
			}
			sum = sum.Add(tx.Amount)
		}
		if !sum.Equal(a.Balance) {
			errs = append(errs, fmt.Errorf("account %q: balance %s does not match the sum of its transactions %s", a.Name, a.Balance, sum))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrCorruptState, errors.Join(errs...))
	}
	return nil
}

// Equal reports whether both states hold the same accounts, in the same order,
// with the same balances and transactions.
func (s *State) Equal(t *State) bool {
	return slices.EqualFunc(s.Accounts, t.Accounts, func(a, b AccountState) bool {
		return a.Name == b.Name &&
			a.Balance.Equal(b.Balance) &&
			slices.EqualFunc(a.Transactions, b.Transactions, Transaction.Equal)
	})
}
