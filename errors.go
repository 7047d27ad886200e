package finance

import "errors"

// Errors returned by the Ledger and its Store. Callers test them with errors.Is,
// they are always wrapped with some context.
var (
	// ErrAlreadyExists is returned when creating an account whose name is taken.
	ErrAlreadyExists = errors.New("account already exists")
	// ErrAccountNotFound is returned when an operation names an unknown account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAccountName is returned for an empty account name.
	ErrInvalidAccountName = errors.New("invalid account name")
	// ErrInvalidTransactionType is returned for a type other than income or expense.
	ErrInvalidTransactionType = errors.New("transaction type must be 'income' or 'expense'")
	// ErrCorruptState is returned when persisted state does not match the expected schema.
	ErrCorruptState = errors.New("corrupt ledger state")
	// ErrIO is returned when persisted state cannot be read or written.
	ErrIO = errors.New("ledger i/o error")
)
