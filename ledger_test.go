package finance

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestLedger_Scenario(t *testing.T) {
	l := NewLedger()
	if err := l.CreateAccount("checking"); err != nil {
		t.Fatalf("CreateAccount() unexpected error: %v", err)
	}
	if _, err := l.PostTransaction("checking", D("500"), "income", "paycheck"); err != nil {
		t.Fatalf("PostTransaction(income) unexpected error: %v", err)
	}
	if _, err := l.PostTransaction("checking", D("200"), "expense", "rent"); err != nil {
		t.Fatalf("PostTransaction(expense) unexpected error: %v", err)
	}

	balance, err := l.Balance("checking")
	if err != nil {
		t.Fatalf("Balance() unexpected error: %v", err)
	}
	if !balance.Equal(D("300")) {
		t.Errorf("Balance() = %s, want 300", balance)
	}

	summary, err := l.Summary("checking")
	if err != nil {
		t.Fatalf("Summary() unexpected error: %v", err)
	}
	want := Summary{
		Name:    "checking",
		Balance: D("300"),
		Transactions: []Transaction{
			{Amount: D("500"), Type: Income, Description: "paycheck"},
			{Amount: D("-200"), Type: Expense, Description: "rent"},
		},
	}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Errorf("Summary() mismatch (-want +got):\n%s", diff)
	}
}

func TestLedger_BalanceIsSumOfTransactions(t *testing.T) {
	posts := []struct {
		amount string
		typ    string
	}{
		{"100", "income"},
		{"25.30", "expense"},
		{"0.70", "Expense"},
		{"1000", "INCOME"},
		{"-5", "expense"},
		{"12.345", "income"},
	}

	l := NewLedger()
	if err := l.CreateAccount("savings"); err != nil {
		t.Fatal(err)
	}
	sum := decimal.Zero
	for _, p := range posts {
		tx, err := l.PostTransaction("savings", D(p.amount), p.typ, "")
		if err != nil {
			t.Fatalf("PostTransaction(%s, %s) unexpected error: %v", p.amount, p.typ, err)
		}
		sum = sum.Add(tx.Amount)

		got, err := l.Balance("savings")
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(sum) {
			t.Errorf("after %s %s: Balance() = %s, want %s", p.typ, p.amount, got, sum)
		}
	}

	// 100 - 25.30 - 0.70 + 1000 + 5 + 12.345
	if want := D("1091.345"); !sum.Equal(want) {
		t.Errorf("sum of signed amounts = %s, want %s", sum, want)
	}
}

func TestLedger_CreateAccount(t *testing.T) {
	l := NewLedger()
	if err := l.CreateAccount("checking"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PostTransaction("checking", D("42"), "income", ""); err != nil {
		t.Fatal(err)
	}

	t.Run("duplicate leaves the first account untouched", func(t *testing.T) {
		err := l.CreateAccount("checking")
		if !errors.Is(err, ErrAlreadyExists) {
			t.Fatalf("CreateAccount() error = %v, want %v", err, ErrAlreadyExists)
		}
		s, err := l.Summary("checking")
		if err != nil {
			t.Fatal(err)
		}
		if !s.Balance.Equal(D("42")) || len(s.Transactions) != 1 {
			t.Errorf("account changed after duplicate creation: %+v", s)
		}
		if l.Len() != 1 {
			t.Errorf("Len() = %d, want 1", l.Len())
		}
	})

	t.Run("name is trimmed", func(t *testing.T) {
		err := l.CreateAccount("  checking ")
		if !errors.Is(err, ErrAlreadyExists) {
			t.Errorf("CreateAccount() error = %v, want %v", err, ErrAlreadyExists)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		err := l.CreateAccount("   ")
		if !errors.Is(err, ErrInvalidAccountName) {
			t.Errorf("CreateAccount() error = %v, want %v", err, ErrInvalidAccountName)
		}
	})
}

func TestLedger_PostTransaction_Errors(t *testing.T) {
	l := NewLedger()
	if err := l.CreateAccount("checking"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PostTransaction("checking", D("10"), "income", "seed"); err != nil {
		t.Fatal(err)
	}

	t.Run("invalid type leaves the account unchanged", func(t *testing.T) {
		_, err := l.PostTransaction("checking", D("99"), "transfer", "")
		if !errors.Is(err, ErrInvalidTransactionType) {
			t.Fatalf("PostTransaction() error = %v, want %v", err, ErrInvalidTransactionType)
		}
		s, _ := l.Summary("checking")
		if !s.Balance.Equal(D("10")) || len(s.Transactions) != 1 {
			t.Errorf("account changed after invalid transaction: %+v", s)
		}
	})

	t.Run("unknown account is not created", func(t *testing.T) {
		_, err := l.PostTransaction("ghost", D("1"), "income", "")
		if !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("PostTransaction() error = %v, want %v", err, ErrAccountNotFound)
		}
		if _, err := l.Balance("ghost"); !errors.Is(err, ErrAccountNotFound) {
			t.Errorf("Balance(ghost) error = %v, want %v", err, ErrAccountNotFound)
		}
		if l.Len() != 1 {
			t.Errorf("Len() = %d, want 1", l.Len())
		}
	})

	t.Run("unknown account wins over invalid type", func(t *testing.T) {
		_, err := l.PostTransaction("ghost", D("1"), "transfer", "")
		if !errors.Is(err, ErrAccountNotFound) {
			t.Errorf("PostTransaction() error = %v, want %v", err, ErrAccountNotFound)
		}
	})
}

func TestLedger_NegativeExpenseIncreasesBalance(t *testing.T) {
	l := NewLedger()
	if err := l.CreateAccount("wallet"); err != nil {
		t.Fatal(err)
	}
	tx, err := l.PostTransaction("wallet", D("-30"), "expense", "refund entered as expense")
	if err != nil {
		t.Fatal(err)
	}
	if !tx.Amount.Equal(D("30")) {
		t.Errorf("recorded amount = %s, want 30", tx.Amount)
	}
	if got, _ := l.Balance("wallet"); !got.Equal(D("30")) {
		t.Errorf("Balance() = %s, want 30", got)
	}
}

func TestLedger_TotalBalance(t *testing.T) {
	l := NewLedger()
	if got := l.TotalBalance(); !got.IsZero() {
		t.Errorf("TotalBalance() on empty ledger = %s, want 0", got)
	}

	for _, name := range []string{"A", "B"} {
		if err := l.CreateAccount(name); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := l.PostTransaction("A", D("100"), "income", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PostTransaction("B", D("30"), "expense", ""); err != nil {
		t.Fatal(err)
	}
	if got := l.TotalBalance(); !got.Equal(D("70")) {
		t.Errorf("TotalBalance() = %s, want 70", got)
	}
}

func TestLedger_SummariesInCreationOrder(t *testing.T) {
	l := NewLedger()
	names := []string{"zeta", "alpha", "mike"}
	for _, name := range names {
		if err := l.CreateAccount(name); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	for _, s := range l.Summaries() {
		got = append(got, s.Name)
	}
	if diff := cmp.Diff(names, got); diff != "" {
		t.Errorf("Summaries() order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(names, l.Accounts()); diff != "" {
		t.Errorf("Accounts() mismatch (-want +got):\n%s", diff)
	}
	if _, err := l.Summary("nope"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Summary(nope) error = %v, want %v", err, ErrAccountNotFound)
	}
}

func TestLedger_SummaryIsACopy(t *testing.T) {
	l := NewLedger()
	if err := l.CreateAccount("checking"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PostTransaction("checking", D("1"), "income", "original"); err != nil {
		t.Fatal(err)
	}
	s, _ := l.Summary("checking")
	s.Transactions[0].Description = "tampered"

	again, _ := l.Summary("checking")
	if again.Transactions[0].Description != "original" {
		t.Errorf("ledger transaction was modified through a summary: %q", again.Transactions[0].Description)
	}
}

func TestLedger_WriteThrough(t *testing.T) {
	store := &memStore{}
	l, err := Open(store)
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}

	if err := l.CreateAccount("checking"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PostTransaction("checking", D("500"), "income", "paycheck"); err != nil {
		t.Fatal(err)
	}
	// failures do not save.
	l.CreateAccount("checking")
	l.PostTransaction("checking", D("1"), "gift", "")

	if store.saves != 2 {
		t.Errorf("store saved %d times, want 2", store.saves)
	}
	if !store.state.Equal(l.State()) {
		t.Errorf("saved state differs from the ledger state:\n%+v\n%+v", store.state, l.State())
	}

	reopened, err := Open(store)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := reopened.Balance("checking"); !got.Equal(D("500")) {
		t.Errorf("reopened Balance() = %s, want 500", got)
	}
}

func TestLedger_RollbackOnSaveFailure(t *testing.T) {
	store := &memStore{}
	l, err := Open(store)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.CreateAccount("checking"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PostTransaction("checking", D("100"), "income", ""); err != nil {
		t.Fatal(err)
	}
	before := l.State()

	store.err = errDiskFull

	if err := l.CreateAccount("savings"); !errors.Is(err, ErrIO) || !errors.Is(err, errDiskFull) {
		t.Errorf("CreateAccount() error = %v, want %v wrapping %v", err, ErrIO, errDiskFull)
	}
	if _, err := l.PostTransaction("checking", D("40"), "expense", ""); !errors.Is(err, ErrIO) {
		t.Errorf("PostTransaction() error = %v, want %v", err, ErrIO)
	}
	if !before.Equal(l.State()) {
		t.Errorf("ledger changed after failed saves:\n got %+v\nwant %+v", l.State(), before)
	}

	// the ledger is still usable once the store recovers.
	store.err = nil
	if _, err := l.PostTransaction("checking", D("40"), "expense", ""); err != nil {
		t.Fatal(err)
	}
	if got, _ := l.Balance("checking"); !got.Equal(D("60")) {
		t.Errorf("Balance() = %s, want 60", got)
	}
}

func TestFromState_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		state *State
	}{
		{
			name: "duplicate names",
			state: &State{Accounts: []AccountState{
				{Name: "a", Balance: D("0")},
				{Name: "a", Balance: D("0")},
			}},
		},
		{
			name: "balance mismatch",
			state: &State{Accounts: []AccountState{
				{Name: "a", Balance: D("10"), Transactions: []Transaction{{Amount: D("5"), Type: Income}}},
			}},
		},
		{
			name: "unknown type",
			state: &State{Accounts: []AccountState{
				{Name: "a", Balance: D("5"), Transactions: []Transaction{{Amount: D("5"), Type: "gift"}}},
			}},
		},
		{
			name:  "empty name",
			state: &State{Accounts: []AccountState{{Name: "", Balance: D("0")}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromState(tc.state); !errors.Is(err, ErrCorruptState) {
				t.Errorf("FromState() error = %v, want %v", err, ErrCorruptState)
			}
		})
	}
}
