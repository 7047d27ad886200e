// Package finance provides the bookkeeping core of a personal finance ledger.
// It is designed to be local-first: the whole ledger lives in a single,
// human-readable JSON file that can be inspected, versioned and edited by hand.
//
// The core functionalities include:
//   - Account Management: creating named accounts, each holding a running
//     balance and an append-only history of transactions.
//   - Transaction Recording: posting income and expense transactions, stored
//     with a signed amount so that a balance is always the sum of its history.
//   - Reporting: balances, the total balance across accounts, and per-account
//     summaries in account creation order.
//   - Data Persistence: encoding and decoding the ledger state, with schema
//     validation on load, and a write-through file store.
//
// This package serves as the foundational logic for the `fin` command-line
// tool.
package finance
