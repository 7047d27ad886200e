package finance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Fields of the persisted objects.
var (
	accountFields     = []string{"balance", "transactions"}
	transactionFields = []string{"amount", "type", "description"}
)

// DecodeState decodes a ledger state from r and validates it.
//
// The document is a single JSON object mapping account names to accounts.
// Accounts are returned in document order. An empty document is an empty state.
// Any deviation from the expected structure is reported as ErrCorruptState.
func DecodeState(r io.Reader) (*State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading from input: %w", ErrIO, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &State{}, nil
	}

	state, err := decodeAccounts(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return state, nil
}

// decodeAccounts walks the top level object token by token, so that the
// order of the keys is preserved.
func decodeAccounts(data []byte) (*State, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected an object, got %v", tok)
	}

	state := &State{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an account name, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("account %q: %w", name, err)
		}
		account, err := decodeAccount(raw)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", name, err)
		}
		account.Name = name
		state.Accounts = append(state.Accounts, account)
	}

	// consume the closing brace and make sure nothing follows.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the ledger object")
	}
	return state, nil
}

func decodeAccount(raw json.RawMessage) (AccountState, error) {
	doc, err := decodeObject(raw, accountFields)
	if err != nil {
		return AccountState{}, err
	}

	balance, err := decodeNumber("balance", doc["balance"])
	if err != nil {
		return AccountState{}, err
	}
	list := doc["transactions"]
	if len(list) == 0 || list[0] != '[' {
		return AccountState{}, errors.New(`"transactions" must be a list`)
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(list, &raws); err != nil {
		return AccountState{}, err
	}

	txs := make([]Transaction, 0, len(raws))
	for i, raw := range raws {
		tx, err := decodeTransaction(raw)
		if err != nil {
			return AccountState{}, fmt.Errorf("transaction #%d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}
	return AccountState{Balance: balance, Transactions: txs}, nil
}

func decodeTransaction(raw json.RawMessage) (Transaction, error) {
	doc, err := decodeObject(raw, transactionFields)
	if err != nil {
		return Transaction{}, err
	}
	amount, err := decodeNumber("amount", doc["amount"])
	if err != nil {
		return Transaction{}, err
	}
	typ, err := decodeString("type", doc["type"])
	if err != nil {
		return Transaction{}, err
	}
	description, err := decodeString("description", doc["description"])
	if err != nil {
		return Transaction{}, err
	}

	// The persisted type is exact, unlike user input.
	t := TransactionType(typ)
	if t != Income && t != Expense {
		return Transaction{}, fmt.Errorf("%q is not a transaction type", typ)
	}
	return Transaction{Amount: amount, Type: t, Description: description}, nil
}

// decodeObject splits a JSON object into its raw field values.
// Fields not listed in known and fields appearing twice are rejected.
func decodeObject(raw json.RawMessage, known []string) (map[string]json.RawMessage, error) {
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errors.New("expected an object")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage, len(known))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a field name, got %v", tok)
		}
		if !slices.Contains(known, key) {
			return nil, fmt.Errorf("unknown field %q", key)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("duplicated field %q", key)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		fields[key] = value
	}
	return fields, nil
}

func decodeNumber(field string, raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, fmt.Errorf("missing %q", field)
	}
	var n json.Number
	if raw[0] == '"' || json.Unmarshal(raw, &n) != nil {
		return decimal.Zero, fmt.Errorf("%q must be a number, got %s", field, raw)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", field, err)
	}
	return d, nil
}

func decodeString(field string, raw json.RawMessage) (string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("missing %q", field)
	}
	var s string
	if raw[0] != '"' || json.Unmarshal(raw, &s) != nil {
		return "", fmt.Errorf("%q must be a string, got %s", field, raw)
	}
	return s, nil
}

// EncodeState writes the state to w as an indented JSON document, followed by
// a newline. Accounts are written in creation order.
func EncodeState(w io.Writer, s *State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger state: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("failed to indent ledger state: %w", err)
	}
	out.WriteByte('\n')

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("%w: failed to write ledger state: %w", ErrIO, err)
	}
	return nil
}
