package finance

import (
	"errors"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a const.
func D(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// memStore is a Store keeping the last saved state in memory.
// When err is set, Save fails with it and the state is not updated.
type memStore struct {
	state *State
	saves int
	err   error
}

func (s *memStore) Load() (*State, error) {
	if s.state == nil {
		return &State{}, nil
	}
	return s.state, nil
}

func (s *memStore) Save(state *State) error {
	if s.err != nil {
		return s.err
	}
	s.saves++
	s.state = state
	return nil
}

var errDiskFull = errors.New("disk full")
