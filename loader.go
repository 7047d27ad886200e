package finance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore is a Store persisting the ledger state in a single JSON file.
//
// The file is opened and closed on each call, no handle is retained.
type FileStore struct {
	path string
}

// NewFileStore returns a store for the file at path. The file does not need to exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the path of the ledger file.
func (s *FileStore) Path() string { return s.path }

// Load opens, decodes, and validates the ledger file.
// A missing file is an empty state.
func (s *FileStore) Load() (*State, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not open ledger file %q: %w", ErrIO, s.path, err)
	}
	defer f.Close()

	state, err := DecodeState(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.path, err)
	}
	return state, nil
}

// Save writes the state to a temporary file next to the ledger file, then
// renames it over the ledger file, so that a failed save never leaves a
// truncated ledger behind.
func (s *FileStore) Save(state *State) error {
	dir := filepath.Dir(s.path)

	// Ensure the directory for the ledger file exists.
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: could not create directory for ledger %q: %w", ErrIO, s.path, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(s.path)+"."+uuid.NewString())
	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("%w: error opening ledger file %q for writing: %w", ErrIO, tmp, err)
	}

	err = EncodeState(file, state)
	if err == nil {
		err = file.Sync()
	}
	err = errors.Join(err, file.Close())
	if err == nil {
		err = os.Rename(tmp, s.path)
	}
	if err != nil {
		os.Remove(tmp)
		if !errors.Is(err, ErrIO) {
			err = fmt.Errorf("%w: %w", ErrIO, err)
		}
		return fmt.Errorf("could not save ledger file %q: %w", s.path, err)
	}
	return nil
}
