// Package localstore keeps a single JSON snapshot of the state tree on
// disk, used when no credential is available and as the source for the
// one-time import into the remote store. The snapshot may be in an
// outdated schema, so readers always run it through migration.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mogumo/levemagi/internal/model"
)

// Store reads and writes the snapshot file.
type Store struct {
	path string
}

// DefaultPath returns the snapshot location under the user state dir,
// e.g. ~/.local/state/levemagi/state.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "levemagi", "state.json"), nil
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the raw snapshot bytes. ok is false when no snapshot
// exists; read errors other than absence are returned as-is.
func (s *Store) Load() (data []byte, ok bool, err error) {
	data, err = os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading local snapshot: %w", err)
	}
	return data, true, nil
}

// Save writes the state tree as the new snapshot, creating the parent
// directory as needed.
func (s *Store) Save(st model.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding local snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing local snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot. Removing an absent snapshot is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing local snapshot: %w", err)
	}
	return nil
}
