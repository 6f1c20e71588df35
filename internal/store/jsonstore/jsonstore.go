// Package jsonstore keeps small client-side state between runs.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/liser/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; the last writer wins.

const dataFileName = "state.json"

// State is what the CLI remembers between invocations.
type State struct {
	// LastBagListID is used when no bag list is selected explicitly.
	LastBagListID string `json:"last_baglist_id,omitempty"`
	// BagLists is the index as last fetched from the server.
	BagLists []model.BagList `json:"baglists,omitempty"`
}

func dataPath(dir string) string { return filepath.Join(dir, dataFileName) }

// Load reads the state in dir. A missing file is an empty state.
func Load(dir string) (State, error) {
	b, err := os.ReadFile(dataPath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("read file: %w", err)
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return st, nil
}

func Save(dir string, st State) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(dataPath(dir), b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Update loads the state in dir, applies f and saves the result.
func Update(dir string, f func(*State)) error {
	st, err := Load(dir)
	if err != nil {
		return err
	}
	f(&st)
	return Save(dir, st)
}
