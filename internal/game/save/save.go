// Package save persists sessions to disk as yaml, one directory per named
// session holding the world state and the exchange history.
package save

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"eldoria/internal/game"
)

// Store reads and writes sessions under a root directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the session's state and transcript to <dir>/<name>/.
func (s *Store) Save(name string, state game.WorldState, history *game.History) error {
	dir := filepath.Join(s.dir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	stateData, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal world state: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "state.yaml"), stateData, 0644); err != nil {
		return fmt.Errorf("failed to write state.yaml: %w", err)
	}

	historyData, err := yaml.Marshal(history.GetEntries())
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "history.yaml"), historyData, 0644); err != nil {
		return fmt.Errorf("failed to write history.yaml: %w", err)
	}

	return nil
}

// Load reads a saved session back. The returned history is bounded to
// historySize entries, keeping the newest.
func (s *Store) Load(name string, historySize int) (game.WorldState, *game.History, error) {
	dir := filepath.Join(s.dir, name)

	stateData, err := os.ReadFile(filepath.Join(dir, "state.yaml"))
	if err != nil {
		return game.WorldState{}, nil, fmt.Errorf("failed to read state.yaml: %w", err)
	}
	var state game.WorldState
	if err := yaml.Unmarshal(stateData, &state); err != nil {
		return game.WorldState{}, nil, fmt.Errorf("failed to unmarshal world state: %w", err)
	}

	historyData, err := os.ReadFile(filepath.Join(dir, "history.yaml"))
	if err != nil {
		return game.WorldState{}, nil, fmt.Errorf("failed to read history.yaml: %w", err)
	}
	var entries []string
	if err := yaml.Unmarshal(historyData, &entries); err != nil {
		return game.WorldState{}, nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}

	history := game.NewHistory(historySize)
	history.Restore(entries)

	return state, history, nil
}

// List returns the names of saved sessions, skipping directories that do
// not hold a state.yaml.
func (s *Store) List() ([]string, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read saves directory: %w", err)
	}

	var sessions []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		statePath := filepath.Join(s.dir, entry.Name(), "state.yaml")
		if _, err := os.Stat(statePath); err == nil {
			sessions = append(sessions, entry.Name())
		}
	}
	return sessions, nil
}
