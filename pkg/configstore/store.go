// Package configstore holds the configuration document the interactive
// shell is working with, with reload and load-history support.
package configstore

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/psaab/fortiparse/pkg/config"
)

// Store manages the currently loaded configuration document. Parsing is
// one-way; the store never writes configuration text back.
type Store struct {
	mu      sync.RWMutex
	path    string
	tree    *config.Config
	history *History
}

// New creates an empty store.
func New() *Store {
	return &Store{history: NewHistory(20)}
}

// Load parses the file at path and makes it the current document. The
// previous document stays current when the load fails.
func (s *Store) Load(path string) error {
	tree, err := config.ParseFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	s.mu.Lock()
	s.path = path
	s.tree = tree
	s.history.Push(&HistoryEntry{Path: path, Timestamp: time.Now()})
	s.mu.Unlock()

	slog.Debug("configuration loaded", "path", path)
	return nil
}

// Reload re-parses the current document's file.
func (s *Store) Reload() error {
	s.mu.RLock()
	path := s.path
	s.mu.RUnlock()

	if path == "" {
		return fmt.Errorf("no configuration loaded")
	}
	return s.Load(path)
}

// Tree returns the current document, or nil when nothing is loaded.
func (s *Store) Tree() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

// Path returns the current document's file path.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Loaded reports whether a document is loaded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree != nil
}

// History returns the load history, most recent first.
func (s *Store) History() []*HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.List()
}
