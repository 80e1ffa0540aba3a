package configstore

import "time"

// HistoryEntry records one successful document load.
type HistoryEntry struct {
	Path      string
	Timestamp time.Time
}

// History is a ring buffer of load records.
type History struct {
	entries []*HistoryEntry
	maxSize int
}

// NewHistory creates a History with the given maximum size.
func NewHistory(maxSize int) *History {
	return &History{maxSize: maxSize}
}

// Push adds a record, discarding the oldest once the buffer is full.
func (h *History) Push(entry *HistoryEntry) {
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[1:]
	}
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.entries)
}

// List returns all records, most recent first.
func (h *History) List() []*HistoryEntry {
	result := make([]*HistoryEntry, len(h.entries))
	for i, entry := range h.entries {
		result[len(h.entries)-1-i] = entry
	}
	return result
}
