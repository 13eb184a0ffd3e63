// internal/store/memory.go
//
// Audit store for finished games, plus its in-memory implementation.
// Only the flip log is kept (session id, timestamps, moves). Scores are not
// stored.
//
// Characteristics of the memory store:
//   - Records keyed by session ID in a map.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/robalobadob/memory/internal/game"
)

// ErrNotFound is returned by Get for an unknown session ID.
var ErrNotFound = errors.New("not found")

// Record is the audit view of one completed session.
type Record struct {
	SessionID  string
	StartedAt  time.Time
	FinishedAt time.Time
	Moves      []game.Move
}

// RecordOf extracts the audit record from a session.
func RecordOf(s *game.Session) Record {
	return Record{
		SessionID:  s.ID,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		Moves:      append([]game.Move(nil), s.Moves...),
	}
}

// Store persists audit records.
// Implementations: memory (this file), SQLite (sqlite.go).
type Store interface {
	// Save persists or replaces the record for r.SessionID.
	Save(ctx context.Context, r Record) error

	// Get retrieves a record by session ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// List returns up to limit records, most recently finished first.
	// A non-positive limit returns all records.
	List(ctx context.Context, limit int) ([]Record, error)

	Close() error
}

type memory struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{records: make(map[string]Record)}
}

func (m *memory) Save(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.Moves = append([]game.Move(nil), r.Moves...)
	m.records[r.SessionID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}

func (m *memory) List(ctx context.Context, limit int) ([]Record, error) {
	m.mu.RLock()
	out := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].FinishedAt.Equal(out[j].FinishedAt) {
			return out[i].FinishedAt.After(out[j].FinishedAt)
		}
		return out[i].SessionID < out[j].SessionID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
