// Package journal owns the canonical in-memory entry collection and
// mirrors it through a store.Persistence with a debounced write.
package journal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/store"
)

var (
	// ErrEmptyEntry rejects drafts with no stripped content and no
	// images. Callers treat it as a silent no-op at the edit boundary.
	ErrEmptyEntry = errors.New("journal: entry has no content and no images")

	ErrNotFound = errors.New("journal: entry not found")
)

// DefaultDebounce coalesces rapid successive mutations into one write.
const DefaultDebounce = 500 * time.Millisecond

// Service provides the entry operations shared by the CLI and the TUI.
// It is safe for concurrent use; the debounce timer fires on its own
// goroutine and always serializes the state current at fire time.
type Service struct {
	Persistence store.Persistence

	mu       sync.Mutex
	entries  []*entry.JournalEntry
	lastID   int64
	debounce time.Duration
	timer    *time.Timer
}

// Load builds a Service over the persisted collection. The persisted
// order is kept as-is; it is already newest first.
func Load(ctx context.Context, p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, errors.New("journal: no persistence configured")
	}
	s := &Service{
		Persistence: p,
		entries:     p.Load(ctx),
		debounce:    DefaultDebounce,
	}
	// Seed the id watermark from the loaded collection so new ids stay
	// unique even when the wall clock sits behind a persisted id.
	for _, e := range s.entries {
		if id, err := strconv.ParseInt(e.ID, 10, 64); err == nil && id > s.lastID {
			s.lastID = id
		}
	}
	return s, nil
}

// SetDebounce adjusts the write delay; zero makes every mutation write
// synchronously. Mainly for tests.
func (s *Service) SetDebounce(d time.Duration) {
	s.mu.Lock()
	s.debounce = d
	s.mu.Unlock()
}

// Create assigns a fresh id and creation time to the draft and prepends
// it, newest first. Empty drafts are rejected with ErrEmptyEntry.
func (s *Service) Create(ctx context.Context, d entry.Draft) (*entry.JournalEntry, error) {
	if d.Empty() {
		return nil, ErrEmptyEntry
	}

	s.mu.Lock()
	now := time.Now()
	e := entry.New(s.nextIDLocked(now), now, d)
	s.entries = append([]*entry.JournalEntry{e}, s.entries...)
	s.scheduleSaveLocked(ctx)
	s.mu.Unlock()

	return e.Clone(), nil
}

// Update replaces every mutable field of the matching entry. ID and
// CreatedAt never change.
func (s *Service) Update(ctx context.Context, id string, d entry.Draft) (*entry.JournalEntry, error) {
	if d.Empty() {
		return nil, ErrEmptyEntry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			e.Apply(d)
			s.scheduleSaveLocked(ctx)
			return e.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the matching entry; absent ids are a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.scheduleSaveLocked(ctx)
			return nil
		}
	}
	return nil
}

// Get returns a copy of the matching entry.
func (s *Service) Get(id string) (*entry.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// List returns the full sequence, newest first.
func (s *Service) List() []*entry.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entry.JournalEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Reload replaces the in-memory collection with the persisted state,
// discarding any pending debounced write. Used when the store changed
// externally.
func (s *Service) Reload(ctx context.Context) {
	loaded := s.Persistence.Load(ctx)
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.entries = loaded
	s.mu.Unlock()
}

// Flush forces any pending write out immediately.
func (s *Service) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.save(ctx)
}

// Close flushes pending state. The Service must not be used afterwards.
func (s *Service) Close(ctx context.Context) {
	s.Flush(ctx)
}

// nextIDLocked derives a unique, monotonic id from the wall clock in
// milliseconds. Rapid successive calls within one millisecond bump the
// last id instead of colliding.
func (s *Service) nextIDLocked(now time.Time) string {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// scheduleSaveLocked re-arms the debounce timer. The save reads the
// collection at fire time, so bursts of mutations resolve to one write of
// the final state.
func (s *Service) scheduleSaveLocked(ctx context.Context) {
	if s.debounce <= 0 {
		// Synchronous mode; used by tests and one-shot CLI commands.
		s.saveLocked(ctx)
		return
	}
	if s.timer != nil {
		s.timer.Reset(s.debounce)
		return
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		s.timer = nil
		s.mu.Unlock()
		s.save(context.Background())
	})
}

func (s *Service) save(ctx context.Context) {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(ctx, snapshot)
}

func (s *Service) saveLocked(ctx context.Context) {
	s.persist(ctx, s.snapshotLocked())
}

func (s *Service) snapshotLocked() []*entry.JournalEntry {
	snapshot := make([]*entry.JournalEntry, len(s.entries))
	for i, e := range s.entries {
		snapshot[i] = e.Clone()
	}
	return snapshot
}

func (s *Service) persist(ctx context.Context, snapshot []*entry.JournalEntry) {
	if err := s.Persistence.Save(ctx, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "journal: save: %v\n", err)
	}
}
