package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/lumiere/pkg/entry"
)

const journalFile = "journal.json"

// Persistence is the storage contract for the journal collection. Load
// never fails the caller: read errors and an absent store both degrade to
// an empty collection, logged to stderr. Save errors are returned so the
// journal service can log them, but no caller surfaces them to the user.
type Persistence interface {
	Load(ctx context.Context) []*entry.JournalEntry
	Save(ctx context.Context, entries []*entry.JournalEntry) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// ErrWatchUnsupported is returned by backends that cannot observe external
// changes (the key/value fallback).
var ErrWatchUnsupported = errors.New("store: watch unsupported by this backend")

// Open picks a backend with a one-time capability probe: if the configured
// base path accepts file writes, the whole session uses the single-file
// backend; otherwise it falls back to a key/value store under the user
// cache dir. The choice is never revisited mid-session.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if err := probeWritable(basePath); err == nil {
		return &fileStore{path: filepath.Join(basePath, journalFile), basePath: basePath}, nil
	} else {
		fmt.Fprintf(os.Stderr, "store: %s not writable (%v), falling back to key/value storage\n", basePath, err)
	}

	return openKV(fallbackBasePath())
}

func probeWritable(basePath string) error {
	if basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	probe := filepath.Join(basePath, ".probe")
	if err := os.WriteFile(probe, []byte{}, 0o644); err != nil {
		return fmt.Errorf("store: probe write: %w", err)
	}
	return os.Remove(probe)
}

// fileStore persists the collection as one JSON array in a single file,
// the desktop-grade backend.
type fileStore struct {
	path     string
	basePath string
}

func (f *fileStore) Load(_ context.Context) []*entry.JournalEntry {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", f.path, err)
		}
		return []*entry.JournalEntry{}
	}
	return decodeEntries(data, f.path)
}

func (f *fileStore) Save(_ context.Context, entries []*entry.JournalEntry) error {
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	return os.Rename(tmp, f.path)
}

func decodeEntries(data []byte, source string) []*entry.JournalEntry {
	if len(data) == 0 {
		return []*entry.JournalEntry{}
	}
	var entries []*entry.JournalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode %s: %v\n", source, err)
		return []*entry.JournalEntry{}
	}
	if entries == nil {
		entries = []*entry.JournalEntry{}
	}
	return entries
}

func encodeEntries(entries []*entry.JournalEntry) ([]byte, error) {
	if entries == nil {
		entries = []*entry.JournalEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("store: encode entries: %w", err)
	}
	return data, nil
}
