package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/lumiere/pkg/entry"
)

const entriesKey = "journal_entries"

// kvStore is the local-storage analogue: the whole collection serialized
// under one key in a diskv store. Used when the primary file location is
// not writable.
type kvStore struct {
	d *diskv.Diskv
}

func openKV(basePath string) (Persistence, error) {
	if basePath == "" {
		return nil, errors.New("store: kv base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure kv base path: %w", err)
	}
	return &kvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func flatTransform(string) []string { return []string{} }

func (k *kvStore) Load(_ context.Context) []*entry.JournalEntry {
	data, err := k.d.Read(entriesKey)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "store: read key %s: %v\n", entriesKey, err)
		}
		return []*entry.JournalEntry{}
	}
	return decodeEntries(data, entriesKey)
}

func (k *kvStore) Save(_ context.Context, entries []*entry.JournalEntry) error {
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := k.d.Write(entriesKey, data); err != nil {
		return fmt.Errorf("store: write key %s: %w", entriesKey, err)
	}
	return nil
}

func (k *kvStore) Watch(context.Context) (<-chan Event, error) {
	return nil, ErrWatchUnsupported
}
