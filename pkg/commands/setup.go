package commands

import (
	"context"

	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/store"
)

func loadJournal(ctx context.Context) (*journal.Service, error) {
	p, err := store.Open(nil)
	if err != nil {
		return nil, err
	}
	return journal.Load(ctx, p)
}

func loadSettings() (*store.Settings, error) {
	return store.OpenSettings(nil)
}
