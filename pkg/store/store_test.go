package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/lumiere/pkg/assist"
	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/mood"
)

func sampleEntries() []*entry.JournalEntry {
	created := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	return []*entry.JournalEntry{
		entry.New("1709649000000", created, entry.Draft{
			Title:   "Morning walk",
			Content: "<p>by the lake</p>",
			Mood:    mood.Calm,
			Tags:    []string{"nature"},
		}),
		entry.New("1709649000001", created.Add(time.Hour), entry.Draft{
			Content: "<p>second thought</p>",
		}),
	}
}

func TestOpenPrefersFileBackend(t *testing.T) {
	base := t.TempDir()
	p, err := Open(StaticConfig(base))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := p.(*fileStore); !ok {
		t.Fatalf("expected file backend for writable path, got %T", p)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Open(StaticConfig(base))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	want := sampleEntries()
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Load(ctx)
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Fatalf("entry %d: expected id %s, got %s", i, want[i].ID, got[i].ID)
		}
		if !got[i].CreatedAt.Equal(want[i].CreatedAt.Time) {
			t.Fatalf("entry %d: createdAt drifted: %v vs %v", i, got[i].CreatedAt, want[i].CreatedAt)
		}
		if got[i].Mood != want[i].Mood {
			t.Fatalf("entry %d: mood drifted: %v vs %v", i, got[i].Mood, want[i].Mood)
		}
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	p, err := Open(StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got := p.Load(context.Background())
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty collection, got %v", got)
	}
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, journalFile), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	p, err := Open(StaticConfig(base))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got := p.Load(context.Background())
	if len(got) != 0 {
		t.Fatalf("corrupt file must degrade to empty collection, got %d entries", len(got))
	}
}

func TestKVStoreRoundTrip(t *testing.T) {
	p, err := openKV(t.TempDir())
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	ctx := context.Background()

	if got := p.Load(ctx); len(got) != 0 {
		t.Fatalf("expected empty collection before first save, got %d", len(got))
	}

	want := sampleEntries()
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := p.Load(ctx)
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	if got[0].Title != "Morning walk" {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}

	if _, err := p.Watch(ctx); err != ErrWatchUnsupported {
		t.Fatalf("expected ErrWatchUnsupported from kv backend, got %v", err)
	}
}

func TestSettingsLanguage(t *testing.T) {
	s, err := OpenSettings(StaticConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open settings: %v", err)
	}
	if got := s.Language(); got != i18n.Default {
		t.Fatalf("expected default language when unset, got %v", got)
	}
	if err := s.SetLanguage(i18n.Chinese); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if got := s.Language(); got != i18n.Chinese {
		t.Fatalf("expected zh after set, got %v", got)
	}
}

func TestSettingsAIConfig(t *testing.T) {
	base := t.TempDir()
	s, err := OpenSettings(StaticConfig(base))
	if err != nil {
		t.Fatalf("open settings: %v", err)
	}

	if got := s.AIConfig(); got.Provider != assist.ProviderGoogle || got.Model == "" {
		t.Fatalf("expected default config when unset, got %+v", got)
	}

	want := assist.Config{
		Provider: assist.ProviderCustom,
		APIKey:   "sk-test",
		BaseURL:  "http://localhost:1234/v1",
		Model:    "llama3",
	}
	if err := s.SetAIConfig(want); err != nil {
		t.Fatalf("set ai config: %v", err)
	}
	if got := s.AIConfig(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSettingsAIConfigCorruptDegradesToDefault(t *testing.T) {
	base := t.TempDir()
	s, err := OpenSettings(StaticConfig(base))
	if err != nil {
		t.Fatalf("open settings: %v", err)
	}
	if err := s.d.Write(aiConfigKey, []byte("{nope")); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}
	if got := s.AIConfig(); got.Provider != assist.ProviderGoogle {
		t.Fatalf("corrupt config must degrade to default, got %+v", got)
	}
}

func TestFileStoreWatchEmitsJournalChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Open(StaticConfig(base))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Save(ctx, sampleEntries()); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventJournalChanged {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for journal change event")
		}
	}
}
