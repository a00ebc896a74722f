package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/mood"
	"tableflip.dev/lumiere/pkg/store"
)

type memoryPersistence struct {
	entries []*entry.JournalEntry
}

func (m *memoryPersistence) Load(context.Context) []*entry.JournalEntry { return m.entries }
func (m *memoryPersistence) Save(_ context.Context, entries []*entry.JournalEntry) error {
	m.entries = entries
	return nil
}
func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, store.ErrWatchUnsupported
}

func seededModel(t *testing.T) Model {
	t.Helper()
	created := time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
	mp := &memoryPersistence{entries: []*entry.JournalEntry{
		entry.New("2", created.Add(24*time.Hour), entry.Draft{
			Title:   "Rainy day",
			Content: "<p>stayed inside</p>",
			Mood:    mood.Calm,
			Tags:    []string{"weather"},
		}),
		entry.New("1", created, entry.Draft{
			Content: "<p>walked by the lake</p>",
			Mood:    mood.Happy,
			Tags:    []string{"nature"},
		}),
	}}
	svc, err := journal.Load(context.Background(), mp)
	if err != nil {
		t.Fatalf("load journal: %v", err)
	}
	return New(svc, i18n.English)
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("update returned unexpected model type %T", next)
		}
	}
	return m
}

func TestListViewShowsEntriesNewestFirst(t *testing.T) {
	m := seededModel(t)
	view := m.View()

	rainy := strings.Index(view, "Rainy day")
	untitled := strings.Index(view, "Untitled")
	if rainy == -1 || untitled == -1 {
		t.Fatalf("expected both entries in view:\n%s", view)
	}
	if rainy > untitled {
		t.Fatal("expected newest entry listed first")
	}
}

func TestListCursorNavigation(t *testing.T) {
	m := seededModel(t)
	if m.cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", m.cursor)
	}
	m = update(t, m, key("down"))
	if m.cursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", m.cursor)
	}
	m = update(t, m, key("down"))
	if m.cursor != 1 {
		t.Fatal("cursor must not run past the last entry")
	}
	m = update(t, m, key("up"))
	if m.cursor != 0 {
		t.Fatalf("expected cursor back at 0, got %d", m.cursor)
	}
}

func TestSearchFiltersList(t *testing.T) {
	m := seededModel(t)
	m = update(t, m, key("/"))
	if !m.search.Focused() {
		t.Fatal("expected search focus after /")
	}
	for _, r := range "lake" {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if len(m.filtered) != 1 {
		t.Fatalf("expected one match for lake, got %d", len(m.filtered))
	}
	m = update(t, m, key("esc"))
	if m.search.Focused() || m.search.Value() != "" {
		t.Fatal("esc must clear and blur the search")
	}
	if len(m.filtered) != 2 {
		t.Fatalf("expected full list after clearing search, got %d", len(m.filtered))
	}
}

func TestEnterOpensDetailAndEscReturns(t *testing.T) {
	m := seededModel(t)
	m = update(t, m, key("enter"))
	if m.mode != viewDetail || m.open == nil {
		t.Fatal("expected detail view after enter")
	}
	if !strings.Contains(m.View(), "stayed inside") {
		t.Fatalf("expected plain content in detail view:\n%s", m.View())
	}
	m = update(t, m, key("esc"))
	if m.mode != viewList || m.open != nil {
		t.Fatal("expected esc to return to the list")
	}
}

func TestTabTogglesCalendar(t *testing.T) {
	m := seededModel(t)
	m = update(t, m, key("tab"))
	if m.mode != viewCalendar {
		t.Fatal("expected calendar view after tab")
	}
	if !strings.Contains(m.View(), "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("expected weekday header in calendar view:\n%s", m.View())
	}
	m = update(t, m, key("tab"))
	if m.mode != viewList {
		t.Fatal("expected list view after second tab")
	}
}

func TestCalendarDayNavigationClamps(t *testing.T) {
	m := seededModel(t)
	m = update(t, m, key("tab"))

	m.month = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	m.day = 31
	m = update(t, m, key("right"))
	if m.day != 31 {
		t.Fatalf("day must not run past month end, got %d", m.day)
	}
	m = update(t, m, key("]"))
	if m.month.Month() != time.April {
		t.Fatalf("expected April after ], got %s", m.month.Month())
	}
	if m.day != 30 {
		t.Fatalf("expected day clamped to 30 in April, got %d", m.day)
	}
	m = update(t, m, key("["))
	if m.month.Month() != time.March {
		t.Fatalf("expected March after [, got %s", m.month.Month())
	}
}

func TestCalendarEnterOpensDayEntry(t *testing.T) {
	m := seededModel(t)
	m = update(t, m, key("tab"))
	m.month = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	m.day = 5

	m = update(t, m, key("enter"))
	if m.mode != viewDetail || m.open == nil {
		t.Fatal("expected detail view for a day with an entry")
	}
	if m.open.ID != "1" {
		t.Fatalf("expected the March 5 entry, got %s", m.open.ID)
	}
	m = update(t, m, key("esc"))
	if m.mode != viewCalendar {
		t.Fatal("expected esc to return to the calendar")
	}
}

func TestReloadPicksUpNewEntries(t *testing.T) {
	m := seededModel(t)
	if _, err := m.journal.Create(context.Background(), entry.Draft{Content: "<p>fresh</p>"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	m = update(t, m, ReloadMsg{})
	if len(m.entries) != 3 {
		t.Fatalf("expected 3 entries after reload, got %d", len(m.entries))
	}
}

func TestRightKeyNavigation(t *testing.T) {
	m := seededModel(t)
	m = update(t, m, key("tab"))
	m.month = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	m.day = 10
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.day != 11 {
		t.Fatalf("expected day 11, got %d", m.day)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.day != 10 {
		t.Fatalf("expected day 10, got %d", m.day)
	}
}
