package query

import (
	"time"

	"tableflip.dev/lumiere/pkg/entry"
)

// Month partitions entries into per-day buckets for the given month,
// comparing local calendar days. Only days with entries appear as keys;
// the order inside a bucket follows the input order.
func Month(entries []*entry.JournalEntry, year int, month time.Month) map[int][]*entry.JournalEntry {
	target := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	buckets := make(map[int][]*entry.JournalEntry)
	for _, e := range entries {
		if !e.CreatedAt.SameMonth(target) {
			continue
		}
		day := e.CreatedAt.Local().Day()
		buckets[day] = append(buckets[day], e)
	}
	return buckets
}

// OnDay returns the entries created on the given local calendar day, in
// input order.
func OnDay(entries []*entry.JournalEntry, on time.Time) []*entry.JournalEntry {
	out := make([]*entry.JournalEntry, 0)
	for _, e := range entries {
		if e.CreatedAt.SameDay(on) {
			out = append(out, e)
		}
	}
	return out
}

// DayInfo is the per-cell derivation a calendar renderer needs. Today and
// selection highlighting are pure functions of the inputs, never stored.
type DayInfo struct {
	Day        int
	HasEntry   bool
	IsToday    bool
	IsSelected bool
}

// Days derives one DayInfo per day of the month. selected may be zero for
// "no selection".
func Days(entries []*entry.JournalEntry, year int, month time.Month, today time.Time, selected int) []DayInfo {
	buckets := Month(entries, year, month)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	total := first.AddDate(0, 1, -1).Day()

	days := make([]DayInfo, 0, total)
	for day := 1; day <= total; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		days = append(days, DayInfo{
			Day:        day,
			HasEntry:   len(buckets[day]) > 0,
			IsToday:    sameDate(date, today),
			IsSelected: day == selected,
		})
	}
	return days
}

func sameDate(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}
