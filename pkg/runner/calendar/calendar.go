package calendar

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/printers"
	"tableflip.dev/lumiere/pkg/query"

	"time"
)

type Calendar struct {
	On      time.Time
	Day     int
	Compact bool
	ShowID  bool
	Lang    i18n.Language

	Journal *journal.Service
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show calendar, no journal")
	}
	on := n.On
	if on.IsZero() {
		on = time.Now()
	}

	entries := n.Journal.List()

	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: n.ShowID, Lang: n.Lang}
	if n.Day > 0 {
		return n.day(on, entries, &pp)
	}
	if n.Compact {
		pp.PrintMonth(on, entries...)
		return nil
	}
	pp.Calendar(on, entries...)
	return nil
}

func (n *Calendar) day(on time.Time, entries []*entry.JournalEntry, pp *printers.PrettyPrint) error {
	when := time.Date(on.Year(), on.Month(), n.Day, 0, 0, 0, 0, time.Local)
	if when.Day() != n.Day {
		return fmt.Errorf("no day %d in %s %d", n.Day, on.Month(), on.Year())
	}

	pp.Title(when.Format("Monday, January 2, 2006"))
	matched := query.OnDay(entries, when)
	if len(matched) == 0 {
		t := i18n.T(n.Lang)
		fmt.Printf("  %s\n\n", t.NoMemories)
		return nil
	}
	for _, e := range matched {
		pp.Detail(e)
	}
	return nil
}
