package reminders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/printers"
)

// Reminders lists entries with a reminder set, soonest first. Past
// reminders are hidden unless All is set.
type Reminders struct {
	All  bool
	Lang i18n.Language

	Journal *journal.Service
}

func (n *Reminders) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not list reminders, no journal")
	}

	now := time.Now()
	var due []*entry.JournalEntry
	for _, e := range n.Journal.List() {
		if e.Reminder == nil {
			continue
		}
		if !n.All && e.Reminder.Before(now) {
			continue
		}
		due = append(due, e)
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].Reminder.Time.Before(due[j].Reminder.Time)
	})

	fmt.Println("")
	pp := printers.PrettyPrint{Lang: n.Lang}
	pp.TitleWithCount("Reminders", len(due))
	pp.Reminders(due...)
	return nil
}
