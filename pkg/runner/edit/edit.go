package edit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/lumiere/pkg/assist"
	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/mood"
	"tableflip.dev/lumiere/pkg/printers"
	"tableflip.dev/lumiere/pkg/store"
	"tableflip.dev/lumiere/pkg/timeutil"
)

// Edit applies partial changes to an existing entry. A nil field means
// keep the stored value.
type Edit struct {
	ID            string
	Title         *string
	Content       *string
	Mood          *mood.Mood
	Tags          *[]string
	RemindIn      string
	ClearReminder bool
	Analyze       bool
	ShowID        bool

	Journal  *journal.Service
	Settings *store.Settings
	Assist   *assist.Client
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not edit, no journal")
	}

	current, err := n.Journal.Get(n.ID)
	if err != nil {
		return err
	}
	d := current.AsDraft()

	if n.Title != nil {
		d.Title = *n.Title
	}
	if n.Content != nil {
		d.Content = *n.Content
	}
	if n.Mood != nil {
		d.Mood = *n.Mood
	}
	if n.Tags != nil {
		d.Tags = *n.Tags
	}
	if n.ClearReminder {
		d.Reminder = nil
	} else if n.RemindIn != "" {
		delay, _, err := timeutil.ParseWindow(n.RemindIn)
		if err != nil {
			return err
		}
		at := time.Now().Add(delay)
		d.Reminder = &at
	}

	lang := i18n.Default
	if n.Settings != nil {
		lang = n.Settings.Language()
	}

	if n.Analyze {
		if n.Assist == nil || n.Settings == nil {
			return errors.New("can not analyze, no assist client")
		}
		a, err := n.Assist.AnalyzeEntry(ctx, entry.PlainText(d.Content), lang, n.Settings.AIConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "assist unavailable, keeping entry as written: %v\n", err)
		} else {
			d.Title = a.Title
			d.Mood = a.Mood
			d.Tags = a.Tags
			d.Summary = a.Summary
		}
	}

	e, err := n.Journal.Update(ctx, n.ID, d)
	if err != nil {
		if errors.Is(err, journal.ErrEmptyEntry) {
			return errors.New("nothing to save, the entry is empty")
		}
		return err
	}
	n.Journal.Flush(ctx)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Lang: lang}
	pp.NewLine()
	pp.Detail(e)

	return nil
}
