package write

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

type Write struct {
	Title    string
	Content  string
	Mood     mood.Mood
	Tags     []string
	Images   []string
	RemindIn string
	Analyze  bool
	ShowID   bool

	Journal  *journal.Service
	Settings *store.Settings
	Assist   *assist.Client
}

func (n *Write) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not write, no journal")
	}

	d := entry.Draft{
		Title:   n.Title,
		Content: n.Content,
		Mood:    n.Mood,
		Tags:    n.Tags,
		Images:  n.Images,
	}

	if n.RemindIn != "" {
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
		a, err := n.Assist.AnalyzeEntry(ctx, entry.PlainText(n.Content), lang, n.Settings.AIConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "assist unavailable, keeping entry as written: %v\n", err)
		} else {
			if d.Title == "" {
				d.Title = a.Title
			}
			if d.Mood == mood.Neutral {
				d.Mood = a.Mood
			}
			if len(d.Tags) == 0 {
				d.Tags = a.Tags
			}
			d.Summary = a.Summary
		}
	}

	e, err := n.Journal.Create(ctx, d)
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
