// Package assistant holds the runners behind the assist subcommands.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/lumiere/pkg/assist"
	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/printers"
	"tableflip.dev/lumiere/pkg/store"
	"tableflip.dev/lumiere/pkg/timeutil"
)

// Prompt asks for one writing prompt suited to the current time of day.
type Prompt struct {
	Settings *store.Settings
	Assist   *assist.Client
}

func (n *Prompt) Do(ctx context.Context) error {
	if n.Assist == nil || n.Settings == nil {
		return errors.New("can not prompt, no assist client")
	}

	lang := n.Settings.Language()
	t := i18n.T(lang)
	var timeOfDay string
	switch timeutil.PartOfDay(time.Now()) {
	case timeutil.Morning:
		timeOfDay = t.Morning
	case timeutil.Afternoon:
		timeOfDay = t.Afternoon
	default:
		timeOfDay = t.Evening
	}

	s, err := n.Assist.GeneratePrompt(ctx, timeOfDay, lang, n.Settings.AIConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "assist unavailable, using a stock prompt: %v\n", err)
	}

	i := color.New(color.Italic)
	f := color.New(color.Faint)
	fmt.Println("")
	_, _ = i.Printf("%s\n", s.Text)
	_, _ = f.Printf("(%s)\n\n", s.Type)
	return nil
}

// Analyze runs entry analysis for one stored entry and persists the
// derived title, mood, tags, and summary.
type Analyze struct {
	ID     string
	Apply  bool
	ShowID bool

	Journal  *journal.Service
	Settings *store.Settings
	Assist   *assist.Client
}

func (n *Analyze) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not analyze, no journal")
	}
	if n.Assist == nil || n.Settings == nil {
		return errors.New("can not analyze, no assist client")
	}

	e, err := n.Journal.Get(n.ID)
	if err != nil {
		return err
	}

	lang := n.Settings.Language()
	a, err := n.Assist.AnalyzeEntry(ctx, entry.PlainText(e.Content), lang, n.Settings.AIConfig())
	if err != nil {
		return err
	}

	if !n.Apply {
		f := color.New(color.Faint)
		fmt.Println("")
		fmt.Printf("%s %s\n", a.Mood.Glyph().Symbol, a.Title)
		for _, tag := range a.Tags {
			fmt.Printf("#%s ", tag)
		}
		fmt.Println("")
		_, _ = f.Printf("%s\n\n", a.Summary)
		return nil
	}

	d := e.AsDraft()
	d.Title = a.Title
	d.Mood = a.Mood
	d.Tags = a.Tags
	d.Summary = a.Summary

	updated, err := n.Journal.Update(ctx, n.ID, d)
	if err != nil {
		return err
	}
	n.Journal.Flush(ctx)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Lang: lang}
	pp.NewLine()
	pp.Detail(updated)
	return nil
}

// Ping verifies the configured provider accepts requests.
type Ping struct {
	Settings *store.Settings
	Assist   *assist.Client
}

func (n *Ping) Do(ctx context.Context) error {
	if n.Assist == nil || n.Settings == nil {
		return errors.New("can not test, no assist client")
	}
	cfg := n.Settings.AIConfig()
	if err := n.Assist.TestConnection(ctx, cfg); err != nil {
		return fmt.Errorf("connection to %s failed: %w", cfg.Provider, err)
	}
	g := color.New(color.FgGreen)
	_, _ = g.Printf("connection to %s ok (%s)\n", cfg.Provider, cfg.ModelOrDefault())
	return nil
}
