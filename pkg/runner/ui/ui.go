package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/store"
	"tableflip.dev/lumiere/pkg/tui"
)

type UI struct {
	Journal  *journal.Service
	Settings *store.Settings
}

func (n *UI) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not open ui, no journal")
	}

	lang := i18n.Default
	if n.Settings != nil {
		lang = n.Settings.Language()
	}

	p := tea.NewProgram(tui.New(n.Journal, lang), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Follow external edits to the journal while the UI is open. Backends
	// without watch support just skip this.
	if ch, err := n.Journal.Persistence.Watch(ctx); err == nil {
		go func() {
			for range ch {
				n.Journal.Reload(ctx)
				p.Send(tui.ReloadMsg{})
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	n.Journal.Flush(context.Background())
	return nil
}
