package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/mood"
)

type PrettyPrint struct {
	ShowID bool
	Lang   i18n.Language
}

var (
	spacing = strings.Repeat(" ", len("1709649000000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// displayTitle substitutes the localized placeholder for entries saved
// without a title. The stored value stays empty.
func (pp *PrettyPrint) displayTitle(e *entry.JournalEntry) string {
	if strings.TrimSpace(e.Title) != "" {
		return e.Title
	}
	return i18n.T(pp.Lang).Untitled
}

// Entries prints one line per entry, newest first as stored.
func (pp *PrettyPrint) Entries(entries ...*entry.JournalEntry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Printf(" %s\n\n", i18n.T(pp.Lang).NoMemories)
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print(strings.Repeat(" ", max(len(spacing)-len(e.ID), 1)))
		}
		g := e.Mood.Glyph()
		_, _ = t.Printf("%s %s", g.Symbol, pp.displayTitle(e))
		_, _ = d.Printf("  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	_, _ = t.Println("")
}

// Table prints entries as a table with a preview column.
func (pp *PrettyPrint) Table(entries ...*entry.JournalEntry) {
	if len(entries) == 0 {
		pp.Entries()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.Wrap = true

	if pp.ShowID {
		table.AddRow("ID", "DATE", "MOOD", "TITLE", "TAGS", "PREVIEW")
	} else {
		table.AddRow("DATE", "MOOD", "TITLE", "TAGS", "PREVIEW")
	}
	for _, e := range entries {
		date := e.CreatedAt.Local().Format("2006-01-02")
		moodName := fmt.Sprintf("%s %s", e.Mood.Glyph().Symbol, e.Mood)
		tags := strings.Join(e.Tags, ", ")
		preview := entry.Preview(e.Content, 50)
		if pp.ShowID {
			table.AddRow(e.ID, date, moodName, pp.displayTitle(e), tags, preview)
		} else {
			table.AddRow(date, moodName, pp.displayTitle(e), tags, preview)
		}
	}
	fmt.Println(table)
}

// Detail prints one entry in full.
func (pp *PrettyPrint) Detail(e *entry.JournalEntry) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	t := color.New()

	g := e.Mood.Glyph()
	_, _ = b.Printf("%s %s\n", g.Symbol, pp.displayTitle(e))
	_, _ = f.Printf("%s", e.CreatedAt.Local().Format("Monday, January 2, 2006 15:04"))
	if pp.ShowID {
		_, _ = f.Printf("  %s", e.ID)
	}
	_, _ = f.Println("")

	if len(e.Tags) > 0 {
		y := color.New(color.FgHiYellow)
		for _, tag := range e.Tags {
			_, _ = y.Printf("#%s ", tag)
		}
		fmt.Println("")
	}
	if e.Summary != "" {
		_, _ = f.Printf("%s\n", e.Summary)
	}
	if e.Reminder != nil {
		_, _ = f.Printf("reminder: %s\n", e.Reminder.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println("")
	_, _ = t.Println(entry.PlainText(e.Content))
	if n := len(e.Images); n > 0 {
		switch n {
		case 1:
			_, _ = f.Println("\n1 attached image")
		default:
			_, _ = f.Printf("\n%d attached images\n", n)
		}
	}
	fmt.Println("")
}

// Moods prints the mood legend.
func (pp *PrettyPrint) Moods() {
	t := color.New()
	f := color.New(color.Faint)
	for _, m := range mood.All() {
		g := m.Glyph()
		_, _ = t.Printf("%s %-10s", g.Symbol, g.Name)
		_, _ = f.Printf("%s\n", g.Meaning)
	}
	fmt.Println("")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
