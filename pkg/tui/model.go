// Package tui is the interactive terminal frontend: a searchable entry
// list, a month calendar, and a read-only detail view over the shared
// journal service.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/query"
)

type viewMode int

const (
	viewList viewMode = iota
	viewCalendar
	viewDetail
)

// ReloadMsg tells the model to re-read the journal, typically because the
// store changed on disk.
type ReloadMsg struct{}

type Model struct {
	journal *journal.Service
	lang    i18n.Language
	theme   Theme

	entries  []*entry.JournalEntry
	filtered []*entry.JournalEntry
	cursor   int

	search textinput.Model

	mode viewMode
	back viewMode
	open *entry.JournalEntry

	month time.Time
	day   int

	width  int
	height int
}

func New(svc *journal.Service, lang i18n.Language) Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "
	search.CharLimit = 120

	now := time.Now()
	m := Model{
		journal: svc,
		lang:    lang,
		theme:   DefaultTheme(),
		search:  search,
		month:   time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		day:     now.Day(),
	}
	m.reload()
	return m
}

func (m *Model) reload() {
	if m.journal != nil {
		m.entries = m.journal.List()
	}
	m.refilter()
}

func (m *Model) refilter() {
	m.filtered = query.Search(m.entries, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ReloadMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.String() {
			case "esc":
				m.search.Blur()
				m.search.SetValue("")
				m.refilter()
				return m, nil
			case "enter":
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.cursor = 0
			m.refilter()
			return m, cmd
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		if m.mode != viewDetail {
			m.mode = viewList
			return m, m.search.Focus()
		}

	case "tab":
		if m.mode == viewDetail {
			return m, nil
		}
		if m.mode == viewList {
			m.mode = viewCalendar
		} else {
			m.mode = viewList
		}
		return m, nil

	case "esc":
		switch m.mode {
		case viewDetail:
			m.mode = m.back
			m.open = nil
		case viewList:
			if m.search.Value() != "" {
				m.search.SetValue("")
				m.refilter()
			}
		}
		return m, nil

	case "r":
		m.reload()
		return m, nil

	case "enter":
		switch m.mode {
		case viewList:
			if len(m.filtered) > 0 {
				m.open = m.filtered[m.cursor]
				m.back = viewList
				m.mode = viewDetail
			}
		case viewCalendar:
			on := time.Date(m.month.Year(), m.month.Month(), m.day, 12, 0, 0, 0, time.Local)
			if day := query.OnDay(m.entries, on); len(day) > 0 {
				m.open = day[0]
				m.back = viewCalendar
				m.mode = viewDetail
			}
		}
		return m, nil
	}

	switch m.mode {
	case viewList:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		}
	case viewCalendar:
		switch msg.String() {
		case "left", "h":
			if m.day > 1 {
				m.day--
			}
		case "right", "l":
			if m.day < daysIn(m.month) {
				m.day++
			}
		case "up", "k":
			if m.day > 7 {
				m.day -= 7
			}
		case "down", "j":
			if m.day+7 <= daysIn(m.month) {
				m.day += 7
			}
		case "[", "pgup":
			m.month = m.month.AddDate(0, -1, 0)
			m.clampDay()
		case "]", "pgdown":
			m.month = m.month.AddDate(0, 1, 0)
			m.clampDay()
		case "t":
			now := time.Now()
			m.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
			m.day = now.Day()
		}
	}
	return m, nil
}

func (m *Model) clampDay() {
	if days := daysIn(m.month); m.day > days {
		m.day = days
	}
}

func daysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

func (m Model) View() string {
	switch m.mode {
	case viewCalendar:
		return m.viewCalendar()
	case viewDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m Model) displayTitle(e *entry.JournalEntry) string {
	if strings.TrimSpace(e.Title) != "" {
		return e.Title
	}
	return i18n.T(m.lang).Untitled
}

func (m Model) viewList() string {
	t := i18n.T(m.lang)
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(t.AppTitle))
	b.WriteString("\n")
	if m.search.Focused() || m.search.Value() != "" {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(m.theme.SearchHint.Render("/ to search"))
	}
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(m.theme.Summary.Render(t.NoMemories))
		b.WriteString("\n")
	}
	for i, e := range m.filtered {
		line := fmt.Sprintf("%s %s  %s",
			e.Mood.Glyph().Symbol,
			m.displayTitle(e),
			m.theme.Date.Render(e.CreatedAt.Local().Format("2006-01-02")))
		if i == m.cursor {
			line = m.theme.Selected.Render("> " + line)
		} else {
			line = m.theme.Entry.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter open · tab calendar · / search · q quit"))
	return b.String()
}

func (m Model) viewCalendar() string {
	t := i18n.T(m.lang)
	var b strings.Builder

	header := fmt.Sprintf("%s %d", t.Months[m.month.Month()-1], m.month.Year())
	b.WriteString(m.theme.Title.Render(header))
	b.WriteString("\n\n")

	days := query.Days(m.entries, m.month.Year(), m.month.Month(), time.Now(), m.day)
	b.WriteString(renderMonth(m.month, days, m.theme.Calendar))
	b.WriteString("\n\n")

	on := time.Date(m.month.Year(), m.month.Month(), m.day, 12, 0, 0, 0, time.Local)
	selected := query.OnDay(m.entries, on)
	if len(selected) == 0 {
		b.WriteString(m.theme.Summary.Render(t.NoMemories))
		b.WriteString("\n")
	}
	for _, e := range selected {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			e.Mood.Glyph().Symbol,
			m.displayTitle(e),
			m.theme.Date.Render(e.CreatedAt.Local().Format("15:04"))))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("arrows move · [ ] month · t today · enter open · tab list · q quit"))
	return b.String()
}

func (m Model) viewDetail() string {
	if m.open == nil {
		return ""
	}
	e := m.open
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(fmt.Sprintf("%s %s", e.Mood.Glyph().Symbol, m.displayTitle(e))))
	b.WriteString("\n")
	b.WriteString(m.theme.Date.Render(e.CreatedAt.Local().Format("Monday, January 2, 2006 15:04")))
	b.WriteString("\n")

	if len(e.Tags) > 0 {
		tags := make([]string, len(e.Tags))
		for i, tag := range e.Tags {
			tags[i] = "#" + tag
		}
		b.WriteString(m.theme.Tag.Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}
	if e.Summary != "" {
		b.WriteString(m.theme.Summary.Render(e.Summary))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(entry.PlainText(e.Content))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("esc back · q quit"))
	return b.String()
}
