// Package mcp provides the Model Context Protocol server integration for
// the journal.
package mcp

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/journal"
	"tableflip.dev/lumiere/pkg/mood"
	"tableflip.dev/lumiere/pkg/query"
)

// Service coordinates journal operations that are shared by the MCP server.
type Service struct {
	Journal *journal.Service
}

// CreateEntryOptions captures the parameters used to create a new entry.
type CreateEntryOptions struct {
	Title    string
	Content  string
	Mood     mood.Mood
	Tags     []string
	Reminder *time.Time
}

// UpdateEntryOptions captures a partial edit; nil fields keep the stored
// value.
type UpdateEntryOptions struct {
	ID      string
	Title   *string
	Content *string
	Mood    *mood.Mood
	Tags    *[]string
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	PlainText   string   `json:"plainText"`
	Preview     string   `json:"preview"`
	Mood        string   `json:"mood"`
	MoodSymbol  string   `json:"moodSymbol"`
	Tags        []string `json:"tags"`
	ImageCount  int      `json:"imageCount"`
	Summary     string   `json:"summary,omitempty"`
	CreatedISO  string   `json:"created"`
	CreatedUnix int64    `json:"createdUnix"`
	ReminderISO string   `json:"reminder,omitempty"`
}

// DaySummary describes one day of a month overview.
type DaySummary struct {
	Day        int      `json:"day"`
	EntryCount int      `json:"entryCount"`
	Titles     []string `json:"titles"`
}

// NewService builds a service wrapper over the shared journal.
func NewService(j *journal.Service) *Service {
	return &Service{Journal: j}
}

// ListEntries returns entries newest first, optionally filtered the same
// way the list command filters.
func (s *Service) ListEntries(ctx context.Context, q string, limit int) ([]EntryDTO, error) {
	if s.Journal == nil {
		return nil, errors.New("journal is not configured")
	}
	matched := query.Search(s.Journal.List(), q)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return toDTOs(matched), nil
}

// EntryByID locates an entry and returns the DTO representation.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	if s.Journal == nil {
		return nil, errors.New("journal is not configured")
	}
	e, err := s.Journal.Get(id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// CreateEntry persists a new entry using the supplied options.
func (s *Service) CreateEntry(ctx context.Context, opts CreateEntryOptions) (*EntryDTO, error) {
	if s.Journal == nil {
		return nil, errors.New("journal is not configured")
	}

	e, err := s.Journal.Create(ctx, entry.Draft{
		Title:    opts.Title,
		Content:  opts.Content,
		Mood:     opts.Mood,
		Tags:     opts.Tags,
		Reminder: opts.Reminder,
	})
	if err != nil {
		return nil, err
	}
	s.Journal.Flush(ctx)

	dto := toDTO(e)
	return &dto, nil
}

// UpdateEntry applies a partial edit to an existing entry.
func (s *Service) UpdateEntry(ctx context.Context, opts UpdateEntryOptions) (*EntryDTO, error) {
	if s.Journal == nil {
		return nil, errors.New("journal is not configured")
	}
	if opts.ID == "" {
		return nil, errors.New("id is required")
	}

	current, err := s.Journal.Get(opts.ID)
	if err != nil {
		return nil, err
	}
	d := current.AsDraft()
	if opts.Title != nil {
		d.Title = *opts.Title
	}
	if opts.Content != nil {
		d.Content = *opts.Content
	}
	if opts.Mood != nil {
		d.Mood = *opts.Mood
	}
	if opts.Tags != nil {
		d.Tags = *opts.Tags
	}

	e, err := s.Journal.Update(ctx, opts.ID, d)
	if err != nil {
		return nil, err
	}
	s.Journal.Flush(ctx)

	dto := toDTO(e)
	return &dto, nil
}

// DeleteEntry removes an entry; absent ids are a no-op.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	if s.Journal == nil {
		return errors.New("journal is not configured")
	}
	if id == "" {
		return errors.New("id is required")
	}
	if err := s.Journal.Delete(ctx, id); err != nil {
		return err
	}
	s.Journal.Flush(ctx)
	return nil
}

// MonthOverview summarizes which days of a month have entries.
func (s *Service) MonthOverview(ctx context.Context, year int, month time.Month) ([]DaySummary, error) {
	if s.Journal == nil {
		return nil, errors.New("journal is not configured")
	}

	byDay := query.Month(s.Journal.List(), year, month)
	out := make([]DaySummary, 0, len(byDay))
	for day := 1; day <= 31; day++ {
		matched, ok := byDay[day]
		if !ok {
			continue
		}
		titles := make([]string, 0, len(matched))
		for _, e := range matched {
			titles = append(titles, e.Title)
		}
		out = append(out, DaySummary{Day: day, EntryCount: len(matched), Titles: titles})
	}
	return out, nil
}

func toDTOs(entries []*entry.JournalEntry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}

func toDTO(e *entry.JournalEntry) EntryDTO {
	g := e.Mood.Glyph()
	dto := EntryDTO{
		ID:          e.ID,
		Title:       e.Title,
		PlainText:   entry.PlainText(e.Content),
		Preview:     entry.Preview(e.Content, 80),
		Mood:        g.Name,
		MoodSymbol:  g.Symbol,
		Tags:        e.Tags,
		ImageCount:  len(e.Images),
		Summary:     e.Summary,
		CreatedISO:  entry.FormatTime(e.CreatedAt.Time),
		CreatedUnix: e.CreatedAt.Unix(),
	}
	if e.Reminder != nil && !e.Reminder.IsZero() {
		dto.ReminderISO = entry.FormatTime(e.Reminder.Time)
	}
	return dto
}
