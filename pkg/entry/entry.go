package entry

import (
	"time"

	"tableflip.dev/lumiere/pkg/mood"
)

// JournalEntry is the sole persisted entity. Field names match the on-disk
// JSON shape exactly; there is no envelope or schema version.
type JournalEntry struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt Timestamp  `json:"createdAt"`
	Mood      mood.Mood  `json:"mood"`
	Tags      []string   `json:"tags"`
	Images    []string   `json:"images"`
	Summary   string     `json:"summary,omitempty"`
	Reminder  *Timestamp `json:"reminder,omitempty"`
}

// Draft holds the mutable fields of an entry before it is committed.
// ID and CreatedAt are owned by the journal service and never appear here.
type Draft struct {
	Title    string
	Content  string
	Mood     mood.Mood
	Tags     []string
	Images   []string
	Summary  string
	Reminder *time.Time
}

// Empty reports whether the draft has no stripped content and no images.
// Such drafts are rejected at the edit boundary and never persisted.
// Images alone keep a draft savable.
func (d Draft) Empty() bool {
	return PlainText(d.Content) == "" && len(d.Images) == 0
}

func New(id string, created time.Time, d Draft) *JournalEntry {
	e := &JournalEntry{
		ID:        id,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: Timestamp{Time: created},
		Mood:      d.Mood,
		Tags:      append([]string(nil), d.Tags...),
		Images:    append([]string(nil), d.Images...),
		Summary:   d.Summary,
	}
	if d.Reminder != nil {
		e.Reminder = &Timestamp{Time: *d.Reminder}
	}
	return e
}

// Apply replaces every mutable field from the draft. ID and CreatedAt are
// immutable after creation and left untouched.
func (e *JournalEntry) Apply(d Draft) {
	e.Title = d.Title
	e.Content = d.Content
	e.Mood = d.Mood
	e.Tags = append([]string(nil), d.Tags...)
	e.Images = append([]string(nil), d.Images...)
	e.Summary = d.Summary
	if d.Reminder != nil {
		e.Reminder = &Timestamp{Time: *d.Reminder}
	} else {
		e.Reminder = nil
	}
}

// AsDraft copies the mutable fields back out, for edit flows that start
// from the stored entry.
func (e *JournalEntry) AsDraft() Draft {
	d := Draft{
		Title:   e.Title,
		Content: e.Content,
		Mood:    e.Mood,
		Tags:    append([]string(nil), e.Tags...),
		Images:  append([]string(nil), e.Images...),
		Summary: e.Summary,
	}
	if e.Reminder != nil {
		t := e.Reminder.Time
		d.Reminder = &t
	}
	return d
}

// Clone returns a deep copy so callers can hand entries across goroutines
// without sharing slices.
func (e *JournalEntry) Clone() *JournalEntry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Tags = append([]string(nil), e.Tags...)
	cp.Images = append([]string(nil), e.Images...)
	if e.Reminder != nil {
		r := *e.Reminder
		cp.Reminder = &r
	}
	return &cp
}

// DateKey returns the YYYY-MM-DD portion of the creation time, the form
// matched by date search terms.
func (e *JournalEntry) DateKey() string {
	return e.CreatedAt.UTC().Format(layoutISO)
}

const layoutISO = "2006-01-02"
