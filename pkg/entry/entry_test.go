package entry

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/lumiere/pkg/mood"
)

func TestDraftEmpty(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		want  bool
	}{
		{"blank", Draft{}, true},
		{"markup only", Draft{Content: "<p> </p><br/>"}, true},
		{"content", Draft{Content: "<p>Hello</p>"}, false},
		{"images only", Draft{Images: []string{"data:image/png;base64,xxxx"}}, false},
		{"both", Draft{Content: "<p>Hi</p>", Images: []string{"data:image/png;base64,xxxx"}}, false},
	}
	for _, tc := range cases {
		if got := tc.draft.Empty(); got != tc.want {
			t.Errorf("%s: Empty() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPlainText(t *testing.T) {
	if got := PlainText("<p>Hello <b>world</b></p>"); got != "Hello world" {
		t.Fatalf("PlainText = %q", got)
	}
	if got := PlainText("no markup"); got != "no markup" {
		t.Fatalf("PlainText = %q", got)
	}
}

func TestPreviewTruncates(t *testing.T) {
	if got := Preview("<p>short</p>", 50); got != "short" {
		t.Fatalf("Preview = %q", got)
	}
	long := "<p>" + "今天的阳光很好，我在湖边走了很久，风吹过水面的时候想起了很多事情。" + "</p>"
	got := Preview(long, 10)
	if len([]rune(got)) != 13 { // 10 runes + "..."
		t.Fatalf("Preview truncation wrong: %q", got)
	}
}

func TestApplyLeavesIdentityAlone(t *testing.T) {
	created := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	e := New("1709631000000", created, Draft{Content: "<p>first</p>", Mood: mood.Calm})

	remind := created.Add(24 * time.Hour)
	e.Apply(Draft{
		Title:    "A new title",
		Content:  "<p>second</p>",
		Mood:     mood.Happy,
		Tags:     []string{"walk", "lake"},
		Reminder: &remind,
	})

	if e.ID != "1709631000000" {
		t.Fatalf("id changed: %q", e.ID)
	}
	if !e.CreatedAt.Equal(created) {
		t.Fatalf("createdAt changed: %v", e.CreatedAt)
	}
	if e.Mood != mood.Happy || e.Title != "A new title" {
		t.Fatalf("mutable fields not applied: %+v", e)
	}
	if e.Reminder == nil || !e.Reminder.Equal(remind) {
		t.Fatalf("reminder not applied: %v", e.Reminder)
	}

	e.Apply(Draft{Content: "<p>third</p>"})
	if e.Reminder != nil {
		t.Fatal("reminder should clear when the draft has none")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 5, 23, 59, 1, 250000000, time.UTC)
	remind := created.Add(2 * time.Hour)
	e := New("1709683141250", created, Draft{
		Title:    "Evening walk",
		Content:  "<p>Hello</p>",
		Mood:     mood.Grateful,
		Tags:     []string{"walk", "evening"},
		Images:   []string{"data:image/png;base64,aGVsbG8="},
		Summary:  "A short walk.",
		Reminder: &remind,
	})

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back JournalEntry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(e.Tags, back.Tags) || !reflect.DeepEqual(e.Images, back.Images) {
		t.Fatalf("slices not preserved: %+v", back)
	}
	if back.Mood != mood.Grateful || back.Summary != e.Summary || back.Title != e.Title {
		t.Fatalf("fields not preserved: %+v", back)
	}
	if !back.CreatedAt.Equal(e.CreatedAt.Time) {
		t.Fatalf("createdAt not preserved: %v vs %v", back.CreatedAt, e.CreatedAt)
	}
	if back.Reminder == nil || !back.Reminder.Equal(remind) {
		t.Fatalf("reminder not preserved: %v", back.Reminder)
	}
}

func TestSameDayAcrossTimes(t *testing.T) {
	early := Timestamp{Time: time.Date(2024, 3, 1, 0, 1, 0, 0, time.Local)}
	late := time.Date(2024, 3, 1, 23, 59, 0, 0, time.Local)
	if !early.SameDay(late) {
		t.Fatal("expected 00:01 and 23:59 on the 1st to share a day")
	}
	if early.SameDay(late.AddDate(0, 0, 1)) {
		t.Fatal("expected different days to differ")
	}
	if !early.SameMonth(late) {
		t.Fatal("expected same month")
	}
}
