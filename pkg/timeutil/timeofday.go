package timeutil

import "time"

// DayPart buckets a clock time into morning, afternoon, or evening.
type DayPart int

const (
	Morning DayPart = iota
	Afternoon
	Evening
)

// PartOfDay returns the bucket for t: morning before noon, afternoon
// before six, evening otherwise.
func PartOfDay(t time.Time) DayPart {
	switch h := t.Hour(); {
	case h < 12:
		return Morning
	case h < 18:
		return Afternoon
	default:
		return Evening
	}
}
