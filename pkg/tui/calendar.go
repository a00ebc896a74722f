package tui

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/lumiere/pkg/query"
)

// renderMonth produces the multi-line month grid for the given days.
func renderMonth(month time.Time, days []query.DayInfo, theme CalendarTheme) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDay := make(map[int]query.DayInfo, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	lines := []string{theme.Header.Render("Su Mo Tu We Th Fr Sa")}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, theme.Empty.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, theme))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info query.DayInfo, day int, theme CalendarTheme) string {
	text := fmt.Sprintf("%2d", day)

	style := theme.Empty
	if info.HasEntry {
		style = theme.Entry
	}
	if info.IsToday {
		style = style.Inherit(theme.Today)
	}
	if info.IsSelected {
		style = style.Inherit(theme.Selected)
	}
	return style.Render(text)
}
