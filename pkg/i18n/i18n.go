// Package i18n carries the two display locales and every canned string the
// assist fallbacks and calendar rendering need.
package i18n

import "strings"

type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Default is used when no language has been persisted yet.
const Default = English

// Parse normalizes a stored locale code; anything unknown falls back to
// the default.
func Parse(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "zh", "zh-cn", "zh-hans":
		return Chinese
	default:
		return English
	}
}

// Toggle flips between the two supported locales.
func (l Language) Toggle() Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Bundle holds every translated string for one locale.
type Bundle struct {
	AppTitle      string
	Untitled      string
	NoMemories    string
	Morning       string
	Afternoon     string
	Evening       string
	Months        [12]string
	WeekdaysShort [7]string

	// Canned assist fallbacks.
	FallbackPrompt        string
	FallbackAnalysisTitle string
	FallbackTag           string

	// Instructions appended to assist requests so output matches the locale.
	OutputDirective         string
	AnalysisOutputDirective string
}

var bundles = map[Language]Bundle{
	English: {
		AppTitle:      "Lumière Journal",
		Untitled:      "Untitled",
		NoMemories:    "No memories yet",
		Morning:       "morning",
		Afternoon:     "afternoon",
		Evening:       "evening",
		Months:        [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},

		FallbackPrompt:        "What is something worth remembering today?",
		FallbackAnalysisTitle: "Untitled Entry",
		FallbackTag:           "journal",

		OutputDirective:         "Output must be in English.",
		AnalysisOutputDirective: "Output in English.",
	},
	Chinese: {
		AppTitle:      "流光日记",
		Untitled:      "无题",
		NoMemories:    "还没有回忆",
		Morning:       "早晨",
		Afternoon:     "下午",
		Evening:       "夜晚",
		Months:        [12]string{"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"},
		WeekdaysShort: [7]string{"日", "一", "二", "三", "四", "五", "六"},

		FallbackPrompt:        "今天有什么值得记录的事吗？",
		FallbackAnalysisTitle: "无题",
		FallbackTag:           "日记",

		OutputDirective:         "Output must be in Simplified Chinese.",
		AnalysisOutputDirective: "Output title, tags and summary in Simplified Chinese.",
	},
}

// T returns the bundle for a language, defaulting to English.
func T(l Language) Bundle {
	if b, ok := bundles[l]; ok {
		return b
	}
	return bundles[English]
}
