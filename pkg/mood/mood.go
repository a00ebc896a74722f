package mood

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Glyph carries the display metadata for a mood.
type Glyph struct {
	Name    string
	Symbol  string
	Meaning string
}

type Mood int

const (
	Neutral Mood = iota
	Happy
	Calm
	Sad
	Anxious
	Excited
	Grateful
)

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 7)

	g = append(g, Glyph{
		Name:    "Neutral",
		Symbol:  "–",
		Meaning: "nothing in particular",
	}, Glyph{
		Name:    "Happy",
		Symbol:  "☀",
		Meaning: "a bright day",
	}, Glyph{
		Name:    "Calm",
		Symbol:  "≈",
		Meaning: "at ease",
	}, Glyph{
		Name:    "Sad",
		Symbol:  "☂",
		Meaning: "a heavy day",
	}, Glyph{
		Name:    "Anxious",
		Symbol:  "≋",
		Meaning: "restless",
	}, Glyph{
		Name:    "Excited",
		Symbol:  "✷",
		Meaning: "sparks flying",
	}, Glyph{
		Name:    "Grateful",
		Symbol:  "❀",
		Meaning: "thankful",
	})

	return g
}

// All lists every mood in declaration order.
func All() []Mood {
	return []Mood{Neutral, Happy, Calm, Sad, Anxious, Excited, Grateful}
}

// Names lists the canonical mood names, used when building provider schemas.
func Names() []string {
	glyphs := DefaultGlyphs()
	names := make([]string, 0, len(glyphs))
	for _, g := range glyphs {
		names = append(names, g.Name)
	}
	return names
}

func (m Mood) Glyph() Glyph {
	glyphs := DefaultGlyphs()
	if int(m) < 0 || int(m) >= len(glyphs) {
		return glyphs[Neutral]
	}
	return glyphs[m]
}

func (m Mood) String() string {
	return m.Glyph().Name
}

// Parse maps a name to its mood, case-insensitively. Anything unknown
// collapses to Neutral so the collection never holds an out-of-set value.
func Parse(name string) Mood {
	for i, g := range DefaultGlyphs() {
		if strings.EqualFold(g.Name, name) {
			return Mood(i)
		}
	}
	return Neutral
}

// ParseStrict is Parse without the Neutral collapse, for flag validation.
func ParseStrict(name string) (Mood, error) {
	for i, g := range DefaultGlyphs() {
		if strings.EqualFold(g.Name, name) {
			return Mood(i), nil
		}
	}
	return Neutral, fmt.Errorf("mood: unknown mood %q (one of %s)", name, strings.Join(Names(), ", "))
}

func (m Mood) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	*m = Parse(name)
	return nil
}
