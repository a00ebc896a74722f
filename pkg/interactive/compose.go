// Package interactive prompts for the pieces of a draft on the terminal.
package interactive

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/mood"
)

// Compose walks through title, content, mood, and tags and returns the
// assembled draft.
func Compose() (entry.Draft, error) {
	d := entry.Draft{}

	title := promptui.Prompt{
		Label: "Title (optional)",
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }} : ",
			Valid:   "{{ . | green }} : ",
			Success: "{{ . | bold }} : ",
		},
	}
	t, err := title.Run()
	if err != nil {
		return d, err
	}
	d.Title = t

	content := promptui.Prompt{
		Label: "Entry",
		Validate: func(input string) error {
			if entry.PlainText(input) == "" {
				return fmt.Errorf("an entry needs some text")
			}
			return nil
		},
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }} : ",
			Valid:   "{{ . | green }} : ",
			Invalid: "{{ . | red }} : ",
			Success: "{{ . | bold }} : ",
		},
	}
	c, err := content.Run()
	if err != nil {
		return d, err
	}
	d.Content = c

	m, err := selectMood()
	if err != nil {
		return d, err
	}
	d.Mood = m

	tags := promptui.Prompt{
		Label: "Tags, comma separated (optional)",
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }} : ",
			Valid:   "{{ . | green }} : ",
			Success: "{{ . | bold }} : ",
		},
	}
	raw, err := tags.Run()
	if err != nil {
		return d, err
	}
	d.Tags = splitTags(raw)

	return d, nil
}

func selectMood() (mood.Mood, error) {
	moods := mood.All()

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Symbol }} {{ .Name | bold }} {{ .Meaning | green }}",
		Inactive: "   {{ .Symbol }} {{ .Name }} {{ .Meaning | cyan }}",
		Selected: "{{ .Symbol }} {{ .Name | bold }}",
	}

	glyphs := make([]mood.Glyph, len(moods))
	for i, m := range moods {
		glyphs[i] = m.Glyph()
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(glyphs[index].Name)
		input = strings.TrimSpace(strings.ToLower(input))
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Mood",
		Items:     glyphs,
		Templates: templates,
		Size:      len(glyphs),
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return mood.Neutral, err
	}
	return moods[i], nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
