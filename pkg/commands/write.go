package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lumiere/pkg/assist"
	"tableflip.dev/lumiere/pkg/commands/options"
	"tableflip.dev/lumiere/pkg/interactive"
	"tableflip.dev/lumiere/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	ro := &options.RemindOptions{}
	ao := &options.AssistOptions{}
	io := &options.IDOptions{}
	ia := &options.InteractiveOptions{}
	var content string

	cmd := &cobra.Command{
		Use:     "write",
		Aliases: []string{"new", "add"},
		Short:   "Write a new entry",
		Example: `
lumiere write today was a good day
lumiere write --title "Morning" --mood happy walked by the lake
lumiere write --analyze spent the evening reading
lumiere write --image ./sunset.jpg
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if ia.Interactive {
				return nil
			}
			if len(args) < 1 && len(eo.Images) == 0 {
				return errors.New("requires entry text or at least one image")
			}
			content = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			m, err := eo.GetMood()
			if err != nil {
				return output.HandleError(err)
			}
			if ia.Interactive {
				d, err := interactive.Compose()
				if err != nil {
					return output.HandleError(err)
				}
				eo.Title = d.Title
				content = d.Content
				m = d.Mood
				if len(d.Tags) > 0 {
					eo.Tags = d.Tags
				}
			}
			images, err := eo.GetImages()
			if err != nil {
				return output.HandleError(err)
			}
			svc, err := loadJournal(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close(ctx)
			settings, err := loadSettings()
			if err != nil {
				return output.HandleError(err)
			}
			w := write.Write{
				Title:    eo.Title,
				Content:  content,
				Mood:     m,
				Tags:     eo.Tags,
				Images:   images,
				RemindIn: ro.In,
				Analyze:  ao.Analyze,
				ShowID:   io.ShowID,
				Journal:  svc,
				Settings: settings,
				Assist:   assist.New(),
			}
			return output.HandleError(w.Do(ctx))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddRemindArgs(cmd, ro)
	options.AddAnalyzeArg(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, ia)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
