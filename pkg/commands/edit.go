package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lumiere/pkg/assist"
	"tableflip.dev/lumiere/pkg/commands/options"
	"tableflip.dev/lumiere/pkg/mood"
	"tableflip.dev/lumiere/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	ro := &options.RemindOptions{}
	ao := &options.AssistOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [content]",
		Short: "Edit an existing entry",
		Long: base.Wrap80("Edit an entry in place. Only the fields you pass " +
			"change; the id and creation time never do."),
		Example: `
lumiere edit 1709649000000 the day turned out better
lumiere edit 1709649000000 --title "Evening walk" --mood calm
lumiere edit 1709649000000 --clear-reminder
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := loadJournal(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close(ctx)
			settings, err := loadSettings()
			if err != nil {
				return output.HandleError(err)
			}

			e := edit.Edit{
				ID:            args[0],
				RemindIn:      ro.In,
				ClearReminder: ro.Clear,
				Analyze:       ao.Analyze,
				ShowID:        io.ShowID,
				Journal:       svc,
				Settings:      settings,
				Assist:        assist.New(),
			}
			if len(args) > 1 {
				content := strings.Join(args[1:], " ")
				e.Content = &content
			}
			if cmd.Flags().Changed("title") {
				e.Title = &eo.Title
			}
			if cmd.Flags().Changed("mood") {
				m, err := mood.ParseStrict(eo.MoodName)
				if err != nil {
					return output.HandleError(err)
				}
				e.Mood = &m
			}
			if cmd.Flags().Changed("tag") {
				e.Tags = &eo.Tags
			}
			return output.HandleError(e.Do(ctx))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddRemindArgs(cmd, ro)
	options.AddClearRemindArg(cmd, ro)
	options.AddAnalyzeArg(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
