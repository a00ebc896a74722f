package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lumiere/pkg/commands/options"
	"tableflip.dev/lumiere/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	var compact bool
	var day int

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month of entries",
		Example: `
lumiere calendar
lumiere calendar --on 2024-3
lumiere calendar --on 2024-3 --day 5
lumiere calendar --compact
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			svc, err := loadJournal(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			settings, err := loadSettings()
			if err != nil {
				return output.HandleError(err)
			}
			c := calendar.Calendar{
				On:      on,
				Day:     day,
				Compact: compact,
				ShowID:  io.ShowID,
				Lang:    settings.Language(),
				Journal: svc,
			}
			return output.HandleError(c.Do(ctx))
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Render the month as a compact grid.")
	cmd.Flags().IntVar(&day, "day", 0, "Show the entries of one day of the month.")
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
