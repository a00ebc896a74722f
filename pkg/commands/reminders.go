package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lumiere/pkg/runner/reminders"
)

func addReminders(topLevel *cobra.Command) {
	var all bool

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "List upcoming reminders",
		Example: `
lumiere reminders
lumiere reminders --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := loadJournal(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			settings, err := loadSettings()
			if err != nil {
				return output.HandleError(err)
			}
			r := reminders.Reminders{
				All:     all,
				Lang:    settings.Language(),
				Journal: svc,
			}
			return output.HandleError(r.Do(ctx))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include reminders that have already passed.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
