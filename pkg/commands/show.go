package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lumiere/pkg/commands/options"
	"tableflip.dev/lumiere/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry in full",
		Example: `
lumiere show 1709649000000
`,
		Args: cobra.ExactArgs(1),
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
			s := show.Show{
				ID:      args[0],
				ShowID:  io.ShowID,
				Lang:    settings.Language(),
				Journal: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
