package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lumiere/pkg/commands/options"
	"tableflip.dev/lumiere/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var table bool

	cmd := &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"ls", "search"},
		Short:   "List entries, optionally filtered",
		Long: base.Wrap80("List entries newest first. A query matches against " +
			"title, content, tags, and the entry date in 2006-01-02 form."),
		Example: `
lumiere list
lumiere list lake
lumiere list 2024-03-05
lumiere list --table
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
			l := list.List{
				Query:   strings.Join(args, " "),
				Table:   table,
				ShowID:  io.ShowID,
				Lang:    settings.Language(),
				Journal: svc,
			}
			return output.HandleError(l.Do(ctx))
		},
	}

	cmd.Flags().BoolVar(&table, "table", false, "Render entries as a table with previews.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
