package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "lumiere",
		Short: base.Wrap80("Personal journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addWrite(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addCalendar(topLevel)
	addReminders(topLevel)
	addMoods(topLevel)
	addAssist(topLevel)
	addSettings(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}
