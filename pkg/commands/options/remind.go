package options

import (
	"github.com/spf13/cobra"
)

// RemindOptions
type RemindOptions struct {
	In    string
	Clear bool
}

func AddRemindArgs(cmd *cobra.Command, o *RemindOptions) {
	cmd.Flags().StringVar(&o.In, "remind", "",
		`Set a reminder this far from now, example: --remind=2h or --remind=1w2d.`)
}

func AddClearRemindArg(cmd *cobra.Command, o *RemindOptions) {
	cmd.Flags().BoolVar(&o.Clear, "clear-reminder", false,
		"Remove the reminder from the entry.")
}
