package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/lumiere/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
lumiere ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := loadJournal(ctx)
			if err != nil {
				return err
			}
			defer svc.Close(ctx)
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			i := ui.UI{Journal: svc, Settings: settings}
			return i.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
