package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lumiere/pkg/assist"
	"tableflip.dev/lumiere/pkg/runner/assistant"
	"tableflip.dev/lumiere/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change language and assist configuration",
		Example: `
lumiere settings
lumiere settings set --language zh
lumiere settings set --provider custom --base-url http://localhost:1234/v1 --model llama3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings()
			if err != nil {
				return output.HandleError(err)
			}
			s := settings.Show{Settings: st}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	addSettingsSet(cmd)
	addSettingsTest(cmd)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addSettingsTest(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check the configured provider accepts requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings()
			if err != nil {
				return output.HandleError(err)
			}
			p := assistant.Ping{
				Settings: st,
				Assist:   assist.New(),
			}
			return output.HandleError(p.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addSettingsSet(topLevel *cobra.Command) {
	set := settings.Set{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings()
			if err != nil {
				return output.HandleError(err)
			}
			set.Settings = st
			return output.HandleError(set.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&set.Language, "language", "", "Display language, one of en or zh.")
	cmd.Flags().StringVar(&set.Provider, "provider", "", "Assist provider, one of google or custom.")
	cmd.Flags().StringVar(&set.APIKey, "api-key", "", "API key for the assist provider.")
	cmd.Flags().StringVar(&set.BaseURL, "base-url", "", "Endpoint for the custom provider.")
	cmd.Flags().StringVar(&set.Model, "model", "", "Model identifier.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
