package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lumiere/pkg/assist"
	"tableflip.dev/lumiere/pkg/commands/options"
	"tableflip.dev/lumiere/pkg/runner/assistant"
)

func addAssist(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "assist",
		Short: "Writing prompts and entry analysis",
		Example: `
lumiere assist prompt
lumiere assist analyze 1709649000000 --apply
lumiere assist test
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAssistPrompt(cmd)
	addAssistAnalyze(cmd)
	addAssistTest(cmd)

	topLevel.AddCommand(cmd)
}

func addAssistPrompt(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Generate one writing prompt for right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return output.HandleError(err)
			}
			p := assistant.Prompt{
				Settings: settings,
				Assist:   assist.New(),
			}
			return output.HandleError(p.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addAssistAnalyze(topLevel *cobra.Command) {
	ao := &options.AssistOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <id>",
		Short: "Derive title, mood, tags, and summary for an entry",
		Args:  cobra.ExactArgs(1),
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
			a := assistant.Analyze{
				ID:       args[0],
				Apply:    ao.Apply,
				ShowID:   io.ShowID,
				Journal:  svc,
				Settings: settings,
				Assist:   assist.New(),
			}
			return output.HandleError(a.Do(ctx))
		},
	}

	options.AddApplyArg(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addAssistTest(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check the configured provider accepts requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return output.HandleError(err)
			}
			p := assistant.Ping{
				Settings: settings,
				Assist:   assist.New(),
			}
			return output.HandleError(p.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
