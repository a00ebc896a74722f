package options

import (
	"github.com/spf13/cobra"
)

// AssistOptions
type AssistOptions struct {
	Analyze bool
	Apply   bool
}

func AddAnalyzeArg(cmd *cobra.Command, o *AssistOptions) {
	cmd.Flags().BoolVarP(&o.Analyze, "analyze", "a", false,
		"Fill in title, mood, tags, and summary from the entry text.")
}

func AddApplyArg(cmd *cobra.Command, o *AssistOptions) {
	cmd.Flags().BoolVar(&o.Apply, "apply", false,
		"Persist the analysis instead of just printing it.")
}
