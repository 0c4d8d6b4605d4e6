package command

import (
	"os"

	"github.com/spf13/cobra"
)

const AppName = "ewts"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Ewts - tokenizer and highlighter for the Ewts scripting dialect",
		Long:          "Ewts classifies and renders Ewts source (*.ewts, *.script, *.ewtsub, *.subscript) via the chroma highlighting engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.AddCommand(
		NewRenderCmd(),
		NewTokensCmd(),
		NewCheckCmd(),
		NewWatchCmd(),
		NewMdCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(Version).Execute()
}
