package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewts-lang/ewts/internal/highlight"
	"github.com/ewts-lang/ewts/internal/source"
)

// NewMdCmd creates the md command.
func NewMdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "md [file]",
		Short: "Highlight fenced code blocks in a Markdown document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styleName, _ := cmd.Flags().GetString("style")

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			data, err := source.Load(path)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), highlight.Fences(string(data), styleName))
			return nil
		},
	}

	cmd.Flags().String("style", highlight.DefaultStyle, "chroma style name")

	return cmd
}
