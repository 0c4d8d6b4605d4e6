package command

import (
	"github.com/spf13/cobra"

	"github.com/ewts-lang/ewts/internal/highlight"
	"github.com/ewts-lang/ewts/internal/source"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Tokenize Ewts source and render it highlighted",
		Long:  "Render reads Ewts source from the given files (or stdin) and writes a highlighted version to stdout. Output is ANSI-colored on terminals; use --format to force html or plain text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			styleName, _ := cmd.Flags().GetString("style")
			formatName, _ := cmd.Flags().GetString("format")

			format, err := highlight.ParseFormat(formatName)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if len(args) == 0 {
				args = []string{"-"}
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				data, err := source.Load(path)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				if err := highlight.Render(out, string(data), "ewts", styleName, format); err != nil {
					return writeCommandError(cmd, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("style", highlight.DefaultStyle, "chroma style name")
	cmd.Flags().String("format", string(highlight.FormatAuto), "output format: auto, terminal, html, text")

	return cmd
}
