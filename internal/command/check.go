package command

import (
	"fmt"

	"github.com/alecthomas/chroma"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ewts-lang/ewts/internal/lexer"
	"github.com/ewts-lang/ewts/internal/source"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Tokenize files and report unclassifiable spans",
		Long:  "Check walks the given files and directories, tokenizes every Ewts file it finds, and reports how much of each file could not be classified. Lexing never aborts; a stray character degrades to an Error token and scanning continues.",
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")

			if len(args) == 0 {
				args = []string{"."}
			}
			files, err := source.Collect(args)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if len(files) == 0 {
				return writeCommandError(cmd, fmt.Errorf("no Ewts files found in %v", args))
			}

			out := cmd.OutOrStdout()
			totalErrors := 0
			for _, path := range files {
				data, err := source.Load(path)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				iterator, err := lexer.Ewts.Tokenise(nil, string(data))
				if err != nil {
					return writeCommandError(cmd, fmt.Errorf("tokenise %s: %w", path, err))
				}
				tokens := iterator.Tokens()
				errors := 0
				for _, tok := range tokens {
					if tok.Type == chroma.Error {
						errors++
					}
				}
				totalErrors += errors
				fmt.Fprintf(out, "%s: %d tokens, %d errors, %s\n",
					path, len(tokens), errors, humanize.Bytes(uint64(len(data))))
			}

			if strict && totalErrors > 0 {
				return writeCommandError(cmd, fmt.Errorf("%d error tokens across %d files", totalErrors, len(files)))
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, "exit nonzero if any Error tokens were produced")

	return cmd
}
