package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewts-lang/ewts/internal/lexer"
	"github.com/ewts-lang/ewts/internal/source"
)

type tokenRecord struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewTokensCmd creates the tokens command.
func NewTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the classified token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			data, err := source.Load(path)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			iterator, err := lexer.Ewts.Tokenise(nil, string(data))
			if err != nil {
				return writeCommandError(cmd, fmt.Errorf("tokenise: %w", err))
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, tok := range iterator.Tokens() {
				if jsonMode {
					if err := enc.Encode(tokenRecord{Type: tok.Type.String(), Value: tok.Value}); err != nil {
						return writeCommandError(cmd, err)
					}
					continue
				}
				fmt.Fprintf(out, "%-24s %q\n", tok.Type, tok.Value)
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "output one JSON object per token")

	return cmd
}
