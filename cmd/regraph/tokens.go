package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regraph/lexer"
)

func newTokensCmd() *cobra.Command {
	var (
		delims string
		ops    []string
	)

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a file with their types",
		Long: `The tokens command splits each line of a file into INT, REAL, OPERATOR and
STRING tokens. Space and tab always delimit; --delims adds more.

Example:
  regraph tokens edges.txt
  regraph tokens --delims ',' --op '=>' data.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tz, err := lexer.NewFromFile(args[0], lexer.WithDelimiters(delims), lexer.WithOperators(ops...))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for {
				tok, err := tz.Next()
				if err != nil {
					return err
				}
				if tok.Type == lexer.EOF {
					return nil
				}
				fmt.Fprintf(out, "%d:%d\t%-8s %s\n", tok.Line, tok.Col, tok.Type, tok.Text)
			}
		},
	}
	cmd.Flags().StringVar(&delims, "delims", "", "Extra delimiter bytes")
	cmd.Flags().StringSliceVar(&ops, "op", nil, "Extra operators (repeatable)")

	return cmd
}
