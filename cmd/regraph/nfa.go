package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regraph/nfa"
)

func newNFACmd() *cobra.Command {
	var symbols, status bool

	cmd := &cobra.Command{
		Use:   "nfa <pattern>",
		Short: "Print the corrected pattern and epsilon graph of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := nfa.Compile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if status {
				fmt.Fprint(out, n.Status())
				return nil
			}
			fmt.Fprintf(out, "corrected: %s\n", n.Corrected())
			if symbols {
				fmt.Fprint(out, n.Listing())
			} else {
				fmt.Fprint(out, n.String())
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&symbols, "symbols", false, "Annotate every state with its symbol")
	cmd.Flags().BoolVar(&status, "status", false, "Print a summary including the range table")

	return cmd
}
