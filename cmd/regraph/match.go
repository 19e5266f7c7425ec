package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regraph/nfa"
)

func newMatchCmd() *cobra.Command {
	var noSanitize bool

	cmd := &cobra.Command{
		Use:   "match <pattern> <text>...",
		Short: "Report whether each text is recognized by the pattern",
		Long: `The match command compiles the pattern once and prints one line per text.

Example:
  regraph match '([[:digit:]]+)' 41 4a
  regraph match '(a\*)' 'a\*'
  regraph match --no-sanitize '(a*)' 'a|'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := nfa.Compile(args[0], nfa.WithSanitize(!noSanitize))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, text := range args[1:] {
				ok, err := n.Match(text)
				switch {
				case errors.Is(err, nfa.ErrSuspiciousInput):
					fmt.Fprintf(out, "%s: false (rejected: %v)\n", text, err)
				case err != nil:
					return err
				default:
					fmt.Fprintf(out, "%s: %t\n", text, ok)
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&noSanitize, "no-sanitize", false, "Match text containing operator characters")

	return cmd
}
