package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regraph/internal/logger"
)

// newRootCmd assembles the command tree. Tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	var debug, jsonLog bool

	root := &cobra.Command{
		Use:   "regraph",
		Short: "Regular expressions as graphs",
		Long: `regraph compiles patterns into epsilon-NFAs backed by a directed graph,
matches text against them, tokenizes files with NFA-confirmed number and
operator recognition, and computes paths on edge-weighted digraphs.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logger.Options{
				Enabled: debug,
				Level:   slog.LevelDebug,
				Writer:  cmd.ErrOrStderr(),
				JSON:    jsonLog,
			})
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Log diagnostics to stderr")
	root.PersistentFlags().BoolVar(&jsonLog, "log-json", false, "Emit debug logs as JSON")

	root.AddCommand(newMatchCmd(), newNFACmd(), newTokensCmd(), newPathsCmd())

	return root
}
