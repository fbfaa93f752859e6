package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "papertrade",
	Short: "A single-user stock portfolio simulator",
	Long: `Papertrade is a console stock trading simulator written in Go.

It provides:
  - A simulated market advanced by a bounded daily random walk
  - Buy/sell execution at current simulated prices
  - A cash/position ledger with strict solvency invariants
  - Performance tracking and mark-to-market valuation
  - Flat-file persistence plus an optional trade journal (SQLite or CSV)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
