package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/papertrade/config"
	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/ledger"
	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/sim"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted example session",
	Long: `Run a scripted, non-interactive session against the default market.

Buys a starter position, advances the market a number of simulated days,
sells out, and prints the resulting performance history. Nothing is
persisted.

Example:
  papertrade demo --days 10`,
	RunE: runDemo,
}

var demoDays int

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVar(&demoDays, "days", 5, "number of simulated days")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	mkt := market.New()
	for _, in := range cfg.Market.Instruments {
		mkt.Add(in.Symbol, in.Name, in.Price)
	}

	engine := sim.NewEngine(ledger.NewAccount(cfg.Account.OpeningCash), mkt, journal.Nop{})
	if _, err := engine.RecordSnapshot(); err != nil {
		return err
	}

	tx, err := engine.Buy("AAPL", 10)
	if err != nil {
		return err
	}
	fmt.Println("Bought:", tx)

	for i := 0; i < demoDays; i++ {
		if _, err := engine.AdvanceDay(); err != nil {
			return err
		}
	}

	tx, err = engine.Sell("AAPL", 10)
	if err != nil {
		return err
	}
	fmt.Println("Sold:  ", tx)

	printPerformance(engine.Account())
	printPortfolio(engine)
	return nil
}
