package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/papertrade/config"
	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/ledger"
	"github.com/rustyeddy/papertrade/logger"
	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/sim"
	"github.com/rustyeddy/papertrade/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive trading session",
	Long: `Start the interactive menu-driven trading session.

State is loaded from the data directory at startup and saved back on exit.

Example:
  papertrade run --config papertrade.yaml`,
	RunE: runRun,
}

var (
	runConfigPath string
	runDataDir    string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	runCmd.Flags().StringVarP(&runDataDir, "data-dir", "d", "", "override the data directory")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(runConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if runDataDir != "" {
		cfg.Data.Dir = runDataDir
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	mkt := market.New()
	for _, in := range cfg.Market.Instruments {
		mkt.Add(in.Symbol, in.Name, in.Price)
	}

	acct := ledger.NewAccount(cfg.Account.OpeningCash)
	st := store.New(cfg.Data.Dir, log)
	stats := st.Load(acct)
	if stats.SkippedRows > 0 {
		log.Warn("some persisted rows were malformed and skipped",
			zap.Int("skipped_rows", stats.SkippedRows))
	}

	jrnl, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer jrnl.Close()

	engine := sim.NewEngine(acct, mkt, jrnl)
	if len(acct.Performance()) == 0 {
		if _, err := engine.RecordSnapshot(); err != nil {
			log.Warn("initial snapshot", zap.Error(err))
		}
	}

	session(engine, st, log)
	return nil
}

func openJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "csv":
		return journal.NewCSV(cfg.TransactionsFile, cfg.SnapshotsFile)
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	default:
		return journal.Nop{}, nil
	}
}

// session runs the menu loop until the user saves and exits.
func session(engine *sim.Engine, st *store.Store, log *zap.Logger) {
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\n===== PAPERTRADE =====")
		fmt.Println("1) View Market")
		fmt.Println("2) Advance Market (new day)")
		fmt.Println("3) Buy")
		fmt.Println("4) Sell")
		fmt.Println("5) View Portfolio")
		fmt.Println("6) View Performance")
		fmt.Println("7) View Transactions")
		fmt.Println("8) Record Snapshot (today)")
		fmt.Println("9) Save & Exit")
		fmt.Print("Choose: ")

		word, ok := readWord(in)
		if !ok {
			// stdin closed
			fmt.Println()
			return
		}
		choice, err := strconv.Atoi(word)
		if err != nil {
			fmt.Println("Invalid input.")
			continue
		}

		switch choice {
		case 1:
			printMarket(engine.Market())
		case 2:
			if _, err := engine.AdvanceDay(); err != nil {
				log.Warn("advance day", zap.Error(err))
			}
			fmt.Println("Market advanced one day.")
		case 3:
			trade(engine, in, ledger.Buy)
		case 4:
			trade(engine, in, ledger.Sell)
		case 5:
			printPortfolio(engine)
		case 6:
			printPerformance(engine.Account())
		case 7:
			printTransactions(engine.Account())
		case 8:
			if _, err := engine.RecordSnapshot(); err != nil {
				log.Warn("record snapshot", zap.Error(err))
			}
			fmt.Println("Snapshot recorded.")
		case 9:
			if err := st.Save(engine.Account()); err != nil {
				log.Error("save account", zap.Error(err))
				fmt.Println("Save failed; see log.")
			} else {
				fmt.Println("Saved. Bye!")
			}
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func trade(engine *sim.Engine, in *bufio.Scanner, side ledger.Side) {
	fmt.Printf("Enter symbol to %s: ", side)
	sym, ok := readWord(in)
	if !ok {
		fmt.Println("Invalid input.")
		return
	}

	instr, err := engine.Market().Get(sym)
	if err != nil {
		fmt.Println("Unknown symbol.")
		return
	}

	if side == ledger.Sell {
		fmt.Printf("You own %d. Quantity to sell: ", engine.Account().PositionOf(instr.Symbol))
	} else {
		fmt.Printf("Price $%.2f. Quantity: ", instr.Price())
	}
	qty, ok := readInt(in)
	if !ok {
		fmt.Println("Invalid input.")
		return
	}

	var tx ledger.Transaction
	if side == ledger.Buy {
		tx, err = engine.Buy(instr.Symbol, qty)
	} else {
		tx, err = engine.Sell(instr.Symbol, qty)
	}
	if err != nil {
		fmt.Println(tradeErrorMessage(err))
		return
	}
	if side == ledger.Buy {
		fmt.Println("Bought:", tx)
	} else {
		fmt.Println("Sold:", tx)
	}
}

// tradeErrorMessage maps engine errors to the short messages the menu
// shows; anything unexpected is printed as-is.
func tradeErrorMessage(err error) string {
	switch {
	case errors.Is(err, sim.ErrUnknownSymbol):
		return "Unknown symbol."
	case errors.Is(err, sim.ErrInsufficientCash):
		return "Insufficient cash."
	case errors.Is(err, sim.ErrNotOwned):
		return "You do not own that symbol."
	case errors.Is(err, sim.ErrInvalidQuantity):
		return "Invalid quantity."
	default:
		return err.Error()
	}
}

func printMarket(mkt *market.Market) {
	fmt.Println("\n--- MARKET DATA ---")
	fmt.Printf("%-6s %-18s %10s\n", "SYM", "NAME", "PRICE")
	for _, in := range mkt.List() {
		fmt.Printf("%-6s %-18s $%10.2f\n", in.Symbol, in.Name, in.Price())
	}
}

func printPortfolio(engine *sim.Engine) {
	acct, mkt := engine.Account(), engine.Market()

	fmt.Println("\n--- PORTFOLIO ---")
	fmt.Printf("Cash: $%.2f\n", acct.Cash())

	syms := acct.Symbols()
	if len(syms) == 0 {
		fmt.Println("(no positions)")
	} else {
		fmt.Printf("%-6s %10s %12s %14s\n", "SYM", "QTY", "PRICE", "MKT VALUE")
		positions := acct.Positions()
		for _, sym := range syms {
			price := 0.0
			if in, err := mkt.Get(sym); err == nil {
				price = in.Price()
			}
			qty := positions[sym]
			fmt.Printf("%-6s %10d %12.2f %14.2f\n", sym, qty, price, price*float64(qty))
		}
	}
	fmt.Printf("Total Account Value: $%.2f\n", sim.TotalValue(acct, mkt))
}

func printPerformance(acct *ledger.Account) {
	fmt.Println("\n--- PERFORMANCE HISTORY ---")
	points, err := sim.PerformancePoints(acct)
	if err != nil {
		fmt.Println("(baseline value is zero; percentage change not computable)")
		return
	}
	if len(points) == 0 {
		fmt.Println("(no snapshots yet — advance the market or record a snapshot)")
		return
	}
	for _, p := range points {
		fmt.Printf("%s  $%.2f  (%+.2f%% since start)\n",
			p.Date.Format(ledger.DateFormat), p.TotalValue, p.ChangePct)
	}
}

func printTransactions(acct *ledger.Account) {
	fmt.Println("\n--- TRANSACTIONS ---")
	log := acct.Transactions()
	if len(log) == 0 {
		fmt.Println("(none)")
		return
	}
	for _, tx := range log {
		fmt.Println(tx)
	}
}

// readWord returns the next non-blank line, or false once stdin is closed.
func readWord(in *bufio.Scanner) (string, bool) {
	for in.Scan() {
		word := strings.TrimSpace(in.Text())
		if word != "" {
			return word, true
		}
	}
	return "", false
}

func readInt(in *bufio.Scanner) (int, bool) {
	word, ok := readWord(in)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return 0, false
	}
	return n, true
}
