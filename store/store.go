// store/store.go
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/papertrade/ledger"
)

// Flat-file account store. One value in cash.txt, one CSV row per holding,
// one CSV row per performance snapshot. Loading is tolerant: a malformed
// row is skipped and counted, never aborting the rest of the file, and a
// missing file simply means nothing to load.
const (
	CashFile     = "cash.txt"
	HoldingsFile = "holdings.csv"
	HistoryFile  = "history.csv"
)

type Store struct {
	dir string
	log *zap.Logger
}

func New(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string { return s.dir }

// LoadStats reports what a Load actually applied, including how many rows
// were skipped as malformed.
type LoadStats struct {
	CashLoaded  bool
	Holdings    int
	Snapshots   int
	SkippedRows int
}

// Load restores persisted state into acct. The stored cash balance
// replaces the account's opening balance outright; holdings rows are
// applied through AdjustPosition, so acct must hold no positions yet.
func (s *Store) Load(acct *ledger.Account) LoadStats {
	var stats LoadStats
	s.loadCash(acct, &stats)
	s.loadHoldings(acct, &stats)
	s.loadHistory(acct, &stats)

	s.log.Info("account loaded",
		zap.String("dir", s.dir),
		zap.Bool("cash", stats.CashLoaded),
		zap.Int("holdings", stats.Holdings),
		zap.Int("snapshots", stats.Snapshots),
		zap.Int("skipped_rows", stats.SkippedRows),
	)
	return stats
}

func (s *Store) loadCash(acct *ledger.Account, stats *LoadStats) {
	data, err := os.ReadFile(filepath.Join(s.dir, CashFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("read cash file", zap.Error(err))
		}
		return
	}

	cash, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		s.log.Warn("malformed cash value", zap.Error(err))
		stats.SkippedRows++
		return
	}
	acct.SetCash(cash)
	stats.CashLoaded = true
}

func (s *Store) loadHoldings(acct *ledger.Account, stats *LoadStats) {
	for _, row := range s.readRows(HoldingsFile) {
		if len(row) != 2 {
			stats.SkippedRows++
			continue
		}
		sym := strings.ToUpper(strings.TrimSpace(row[0]))
		qty, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil || sym == "" {
			s.log.Warn("malformed holdings row", zap.Strings("row", row))
			stats.SkippedRows++
			continue
		}
		acct.AdjustPosition(sym, qty)
		stats.Holdings++
	}
}

func (s *Store) loadHistory(acct *ledger.Account, stats *LoadStats) {
	for _, row := range s.readRows(HistoryFile) {
		if len(row) != 2 {
			stats.SkippedRows++
			continue
		}
		date, derr := time.ParseInLocation(ledger.DateFormat, strings.TrimSpace(row[0]), time.UTC)
		value, verr := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if derr != nil || verr != nil {
			s.log.Warn("malformed history row", zap.Strings("row", row))
			stats.SkippedRows++
			continue
		}
		// File order is trusted to be chronological; not re-validated.
		acct.AppendSnapshot(ledger.Snapshot{Date: date, TotalValue: value})
		stats.Snapshots++
	}
}

// readRows returns the data rows of a headered CSV file, or nothing when
// the file is absent or unreadable.
func (s *Store) readRows(name string) [][]string {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("open store file", zap.String("file", name), zap.Error(err))
		}
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row length is validated per row
	rows, err := r.ReadAll()
	if err != nil {
		s.log.Warn("read store file", zap.String("file", name), zap.Error(err))
		return nil
	}
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

// Save writes the mirror of Load: current cash, one row per non-empty
// position in sorted symbol order, one row per snapshot in series order.
// Each file is written independently; a failure on one does not stop the
// others.
func (s *Store) Save(acct *ledger.Account) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	var errs []error

	cash := strconv.FormatFloat(acct.Cash(), 'f', -1, 64) + "\n"
	if err := os.WriteFile(filepath.Join(s.dir, CashFile), []byte(cash), 0o644); err != nil {
		s.log.Warn("save cash", zap.Error(err))
		errs = append(errs, fmt.Errorf("save cash: %w", err))
	}

	holdings := [][]string{{"symbol", "quantity"}}
	positions := acct.Positions()
	for _, sym := range acct.Symbols() {
		holdings = append(holdings, []string{sym, strconv.Itoa(positions[sym])})
	}
	if err := s.writeRows(HoldingsFile, holdings); err != nil {
		errs = append(errs, fmt.Errorf("save holdings: %w", err))
	}

	history := [][]string{{"date", "total_value"}}
	for _, snap := range acct.Performance() {
		history = append(history, []string{
			snap.Date.Format(ledger.DateFormat),
			strconv.FormatFloat(snap.TotalValue, 'f', -1, 64),
		})
	}
	if err := s.writeRows(HistoryFile, history); err != nil {
		errs = append(errs, fmt.Errorf("save history: %w", err))
	}

	return errors.Join(errs...)
}

func (s *Store) writeRows(name string, rows [][]string) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		s.log.Warn("create store file", zap.String("file", name), zap.Error(err))
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}
