package sim

import (
	"fmt"
	"time"

	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/ledger"
	"github.com/rustyeddy/papertrade/market"
)

// Engine executes orders against the market and keeps the account's
// invariants intact. It owns the ordering rules: for a buy, the cash
// withdrawal gate runs before any position or log mutation, so a rejected
// order cannot leave partial state behind.
//
// Engine is single-threaded, matching the one-user one-process design.
type Engine struct {
	acct *ledger.Account
	mkt  *market.Market
	jrnl journal.Journal
	now  func() time.Time // injectable for tests
}

func NewEngine(acct *ledger.Account, mkt *market.Market, jrnl journal.Journal) *Engine {
	if jrnl == nil {
		jrnl = journal.Nop{}
	}
	return &Engine{
		acct: acct,
		mkt:  mkt,
		jrnl: jrnl,
		now:  time.Now,
	}
}

func (e *Engine) Account() *ledger.Account { return e.acct }
func (e *Engine) Market() *market.Market   { return e.mkt }

// today returns the current simulated trading date at midnight UTC.
func (e *Engine) today() time.Time {
	y, m, d := e.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Buy purchases qty units at the current price. The withdraw gate is the
// only step that can fail after validation, and it runs first; position
// and log updates happen only once the cash has cleared.
func (e *Engine) Buy(symbol string, qty int) (ledger.Transaction, error) {
	in, err := e.mkt.Get(symbol)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("buy %s: %w", symbol, ErrUnknownSymbol)
	}
	if qty <= 0 {
		return ledger.Transaction{}, fmt.Errorf("buy %s: %w: %d", in.Symbol, ErrInvalidQuantity, qty)
	}

	cost := in.Price() * float64(qty)
	if !e.acct.Withdraw(cost) {
		return ledger.Transaction{}, fmt.Errorf("buy %s: %w: need $%.2f, have $%.2f",
			in.Symbol, ErrInsufficientCash, cost, e.acct.Cash())
	}

	e.acct.AdjustPosition(in.Symbol, qty)
	tx := ledger.NewTransaction(e.today(), in.Symbol, ledger.Buy, qty, in.Price())
	e.acct.RecordTransaction(tx)

	if err := e.jrnl.RecordTransaction(tx); err != nil {
		// The trade stands; only the side journal is behind.
		return tx, fmt.Errorf("journal trade %s: %w", tx.ID, err)
	}
	return tx, nil
}

// Sell disposes qty units at the current price. Proceeds are deposited
// unconditionally once the quantity checks pass.
func (e *Engine) Sell(symbol string, qty int) (ledger.Transaction, error) {
	in, err := e.mkt.Get(symbol)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("sell %s: %w", symbol, ErrUnknownSymbol)
	}

	held := e.acct.PositionOf(in.Symbol)
	if held <= 0 {
		return ledger.Transaction{}, fmt.Errorf("sell %s: %w", in.Symbol, ErrNotOwned)
	}
	if qty <= 0 || qty > held {
		return ledger.Transaction{}, fmt.Errorf("sell %s: %w: %d (held %d)",
			in.Symbol, ErrInvalidQuantity, qty, held)
	}

	proceeds := in.Price() * float64(qty)
	e.acct.Deposit(proceeds)
	e.acct.AdjustPosition(in.Symbol, -qty)
	tx := ledger.NewTransaction(e.today(), in.Symbol, ledger.Sell, qty, in.Price())
	e.acct.RecordTransaction(tx)

	if err := e.jrnl.RecordTransaction(tx); err != nil {
		return tx, fmt.Errorf("journal trade %s: %w", tx.ID, err)
	}
	return tx, nil
}

// RecordSnapshot samples the current total account value into the
// performance series. Repeated calls on one date append repeated points.
func (e *Engine) RecordSnapshot() (ledger.Snapshot, error) {
	s := ledger.Snapshot{
		Date:       e.today(),
		TotalValue: TotalValue(e.acct, e.mkt),
	}
	e.acct.AppendSnapshot(s)

	if err := e.jrnl.RecordSnapshot(s); err != nil {
		return s, fmt.Errorf("journal snapshot: %w", err)
	}
	return s, nil
}

// AdvanceDay ticks every market price one step and samples a snapshot of
// the resulting account value.
func (e *Engine) AdvanceDay() (ledger.Snapshot, error) {
	e.mkt.Tick()
	return e.RecordSnapshot()
}
