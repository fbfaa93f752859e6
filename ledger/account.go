// ledger/account.go
package ledger

import "sort"

// Epsilon is the tolerance used when comparing cash amounts. Costs are
// float products of price and quantity, so the solvency gate allows
// rounding error of this size.
const Epsilon = 1e-9

// Account owns the four pieces of ledger state: cash, positions, the
// transaction log, and the performance series. All mutation goes through
// its methods; accessors hand out copies so callers cannot break the
// invariants (cash >= -Epsilon, every stored position > 0, logs
// append-only).
//
// Account is not safe for concurrent use.
type Account struct {
	cash         float64
	positions    map[string]int
	transactions []Transaction
	performance  []Snapshot
}

func NewAccount(cash float64) *Account {
	return &Account{
		cash:      cash,
		positions: make(map[string]int),
	}
}

// Cash returns the current cash balance.
func (a *Account) Cash() float64 { return a.cash }

// SetCash replaces the balance outright. Persistence load uses this so a
// stored balance overrides, rather than adds to, the opening default.
func (a *Account) SetCash(amount float64) { a.cash = amount }

// Deposit increases cash unconditionally.
func (a *Account) Deposit(amount float64) { a.cash += amount }

// Withdraw decreases cash only if the full amount is covered (within
// Epsilon). It reports false and leaves the balance untouched otherwise.
// This is the sole solvency gate; buy orders must pass through it before
// touching positions or the log.
func (a *Account) Withdraw(amount float64) bool {
	if amount > a.cash+Epsilon {
		return false
	}
	a.cash -= amount
	return true
}

// PositionOf returns the quantity held, 0 when the symbol is absent.
// Absence means zero: the holdings map never stores zero entries.
func (a *Account) PositionOf(symbol string) int {
	return a.positions[symbol]
}

// AdjustPosition adds delta to the held quantity. It is the only position
// mutation primitive; buys and sells both route through it, and so does
// the holdings loader. A resulting quantity <= 0 removes the entry
// entirely.
func (a *Account) AdjustPosition(symbol string, delta int) {
	q := a.positions[symbol] + delta
	if q <= 0 {
		delete(a.positions, symbol)
		return
	}
	a.positions[symbol] = q
}

// Positions returns a copy of the holdings map.
func (a *Account) Positions() map[string]int {
	out := make(map[string]int, len(a.positions))
	for sym, q := range a.positions {
		out[sym] = q
	}
	return out
}

// Symbols returns held symbols in sorted order, for stable display and
// stable persisted output.
func (a *Account) Symbols() []string {
	syms := make([]string, 0, len(a.positions))
	for sym := range a.positions {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// RecordTransaction appends to the trade log. It never fails and touches
// neither cash nor positions; callers apply those as separate explicit
// steps.
func (a *Account) RecordTransaction(t Transaction) {
	a.transactions = append(a.transactions, t)
}

// Transactions returns a copy of the trade log in append order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// AppendSnapshot adds one point to the performance series. Repeated calls
// on the same date append repeated entries; callers decide when to sample.
func (a *Account) AppendSnapshot(s Snapshot) {
	a.performance = append(a.performance, s)
}

// Performance returns a copy of the snapshot series in append order.
func (a *Account) Performance() []Snapshot {
	out := make([]Snapshot, len(a.performance))
	copy(out, a.performance)
	return out
}
