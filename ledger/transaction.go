// ledger/transaction.go
package ledger

import (
	"fmt"
	"time"

	"github.com/rustyeddy/papertrade/internal/id"
)

// Side is the direction of a trade.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide converts a stored side string back to a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("parse side: unknown value %q", s)
	}
}

// Transaction is one executed trade. Records are immutable once created
// and live in the account's append-only log.
type Transaction struct {
	ID       string
	Date     time.Time
	Symbol   string
	Side     Side
	Quantity int
	Price    float64
	Amount   float64 // Price * Quantity, fixed at execution
}

// NewTransaction builds a trade record priced at execution time.
func NewTransaction(date time.Time, symbol string, side Side, qty int, price float64) Transaction {
	return Transaction{
		ID:       id.New(),
		Date:     date,
		Symbol:   symbol,
		Side:     side,
		Quantity: qty,
		Price:    price,
		Amount:   price * float64(qty),
	}
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %d @ $%.2f = $%.2f",
		t.Date.Format(DateFormat), t.Side, t.Symbol, t.Quantity, t.Price, t.Amount)
}

// Snapshot is a timestamped total-account-value record. The performance
// series may hold several snapshots for the same date; nothing dedups.
type Snapshot struct {
	Date       time.Time
	TotalValue float64
}

// DateFormat is the ISO calendar-date layout used for snapshots and
// persisted history rows.
const DateFormat = "2006-01-02"
