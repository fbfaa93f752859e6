// sim/valuation.go
package sim

import (
	"github.com/rustyeddy/papertrade/ledger"
	"github.com/rustyeddy/papertrade/market"
)

// MarketValue marks every held position to the current market price.
// Symbols the market no longer quotes contribute zero rather than failing;
// a stale holding must not break valuation.
func MarketValue(acct *ledger.Account, mkt *market.Market) float64 {
	total := 0.0
	for sym, qty := range acct.Positions() {
		in, err := mkt.Get(sym)
		if err != nil {
			continue
		}
		total += in.Price() * float64(qty)
	}
	return total
}

// TotalValue is cash plus mark-to-market holdings value.
func TotalValue(acct *ledger.Account, mkt *market.Market) float64 {
	return acct.Cash() + MarketValue(acct, mkt)
}

// PerformancePoint is one snapshot with its percentage change relative to
// the first snapshot in the series.
type PerformancePoint struct {
	ledger.Snapshot
	ChangePct float64
}

// PerformancePoints reports every snapshot against the series baseline
// (the first snapshot). An empty series yields an empty report; a zero
// baseline makes percentage change undefined and returns ErrZeroBaseline.
func PerformancePoints(acct *ledger.Account) ([]PerformancePoint, error) {
	series := acct.Performance()
	if len(series) == 0 {
		return nil, nil
	}

	first := series[0]
	if first.TotalValue == 0 {
		return nil, ErrZeroBaseline
	}

	out := make([]PerformancePoint, 0, len(series))
	for _, s := range series {
		out = append(out, PerformancePoint{
			Snapshot:  s,
			ChangePct: (s.TotalValue - first.TotalValue) / first.TotalValue * 100,
		})
	}
	return out, nil
}
