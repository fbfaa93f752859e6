package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/papertrade/ledger"
	"github.com/rustyeddy/papertrade/market"
)

func TestTotalValue(t *testing.T) {
	mkt := market.New()
	mkt.Add("AAPL", "Apple Inc.", 190.00)

	acct := ledger.NewAccount(5000)
	acct.AdjustPosition("AAPL", 10)

	assert.Equal(t, 1900.00, MarketValue(acct, mkt))
	assert.Equal(t, 6900.00, TotalValue(acct, mkt))
}

func TestMarketValueSkipsDelistedSymbols(t *testing.T) {
	mkt := market.New()
	mkt.Add("AAPL", "Apple Inc.", 190.00)

	acct := ledger.NewAccount(1000)
	acct.AdjustPosition("AAPL", 2)
	acct.AdjustPosition("GONE", 50) // loaded holding no longer quoted

	assert.Equal(t, 380.00, MarketValue(acct, mkt))
	assert.Equal(t, 1380.00, TotalValue(acct, mkt))
}

func TestMarketValueEmptyAccount(t *testing.T) {
	mkt := market.New()
	acct := ledger.NewAccount(42)
	assert.Equal(t, 0.0, MarketValue(acct, mkt))
	assert.Equal(t, 42.0, TotalValue(acct, mkt))
}

func TestPerformancePoints(t *testing.T) {
	acct := ledger.NewAccount(0)
	d1 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	d3 := d1.AddDate(0, 0, 2)
	acct.AppendSnapshot(ledger.Snapshot{Date: d1, TotalValue: 10000})
	acct.AppendSnapshot(ledger.Snapshot{Date: d2, TotalValue: 11000})
	acct.AppendSnapshot(ledger.Snapshot{Date: d3, TotalValue: 9500})

	points, err := PerformancePoints(acct)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, 0.0, points[0].ChangePct)
	assert.InDelta(t, 10.00, points[1].ChangePct, 1e-9)
	assert.InDelta(t, -5.00, points[2].ChangePct, 1e-9)
}

func TestPerformancePointsEmptySeries(t *testing.T) {
	points, err := PerformancePoints(ledger.NewAccount(0))
	assert.NoError(t, err)
	assert.Empty(t, points)
}

func TestPerformancePointsZeroBaseline(t *testing.T) {
	acct := ledger.NewAccount(0)
	acct.AppendSnapshot(ledger.Snapshot{Date: time.Now(), TotalValue: 0})
	acct.AppendSnapshot(ledger.Snapshot{Date: time.Now(), TotalValue: 100})

	points, err := PerformancePoints(acct)
	assert.ErrorIs(t, err, ErrZeroBaseline)
	assert.Nil(t, points)
}
