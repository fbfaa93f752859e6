package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithdrawGate(t *testing.T) {
	a := NewAccount(100)

	assert.False(t, a.Withdraw(100.01))
	assert.Equal(t, 100.00, a.Cash())

	assert.True(t, a.Withdraw(60))
	assert.InDelta(t, 40.00, a.Cash(), 1e-9)

	assert.True(t, a.Withdraw(40))
	assert.InDelta(t, 0.00, a.Cash(), 1e-9)
	assert.GreaterOrEqual(t, a.Cash(), -Epsilon)
}

func TestWithdrawWithinEpsilon(t *testing.T) {
	// A cost that exceeds cash by float noise must still clear.
	a := NewAccount(190.00 * 10)
	assert.True(t, a.Withdraw(190.00*10+1e-10))
	assert.GreaterOrEqual(t, a.Cash(), -Epsilon)
}

func TestDeposit(t *testing.T) {
	a := NewAccount(0)
	a.Deposit(250.5)
	a.Deposit(0)
	assert.Equal(t, 250.5, a.Cash())
}

func TestSetCashReplaces(t *testing.T) {
	a := NewAccount(10000)
	a.SetCash(4321.75)
	assert.Equal(t, 4321.75, a.Cash())
}

func TestAdjustPositionCreatesAndAccumulates(t *testing.T) {
	a := NewAccount(0)

	assert.Equal(t, 0, a.PositionOf("AAPL"))
	a.AdjustPosition("AAPL", 10)
	assert.Equal(t, 10, a.PositionOf("AAPL"))
	a.AdjustPosition("AAPL", 5)
	assert.Equal(t, 15, a.PositionOf("AAPL"))
}

func TestAdjustPositionRemovesNonPositive(t *testing.T) {
	a := NewAccount(0)
	a.AdjustPosition("AAPL", 10)

	a.AdjustPosition("AAPL", -10)
	_, present := a.Positions()["AAPL"]
	assert.False(t, present, "zero position must be removed, not stored")
	assert.Equal(t, 0, a.PositionOf("AAPL"))

	// Driving below zero also removes rather than storing a negative.
	a.AdjustPosition("MSFT", 3)
	a.AdjustPosition("MSFT", -7)
	_, present = a.Positions()["MSFT"]
	assert.False(t, present)
}

func TestPositionsNeverStoreNonPositive(t *testing.T) {
	a := NewAccount(0)
	deltas := []int{5, -2, -3, 4, -4, 7, -10, 2}
	for _, d := range deltas {
		a.AdjustPosition("TSLA", d)
		for sym, q := range a.Positions() {
			assert.Greater(t, q, 0, "symbol %s stored with quantity %d", sym, q)
		}
	}
}

func TestSymbolsSorted(t *testing.T) {
	a := NewAccount(0)
	a.AdjustPosition("TSLA", 1)
	a.AdjustPosition("AAPL", 2)
	a.AdjustPosition("MSFT", 3)
	assert.Equal(t, []string{"AAPL", "MSFT", "TSLA"}, a.Symbols())
}

func TestTransactionLogAppendOnly(t *testing.T) {
	a := NewAccount(0)
	d := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t1 := NewTransaction(d, "AAPL", Buy, 10, 190.00)
	t2 := NewTransaction(d, "AAPL", Sell, 4, 200.00)
	a.RecordTransaction(t1)
	a.RecordTransaction(t2)

	log := a.Transactions()
	assert.Len(t, log, 2)
	assert.Equal(t, t1.ID, log[0].ID)
	assert.Equal(t, t2.ID, log[1].ID)
	assert.Equal(t, 1900.00, log[0].Amount)
	assert.Equal(t, 800.00, log[1].Amount)

	// Mutating the returned slice must not touch the log.
	log[0].Quantity = 999
	assert.Equal(t, 10, a.Transactions()[0].Quantity)
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := NewAccount(0)
	a.AdjustPosition("AAPL", 10)

	a.Positions()["AAPL"] = -5
	assert.Equal(t, 10, a.PositionOf("AAPL"))

	a.AppendSnapshot(Snapshot{Date: time.Now(), TotalValue: 1})
	perf := a.Performance()
	perf[0].TotalValue = 99
	assert.Equal(t, 1.0, a.Performance()[0].TotalValue)
}

func TestSnapshotsAllowDuplicateDates(t *testing.T) {
	a := NewAccount(0)
	d := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	a.AppendSnapshot(Snapshot{Date: d, TotalValue: 10000})
	a.AppendSnapshot(Snapshot{Date: d, TotalValue: 10000})
	assert.Len(t, a.Performance(), 2)
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "BUY", Buy.String())
	assert.Equal(t, "SELL", Sell.String())

	s, err := ParseSide("SELL")
	assert.NoError(t, err)
	assert.Equal(t, Sell, s)
	_, err = ParseSide("HOLD")
	assert.Error(t, err)
}
