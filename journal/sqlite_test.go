package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/papertrade/ledger"
)

func newSQLiteJournal(t *testing.T) *SQLiteJournal {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestSQLiteJournalRoundTrip(t *testing.T) {
	j := newSQLiteJournal(t)

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	buy := ledger.NewTransaction(date, "AAPL", ledger.Buy, 10, 190.00)
	sell := ledger.NewTransaction(date.AddDate(0, 0, 1), "AAPL", ledger.Sell, 10, 200.00)

	require.NoError(t, j.RecordTransaction(buy))
	require.NoError(t, j.RecordTransaction(sell))

	got, err := j.Transactions()
	require.NoError(t, err)
	require.Len(t, got, 2)

	// ULID order is insertion order.
	assert.Equal(t, buy.ID, got[0].ID)
	assert.Equal(t, ledger.Buy, got[0].Side)
	assert.Equal(t, 10, got[0].Quantity)
	assert.Equal(t, 190.00, got[0].Price)
	assert.Equal(t, 1900.00, got[0].Amount)
	assert.Equal(t, ledger.Sell, got[1].Side)
	assert.True(t, got[1].Date.Equal(sell.Date))
}

func TestSQLiteJournalSnapshots(t *testing.T) {
	j := newSQLiteJournal(t)

	d1 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	require.NoError(t, j.RecordSnapshot(ledger.Snapshot{Date: d2, TotalValue: 11000}))
	require.NoError(t, j.RecordSnapshot(ledger.Snapshot{Date: d1, TotalValue: 10000}))

	got, err := j.Snapshots()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 10000.0, got[0].TotalValue)
	assert.Equal(t, 11000.0, got[1].TotalValue)
}

func TestSQLiteJournalReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)
	tx := ledger.NewTransaction(time.Now().UTC(), "MSFT", ledger.Buy, 2, 420.00)
	require.NoError(t, j.RecordTransaction(tx))
	require.NoError(t, j.Close())

	j2, err := NewSQLite(path)
	require.NoError(t, err)
	defer j2.Close()

	got, err := j2.Transactions()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tx.ID, got[0].ID)
}
