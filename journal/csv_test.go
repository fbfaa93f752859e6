package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/papertrade/ledger"
)

func newCSVJournal(t *testing.T) (*CSVJournal, string, string) {
	t.Helper()
	dir := t.TempDir()
	txPath := filepath.Join(dir, "transactions.csv")
	snapPath := filepath.Join(dir, "snapshots.csv")
	j, err := NewCSV(txPath, snapPath)
	assert.NoError(t, err)
	return j, txPath, snapPath
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)
	return rows
}

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	j, txPath, snapPath := newCSVJournal(t)
	assert.NoError(t, j.Close())

	txRows := readCSV(t, txPath)
	snapRows := readCSV(t, snapPath)

	wantTx := []string{"id", "date", "symbol", "side", "quantity", "price", "amount"}
	assert.Equal(t, wantTx, txRows[0])

	wantSnap := []string{"date", "total_value"}
	assert.Equal(t, wantSnap, snapRows[0])
}

func TestCSVJournalRecordTransaction(t *testing.T) {
	t.Parallel()

	j, txPath, _ := newCSVJournal(t)

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	tx := ledger.NewTransaction(date, "AAPL", ledger.Buy, 10, 190.00)
	assert.NoError(t, j.RecordTransaction(tx))
	assert.NoError(t, j.Close())

	rows := readCSV(t, txPath)
	assert.Len(t, rows, 2)
	got := rows[1]
	assert.Equal(t, tx.ID, got[0])
	assert.Equal(t, "2024-06-03T00:00:00Z", got[1])
	assert.Equal(t, "AAPL", got[2])
	assert.Equal(t, "BUY", got[3])
	assert.Equal(t, "10", got[4])
	assert.Equal(t, "190.00", got[5])
	assert.Equal(t, "1900.00", got[6])
}

func TestCSVJournalRecordSnapshot(t *testing.T) {
	t.Parallel()

	j, _, snapPath := newCSVJournal(t)

	date := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, j.RecordSnapshot(ledger.Snapshot{Date: date, TotalValue: 10100.5}))
	assert.NoError(t, j.Close())

	rows := readCSV(t, snapPath)
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"2024-06-04T00:00:00Z", "10100.50"}, rows[1])
}
