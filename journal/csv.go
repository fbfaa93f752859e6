// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/rustyeddy/papertrade/ledger"
)

type CSVJournal struct {
	transactions *csv.Writer
	snapshots    *csv.Writer
	tf, sf       *os.File
}

func NewCSV(transactionsPath, snapshotsPath string) (*CSVJournal, error) {
	tf, err := os.Create(transactionsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(snapshotsPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	sw := csv.NewWriter(sf)

	if err := tw.Write([]string{"id", "date", "symbol", "side", "quantity", "price", "amount"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"date", "total_value"}); err != nil {
		return nil, err
	}

	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{tw, sw, tf, sf}, nil
}

func (j *CSVJournal) RecordTransaction(t ledger.Transaction) error {
	err := j.transactions.Write([]string{
		t.ID,
		t.Date.Format(time.RFC3339),
		t.Symbol,
		t.Side.String(),
		strconv.Itoa(t.Quantity),
		f(t.Price),
		f(t.Amount),
	})
	if err != nil {
		return err
	}
	j.transactions.Flush()
	return j.transactions.Error()
}

func (j *CSVJournal) RecordSnapshot(s ledger.Snapshot) error {
	err := j.snapshots.Write([]string{
		s.Date.Format(time.RFC3339),
		f(s.TotalValue),
	})
	if err != nil {
		return err
	}
	j.snapshots.Flush()
	return j.snapshots.Error()
}

func (j *CSVJournal) Close() error {
	j.transactions.Flush()
	if err := j.transactions.Error(); err != nil {
		return err
	}
	j.snapshots.Flush()
	if err := j.snapshots.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.sf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
