package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/papertrade/ledger"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordTransaction(t ledger.Transaction) error {
	_, err := j.db.Exec(`
		INSERT INTO transactions
		(id, date, symbol, side, quantity, price, amount)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.Symbol, t.Side.String(), t.Quantity, t.Price, t.Amount,
	)
	return err
}

func (j *SQLiteJournal) RecordSnapshot(s ledger.Snapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO snapshots (date, total_value) VALUES (?, ?)`,
		s.Date, s.TotalValue,
	)
	return err
}

// Transactions returns every journaled trade in insertion (ULID) order.
func (j *SQLiteJournal) Transactions() ([]ledger.Transaction, error) {
	rows, err := j.db.Query(`
		SELECT id, date, symbol, side, quantity, price, amount
		FROM transactions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.Transaction
	for rows.Next() {
		var t ledger.Transaction
		var date time.Time
		var side string
		if err := rows.Scan(&t.ID, &date, &t.Symbol, &side, &t.Quantity, &t.Price, &t.Amount); err != nil {
			return nil, err
		}
		t.Date = date
		if t.Side, err = ledger.ParseSide(side); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Snapshots returns the journaled performance series in date order.
func (j *SQLiteJournal) Snapshots() ([]ledger.Snapshot, error) {
	rows, err := j.db.Query(`SELECT date, total_value FROM snapshots ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.Snapshot
	for rows.Next() {
		var s ledger.Snapshot
		if err := rows.Scan(&s.Date, &s.TotalValue); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
