// journal/journal.go
package journal

import "github.com/rustyeddy/papertrade/ledger"

// Journal receives every executed trade and every performance snapshot as
// they happen, for durable session records outside the flat-file account
// store. Implementations: SQLite, CSV, Nop.
type Journal interface {
	RecordTransaction(ledger.Transaction) error
	RecordSnapshot(ledger.Snapshot) error
	Close() error
}

// Nop discards everything. Used when journaling is disabled.
type Nop struct{}

func (Nop) RecordTransaction(ledger.Transaction) error { return nil }
func (Nop) RecordSnapshot(ledger.Snapshot) error       { return nil }
func (Nop) Close() error                               { return nil }
