// Package id issues ULID strings for ledger records.
//
// ULIDs sort lexicographically by generation time, which keeps transaction
// logs and journal tables naturally ordered. The entropy source is
// monotonic so IDs minted within the same millisecond still sort in
// creation order.
package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono = ulid.Monotonic(rand.Reader, 0)
)

// New returns a fresh time-sortable identifier.
func New() string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), mono).String()
}
