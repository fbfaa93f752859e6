// market/market.go
package market

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

// ErrNotFound is returned by Get for symbols the market does not quote.
// Callers treat it as a user error, not a fault.
var ErrNotFound = errors.New("symbol not found")

// tickRange is the half-width of the uniform percentage draw applied by
// Tick: each step moves a price by pct in [-tickRange, +tickRange] percent.
const tickRange = 3.0

// Market holds the set of tradable instruments keyed by upper-cased symbol.
// Iteration order is insertion order so listings stay stable across ticks.
//
// Market is not safe for concurrent use; the simulator is single-threaded.
type Market struct {
	instruments map[string]*Instrument
	order       []string

	// draw returns the percentage change for one instrument for one tick,
	// in [-tickRange, +tickRange]. Tests replace it to pin exact draws.
	draw func() float64
}

func New() *Market {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Market{
		instruments: make(map[string]*Instrument),
		draw: func() float64 {
			return rng.Float64()*2*tickRange - tickRange
		},
	}
}

// Add registers an instrument. Symbols are normalized to upper case;
// re-adding an existing symbol replaces it (last write wins) but keeps its
// original listing slot.
func (m *Market) Add(symbol, name string, price float64) {
	sym := strings.ToUpper(symbol)
	if _, ok := m.instruments[sym]; !ok {
		m.order = append(m.order, sym)
	}
	m.instruments[sym] = NewInstrument(sym, name, price)
}

// Get looks up an instrument case-insensitively.
func (m *Market) Get(symbol string) (*Instrument, error) {
	in, ok := m.instruments[strings.ToUpper(symbol)]
	if !ok {
		return nil, ErrNotFound
	}
	return in, nil
}

// List returns the instruments in insertion order.
func (m *Market) List() []*Instrument {
	out := make([]*Instrument, 0, len(m.order))
	for _, sym := range m.order {
		out = append(out, m.instruments[sym])
	}
	return out
}

// Len returns the number of quoted instruments.
func (m *Market) Len() int { return len(m.order) }

// Tick advances every price by one simulated day: an independent uniform
// draw in [-3%, +3%] per instrument, clamped to PriceFloor.
func (m *Market) Tick() {
	for _, sym := range m.order {
		in := m.instruments[sym]
		pct := m.draw()
		in.setPrice(in.price * (1 + pct/100))
	}
}
