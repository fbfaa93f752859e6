// market/instrument.go
package market

import (
	"fmt"
	"strings"
)

// PriceFloor is the minimum quoted price. The tick rule can drive a price
// arbitrarily low over many steps; it must never reach zero or go negative.
const PriceFloor = 0.01

// Instrument is a tradable symbol with a display name and a current
// simulated price. Prices are mutated only by Market.Tick.
type Instrument struct {
	Symbol string
	Name   string

	price float64
}

func NewInstrument(symbol, name string, price float64) *Instrument {
	in := &Instrument{
		Symbol: strings.ToUpper(symbol),
		Name:   name,
	}
	in.setPrice(price)
	return in
}

// Price returns the current simulated price.
func (in *Instrument) Price() float64 { return in.price }

// setPrice clamps to PriceFloor. All price writes go through here.
func (in *Instrument) setPrice(p float64) {
	if p < PriceFloor {
		p = PriceFloor
	}
	in.price = p
}

func (in *Instrument) String() string {
	return fmt.Sprintf("%-6s %-18s $%.2f", in.Symbol, in.Name, in.price)
}
