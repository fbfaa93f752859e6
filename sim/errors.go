package sim

import "errors"

// Trading errors are user errors, not faults: every one of them aborts the
// operation before any ledger mutation, so a failed call leaves cash,
// positions, and the transaction log exactly as they were.
var (
	ErrUnknownSymbol    = errors.New("unknown symbol")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrNotOwned         = errors.New("position not owned")
	ErrInsufficientCash = errors.New("insufficient cash")

	// ErrZeroBaseline guards the performance report when the first
	// snapshot's value is zero and percentage change is undefined.
	ErrZeroBaseline = errors.New("performance baseline is zero")
)
