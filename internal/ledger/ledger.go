// Package ledger tracks open positions and the base-to-leg relationships of
// multi-leg option strategies. It replaces the per-strategy order maps with an
// explicit store passed to every callback; the at-most-one-position-per-
// instrument invariant is enforced by the entry/exit selectors, the ledger is
// a passive store.
package ledger

import (
	"time"

	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
)

// Ledger holds at most one open position per instrument. It is scoped to one
// strategy run and only touched from the host's single callback thread, so no
// locking is needed.
type Ledger struct {
	positions map[string]*types.Position
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		positions: make(map[string]*types.Position),
	}
}

// Get returns the open position for an instrument, or false if flat.
func (l *Ledger) Get(instrument types.Instrument) (*types.Position, bool) {
	position, ok := l.positions[instrument.Key()]

	return position, ok
}

// Open records a new position. Opening over an existing record is a bug in
// the caller and returns an error rather than silently overwriting.
func (l *Ledger) Open(instrument types.Instrument, side types.PositionSide, entryPrice, quantity float64, openedAt time.Time, orderID string) (*types.Position, error) {
	key := instrument.Key()
	if _, exists := l.positions[key]; exists {
		return nil, errors.Newf(errors.ErrCodePositionExists, "position already open for %s", key)
	}

	position := &types.Position{
		Symbol:     key,
		Side:       side,
		EntryPrice: entryPrice,
		Quantity:   quantity,
		OpenedAt:   openedAt,
		OrderID:    orderID,
		Extra:      make(map[string]float64),
	}
	l.positions[key] = position

	return position, nil
}

// Close deletes the position record for an instrument. Closing a flat
// instrument is a no-op, matching the unconditional close in the exit step.
func (l *Ledger) Close(instrument types.Instrument) {
	delete(l.positions, instrument.Key())
}

// Len returns the number of open positions.
func (l *Ledger) Len() int {
	return len(l.positions)
}

// Symbols returns the keys of all open positions.
func (l *Ledger) Symbols() []string {
	symbols := make([]string, 0, len(l.positions))
	for symbol := range l.positions {
		symbols = append(symbols, symbol)
	}

	return symbols
}
