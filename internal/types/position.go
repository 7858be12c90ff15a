package types

import "time"

// PositionSide is the direction of an open position.
type PositionSide string

const (
	PositionSideLong  PositionSide = "LONG"
	PositionSideShort PositionSide = "SHORT"
)

// Position is the per-instrument bookkeeping record. At most one exists per
// instrument at any time; it is created on entry and deleted on exit.
type Position struct {
	Symbol     string       `yaml:"symbol" json:"symbol"`
	Side       PositionSide `yaml:"side" json:"side"`
	EntryPrice float64      `yaml:"entry_price" json:"entry_price"`
	Quantity   float64      `yaml:"quantity" json:"quantity"`
	OpenedAt   time.Time    `yaml:"opened_at" json:"opened_at"`
	// OrderID is the handle of the order that opened the position
	OrderID string `yaml:"order_id" json:"order_id"`
	// Extra holds strategy-specific scalar state tracked across candles,
	// e.g. a trailing high-water mark or the spread premium at entry.
	Extra map[string]float64 `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// SideForAction returns the position side an entry action opens.
func SideForAction(action Action) PositionSide {
	if action == ActionSell {
		return PositionSideShort
	}

	return PositionSideLong
}
