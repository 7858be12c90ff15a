package types

import "time"

// Trade is an executed order fill with its realized profit or loss, as
// recorded by the journal.
type Trade struct {
	Order         OrderHandle `yaml:"order" json:"order"`
	ExecutedAt    time.Time   `yaml:"executed_at" json:"executed_at"`
	ExecutedQty   float64     `yaml:"executed_qty" json:"executed_qty"`
	ExecutedPrice float64     `yaml:"executed_price" json:"executed_price"`
	// PnL is the realized profit or loss of the fill. Non-zero only when the
	// fill reduces an existing position.
	PnL          float64 `yaml:"pnl" json:"pnl"`
	StrategyName string  `yaml:"strategy_name" json:"strategy_name"`
	Reason       Reason  `yaml:"reason" json:"reason"`
}
