package types

import "time"

// Action is the discrete decision a strategy attaches to a selected instrument.
type Action string

const (
	// ActionBuy enters a long position
	ActionBuy Action = "BUY"
	// ActionSell enters a short position
	ActionSell Action = "SELL"
	// ActionExit closes the open position
	ActionExit Action = "EXIT"
	// ActionNone takes no action this candle
	ActionNone Action = "NONE"
)

// Crossover codes produced by the signal reducers. Matches the ±1/0
// convention used across the strategy corpus.
const (
	CrossoverUp   = 1
	CrossoverDown = -1
	CrossoverNone = 0
)

// Signal is a transient per-candle evaluation result. Never persisted.
type Signal struct {
	// Time is the candle time the signal was computed at
	Time time.Time
	// Symbol is the instrument the signal applies to
	Symbol string
	// Action is the discrete decision
	Action Action
	// Reason is a human-readable explanation
	Reason string
	// RawValue carries the indicator values behind the decision
	RawValue map[string]float64
}

// EntryAction maps a crossover code to an entry action.
func EntryAction(crossover int) Action {
	switch crossover {
	case CrossoverUp:
		return ActionBuy
	case CrossoverDown:
		return ActionSell
	default:
		return ActionNone
	}
}
