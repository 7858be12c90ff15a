// Package datasource supplies bar windows to strategies. The host appends one
// candle per instrument per tick; strategies only read windows, most recent
// bar last.
package datasource

import (
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

// History is the read side handed to strategies.
type History interface {
	// Window returns up to n most recent candles for a symbol, oldest first.
	// Fewer than n are returned when less history exists; the signal
	// reducers treat short windows as "no signal".
	Window(symbol string, n int) []types.Candle
	// All returns the full recorded history for a symbol, oldest first.
	All(symbol string) []types.Candle
	// Last returns the most recent candle for a symbol.
	Last(symbol string) (types.Candle, bool)
	// LastPrice returns the latest close for a symbol, the stand-in for a
	// live traded price during replay.
	LastPrice(symbol string) (float64, bool)
}

// MemoryHistory is an append-only in-memory bar store keyed by symbol.
type MemoryHistory struct {
	bars map[string][]types.Candle
}

// NewMemoryHistory creates an empty history store.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{
		bars: make(map[string][]types.Candle),
	}
}

// Append records one candle for its symbol.
func (h *MemoryHistory) Append(candle types.Candle) {
	h.bars[candle.Symbol] = append(h.bars[candle.Symbol], candle)
}

// Window implements History.
func (h *MemoryHistory) Window(symbol string, n int) []types.Candle {
	bars := h.bars[symbol]
	if n <= 0 || len(bars) <= n {
		return bars
	}

	return bars[len(bars)-n:]
}

// All implements History.
func (h *MemoryHistory) All(symbol string) []types.Candle {
	return h.bars[symbol]
}

// Last implements History.
func (h *MemoryHistory) Last(symbol string) (types.Candle, bool) {
	bars := h.bars[symbol]
	if len(bars) == 0 {
		return types.Candle{}, false
	}

	return bars[len(bars)-1], true
}

// LastPrice implements History.
func (h *MemoryHistory) LastPrice(symbol string) (float64, bool) {
	last, ok := h.Last(symbol)
	if !ok {
		return 0, false
	}

	return last.Close, true
}
