// Package strategy contains the trading strategies and the four-callback
// lifecycle contract their host drives them through. Per candle the host
// calls SelectForExit/ExitPosition first, then SelectForEntry/EnterPosition,
// once per instrument, from a single thread.
package strategy

import (
	"github.com/rxtech-lab/argo-strategies/internal/broker"
	"github.com/rxtech-lab/argo-strategies/internal/datasource"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/ledger"
	"github.com/rxtech-lab/argo-strategies/internal/logger"
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

// Mode selects whether positions may be carried overnight. Short entries are
// suppressed outside intraday mode, since going short in delivery mode is
// disallowed by the brokers these strategies target.
type Mode string

const (
	ModeIntraday Mode = "INTRADAY"
	ModeDelivery Mode = "DELIVERY"
)

// Meta is the per-instrument sideband info a selector attaches to its pick.
type Meta map[string]any

// Action returns the action carried by the meta, defaulting to none.
func (m Meta) Action() types.Action {
	if action, ok := m["action"].(types.Action); ok {
		return action
	}

	return types.ActionNone
}

// BaseInstrument returns the base instrument attached by multi-leg selectors.
func (m Meta) BaseInstrument() (types.Instrument, bool) {
	base, ok := m["base_instrument"].(types.Instrument)

	return base, ok
}

// Context carries the collaborators a strategy needs, passed by reference to
// every callback and scoped to one strategy run.
type Context struct {
	// History provides bar windows, most recent bar last
	History datasource.History
	// Gateway places orders
	Gateway broker.OrderGateway
	// Ledger tracks open positions
	Ledger *ledger.Ledger
	// Mapper tracks option legs of multi-leg strategies
	Mapper *ledger.InstrumentMapper
	// Indicators is the numeric backend
	Indicators indicator.Library
	// Logger is the run logger
	Logger *logger.Logger
	// Mode gates short entries
	Mode Mode
	// Lots scales order quantity in instrument lot sizes
	Lots int
}

// Quantity returns the order quantity for an instrument.
func (c *Context) Quantity(instrument types.Instrument) float64 {
	return float64(c.Lots * instrument.LotSize)
}

// AllowShortEntries reports whether SELL entries are permitted.
func (c *Context) AllowShortEntries() bool {
	return c.Mode == ModeIntraday
}

// Strategy is the contract the host scheduler consumes. The selected
// instrument and meta lists returned by the selectors are index-aligned and
// ordered by iteration order over the supplied bucket. Selectors only read
// the ledger; the enter/exit steps mutate it.
type Strategy interface {
	// Name identifies the strategy in orders and logs.
	Name() string
	// Initialize validates and applies the flat parameter map. Called once
	// before the first candle; a returned error aborts startup.
	Initialize(params Params) error
	// SelectForEntry picks instruments to open positions for this candle.
	SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error)
	// EnterPosition places the entry order for one selected instrument.
	EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error)
	// SelectForExit picks instruments whose positions should close.
	SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error)
	// ExitPosition closes the position for one selected instrument.
	// Returns true when the position is fully closed.
	ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error)
}
