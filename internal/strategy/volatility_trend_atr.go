package strategy

import (
	"math"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

type volatilityTrendATRParams struct {
	ATRPeriod  int     `yaml:"atr_period" json:"atr_period" validate:"required,gt=1"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier" validate:"gt=0"`
}

// trendState caches the per-instrument trend between candles. The change code
// is memoized by candle time so the exit and entry cycles of the same candle
// see one consistent evaluation.
type trendState struct {
	evalTime time.Time
	trend    int
	change   int
}

// VolatilityTrendATR follows trend flips detected with an ATR band around the
// previous close: a close beyond previous close plus the band flips the trend
// up, beyond minus the band flips it down. Entries ride a fresh flip, exits
// fire when the trend flips against the position.
type VolatilityTrendATR struct {
	params volatilityTrendATRParams
	state  map[string]trendState
}

// NewVolatilityTrendATR creates an uninitialized volatility trend strategy.
func NewVolatilityTrendATR() *VolatilityTrendATR {
	return &VolatilityTrendATR{
		state: make(map[string]trendState),
	}
}

func (s *VolatilityTrendATR) Name() string {
	return "volatility_trend_atr"
}

func (s *VolatilityTrendATR) Initialize(params Params) error {
	s.params = volatilityTrendATRParams{Multiplier: 1}

	return params.Decode(&s.params)
}

// evaluate advances the cached trend for one candle and returns the flip
// code: ±1 on a fresh flip, 0 otherwise.
func (s *VolatilityTrendATR) evaluate(ctx *Context, candle types.Candle, instrument types.Instrument) int {
	key := instrument.Key()

	cached := s.state[key]
	if cached.evalTime.Equal(candle.Time) {
		return cached.change
	}

	window := ctx.History.Window(key, s.params.ATRPeriod*3)
	closes := types.Closes(window)
	atr := ctx.Indicators.ATR(types.Highs(window), types.Lows(window), closes, s.params.ATRPeriod)

	next := trendState{evalTime: candle.Time, trend: cached.trend}

	if len(closes) >= 2 && !math.IsNaN(atr[len(atr)-1]) {
		latest := closes[len(closes)-1]
		previous := closes[len(closes)-2]
		band := atr[len(atr)-1] * s.params.Multiplier

		switch {
		case latest > previous+band:
			next.trend = types.CrossoverUp
		case latest < previous-band:
			next.trend = types.CrossoverDown
		}

		if next.trend != cached.trend && next.trend != 0 {
			next.change = next.trend
		}
	}

	s.state[key] = next

	return next.change
}

func (s *VolatilityTrendATR) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, func(ctx *Context, instrument types.Instrument) int {
		return s.evaluate(ctx, candle, instrument)
	})
}

func (s *VolatilityTrendATR) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *VolatilityTrendATR) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, func(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
		change := s.evaluate(ctx, candle, instrument)
		if (change == types.CrossoverDown && position.Side == types.PositionSideLong) ||
			(change == types.CrossoverUp && position.Side == types.PositionSideShort) {
			return true, types.OrderReasonExitSignal
		}

		return false, ""
	})
}

func (s *VolatilityTrendATR) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
