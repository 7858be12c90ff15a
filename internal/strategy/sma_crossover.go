package strategy

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
)

type smaCrossoverParams struct {
	FastPeriod int `yaml:"fast_period" json:"fast_period" validate:"required,gt=0"`
	SlowPeriod int `yaml:"slow_period" json:"slow_period" validate:"required,gt=0"`

	// ATR trailing stop, disabled when either field is zero.
	ATRPeriod     int     `yaml:"atr_period" json:"atr_period" validate:"gte=0"`
	ATRMultiplier float64 `yaml:"atr_multiplier" json:"atr_multiplier" validate:"gte=0"`
}

// SMACrossover enters when the fast simple moving average crosses the slow
// one and exits on the reverse cross. An optional ATR trailing stop protects
// open positions: the stop trails the best close since entry by
// atr-at-entry times the multiplier.
type SMACrossover struct {
	params smaCrossoverParams
}

// NewSMACrossover creates an uninitialized SMA crossover strategy.
func NewSMACrossover() *SMACrossover {
	return &SMACrossover{}
}

func (s *SMACrossover) Name() string {
	return "sma_crossover"
}

func (s *SMACrossover) Initialize(params Params) error {
	if err := params.Decode(&s.params); err != nil {
		return err
	}

	if s.params.FastPeriod >= s.params.SlowPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod,
			"fast period %d must be below slow period %d", s.params.FastPeriod, s.params.SlowPeriod)
	}

	return nil
}

func (s *SMACrossover) lookback() int {
	return s.params.SlowPeriod * 3
}

func (s *SMACrossover) signal(ctx *Context, instrument types.Instrument) int {
	closes := types.Closes(ctx.History.Window(instrument.Key(), s.lookback()))

	return indicator.Crossover(
		ctx.Indicators.SMA(closes, s.params.FastPeriod),
		ctx.Indicators.SMA(closes, s.params.SlowPeriod),
	)
}

func (s *SMACrossover) stopEnabled() bool {
	return s.params.ATRPeriod > 0 && s.params.ATRMultiplier > 0
}

func (s *SMACrossover) latestATR(ctx *Context, instrument types.Instrument) float64 {
	window := ctx.History.Window(instrument.Key(), s.params.ATRPeriod*3)
	atr := ctx.Indicators.ATR(types.Highs(window), types.Lows(window), types.Closes(window), s.params.ATRPeriod)
	if len(atr) == 0 {
		return math.NaN()
	}

	return atr[len(atr)-1]
}

// stopHit trails the stop behind the best close since entry and reports
// whether the latest close breached it.
func (s *SMACrossover) stopHit(ctx *Context, instrument types.Instrument, position *types.Position) bool {
	atr, ok := position.Extra["atr"]
	if !ok {
		return false
	}

	latest, ok := ctx.History.LastPrice(instrument.Key())
	if !ok {
		return false
	}

	mark := position.Extra["water_mark"]
	distance := atr * s.params.ATRMultiplier

	if position.Side == types.PositionSideLong {
		if latest > mark {
			position.Extra["water_mark"] = latest
			mark = latest
		}

		return latest < mark-distance
	}

	if latest < mark {
		position.Extra["water_mark"] = latest
		mark = latest
	}

	return latest > mark+distance
}

func (s *SMACrossover) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	if s.stopHit(ctx, instrument, position) {
		return true, types.OrderReasonStopLoss
	}

	crossover := s.signal(ctx, instrument)
	if (crossover == types.CrossoverDown && position.Side == types.PositionSideLong) ||
		(crossover == types.CrossoverUp && position.Side == types.PositionSideShort) {
		return true, types.OrderReasonExitSignal
	}

	return false, ""
}

func (s *SMACrossover) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *SMACrossover) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	action := meta.Action()
	stop := optional.None[types.StopLoss]()
	atr := math.NaN()

	if s.stopEnabled() {
		atr = s.latestATR(ctx, instrument)
	}

	price, ok := ctx.History.LastPrice(instrument.Key())
	if !ok {
		price = candle.Close
	}

	if !math.IsNaN(atr) {
		stopPrice := price - atr*s.params.ATRMultiplier
		if action == types.ActionSell {
			stopPrice = price + atr*s.params.ATRMultiplier
		}
		stop = optional.Some(types.StopLoss{Price: stopPrice})
	}

	handle, err := openPosition(ctx, candle, instrument, action, s.Name(), stop)
	if err != nil {
		return handle, err
	}

	if !math.IsNaN(atr) {
		if position, open := ctx.Ledger.Get(instrument); open {
			position.Extra["atr"] = atr
			position.Extra["water_mark"] = price
		}
	}

	return handle, nil
}

func (s *SMACrossover) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *SMACrossover) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
