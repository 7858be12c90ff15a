package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
)

type emaCrossoverParams struct {
	FastPeriod int `yaml:"fast_period" json:"fast_period" validate:"required,gt=0"`
	SlowPeriod int `yaml:"slow_period" json:"slow_period" validate:"required,gt=0"`
}

// EMACrossover trades exponential moving average crosses. Unlike the SMA
// variant it treats a touch-then-break as a cross, so a fast average that
// rides the slow one for a few candles still fires on the break.
type EMACrossover struct {
	params emaCrossoverParams
}

// NewEMACrossover creates an uninitialized EMA crossover strategy.
func NewEMACrossover() *EMACrossover {
	return &EMACrossover{}
}

func (s *EMACrossover) Name() string {
	return "ema_crossover"
}

func (s *EMACrossover) Initialize(params Params) error {
	if err := params.Decode(&s.params); err != nil {
		return err
	}

	if s.params.FastPeriod >= s.params.SlowPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod,
			"fast period %d must be below slow period %d", s.params.FastPeriod, s.params.SlowPeriod)
	}

	return nil
}

func (s *EMACrossover) signal(ctx *Context, instrument types.Instrument) int {
	closes := types.Closes(ctx.History.Window(instrument.Key(), s.params.SlowPeriod*3))

	return indicator.CrossoverInclusive(
		ctx.Indicators.EMA(closes, s.params.FastPeriod),
		ctx.Indicators.EMA(closes, s.params.SlowPeriod),
	)
}

func (s *EMACrossover) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	crossover := s.signal(ctx, instrument)
	if (crossover == types.CrossoverDown && position.Side == types.PositionSideLong) ||
		(crossover == types.CrossoverUp && position.Side == types.PositionSideShort) {
		return true, types.OrderReasonExitSignal
	}

	return false, ""
}

func (s *EMACrossover) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *EMACrossover) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *EMACrossover) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *EMACrossover) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
