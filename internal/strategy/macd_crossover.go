package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
)

type macdCrossoverParams struct {
	FastPeriod   int `yaml:"fast_period" json:"fast_period" validate:"required,gt=0"`
	SlowPeriod   int `yaml:"slow_period" json:"slow_period" validate:"required,gt=0"`
	SignalPeriod int `yaml:"signal_period" json:"signal_period" validate:"required,gt=0"`
}

// MACDCrossover enters when the MACD line crosses its signal line and exits
// on the reverse cross.
type MACDCrossover struct {
	params macdCrossoverParams
}

// NewMACDCrossover creates an uninitialized MACD crossover strategy.
func NewMACDCrossover() *MACDCrossover {
	return &MACDCrossover{}
}

func (s *MACDCrossover) Name() string {
	return "macd_crossover"
}

func (s *MACDCrossover) Initialize(params Params) error {
	if err := params.Decode(&s.params); err != nil {
		return err
	}

	if s.params.FastPeriod >= s.params.SlowPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod,
			"fast period %d must be below slow period %d", s.params.FastPeriod, s.params.SlowPeriod)
	}

	return nil
}

func (s *MACDCrossover) signal(ctx *Context, instrument types.Instrument) int {
	lookback := (s.params.SlowPeriod + s.params.SignalPeriod) * 3
	closes := types.Closes(ctx.History.Window(instrument.Key(), lookback))

	macd, signal, _ := ctx.Indicators.MACD(closes, s.params.FastPeriod, s.params.SlowPeriod, s.params.SignalPeriod)

	return indicator.Crossover(macd, signal)
}

func (s *MACDCrossover) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	crossover := s.signal(ctx, instrument)
	if (crossover == types.CrossoverDown && position.Side == types.PositionSideLong) ||
		(crossover == types.CrossoverUp && position.Side == types.PositionSideShort) {
		return true, types.OrderReasonExitSignal
	}

	return false, ""
}

func (s *MACDCrossover) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *MACDCrossover) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *MACDCrossover) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *MACDCrossover) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
