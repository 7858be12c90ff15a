package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
)

type reverseRSIParams struct {
	Period     int     `yaml:"period" json:"period" validate:"required,gt=1"`
	Overbought float64 `yaml:"overbought" json:"overbought" validate:"gt=0,lt=100"`
	Oversold   float64 `yaml:"oversold" json:"oversold" validate:"gt=0,lt=100"`
}

// ReverseRSICrossover fades RSI extremes instead of following them: it buys
// when RSI drops through the oversold level and sells short when RSI pushes
// through the overbought level, betting on reversion. Positions close when
// RSI reaches the opposite extreme.
type ReverseRSICrossover struct {
	params reverseRSIParams
}

// NewReverseRSICrossover creates an uninitialized reverse RSI strategy.
func NewReverseRSICrossover() *ReverseRSICrossover {
	return &ReverseRSICrossover{}
}

func (s *ReverseRSICrossover) Name() string {
	return "reverse_rsi_crossover"
}

func (s *ReverseRSICrossover) Initialize(params Params) error {
	s.params = reverseRSIParams{
		Overbought: 70,
		Oversold:   30,
	}
	if err := params.Decode(&s.params); err != nil {
		return err
	}

	if s.params.Oversold >= s.params.Overbought {
		return errors.Newf(errors.ErrCodeInvalidThreshold,
			"oversold level %.1f must be below overbought level %.1f", s.params.Oversold, s.params.Overbought)
	}

	return nil
}

func (s *ReverseRSICrossover) rsi(ctx *Context, instrument types.Instrument) []float64 {
	closes := types.Closes(ctx.History.Window(instrument.Key(), s.params.Period*4))

	return ctx.Indicators.RSI(closes, s.params.Period)
}

func (s *ReverseRSICrossover) signal(ctx *Context, instrument types.Instrument) int {
	rsi := s.rsi(ctx, instrument)

	if indicator.CrossoverLevel(rsi, s.params.Oversold) == types.CrossoverDown {
		return types.CrossoverUp
	}
	if indicator.CrossoverLevel(rsi, s.params.Overbought) == types.CrossoverUp {
		return types.CrossoverDown
	}

	return types.CrossoverNone
}

func (s *ReverseRSICrossover) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	rsi := s.rsi(ctx, instrument)

	if position.Side == types.PositionSideLong &&
		indicator.CrossoverLevel(rsi, s.params.Overbought) == types.CrossoverUp {
		return true, types.OrderReasonTakeProfit
	}
	if position.Side == types.PositionSideShort &&
		indicator.CrossoverLevel(rsi, s.params.Oversold) == types.CrossoverDown {
		return true, types.OrderReasonTakeProfit
	}

	return false, ""
}

func (s *ReverseRSICrossover) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *ReverseRSICrossover) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *ReverseRSICrossover) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *ReverseRSICrossover) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
