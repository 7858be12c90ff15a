package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

type rangeBreakoutParams struct {
	Period int `yaml:"period" json:"period" validate:"required,gt=1"`
}

// RangeBreakout buys a close above the highest high of the trailing range and
// sells short a close below the lowest low. Each fresh extreme fires once;
// positions close on a breakout in the opposite direction.
type RangeBreakout struct {
	params rangeBreakoutParams
}

// NewRangeBreakout creates an uninitialized range breakout strategy.
func NewRangeBreakout() *RangeBreakout {
	return &RangeBreakout{}
}

func (s *RangeBreakout) Name() string {
	return "range_breakout"
}

func (s *RangeBreakout) Initialize(params Params) error {
	return params.Decode(&s.params)
}

func (s *RangeBreakout) signal(ctx *Context, instrument types.Instrument) int {
	window := ctx.History.Window(instrument.Key(), s.params.Period+1)

	return indicator.Breakout(
		types.Highs(window), types.Lows(window), types.Closes(window), s.params.Period)
}

func (s *RangeBreakout) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	breakout := s.signal(ctx, instrument)
	if (breakout == types.CrossoverDown && position.Side == types.PositionSideLong) ||
		(breakout == types.CrossoverUp && position.Side == types.PositionSideShort) {
		return true, types.OrderReasonExitSignal
	}

	return false, ""
}

func (s *RangeBreakout) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *RangeBreakout) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *RangeBreakout) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *RangeBreakout) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
