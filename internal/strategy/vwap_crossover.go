package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

type vwapCrossoverParams struct {
	// Lookback bounds the window VWAP accumulates over, standing in for a
	// session reset.
	Lookback int `yaml:"lookback" json:"lookback" validate:"required,gt=1"`
}

// VWAPCrossover enters when the close crosses the volume-weighted average
// price and exits on the reverse cross.
type VWAPCrossover struct {
	params vwapCrossoverParams
}

// NewVWAPCrossover creates an uninitialized VWAP crossover strategy.
func NewVWAPCrossover() *VWAPCrossover {
	return &VWAPCrossover{}
}

func (s *VWAPCrossover) Name() string {
	return "vwap_crossover"
}

func (s *VWAPCrossover) Initialize(params Params) error {
	return params.Decode(&s.params)
}

func (s *VWAPCrossover) signal(ctx *Context, instrument types.Instrument) int {
	window := ctx.History.Window(instrument.Key(), s.params.Lookback)
	closes := types.Closes(window)

	vwap := ctx.Indicators.VWAP(types.Highs(window), types.Lows(window), closes, types.Volumes(window))

	return indicator.Crossover(closes, vwap)
}

func (s *VWAPCrossover) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	crossover := s.signal(ctx, instrument)
	if (crossover == types.CrossoverDown && position.Side == types.PositionSideLong) ||
		(crossover == types.CrossoverUp && position.Side == types.PositionSideShort) {
		return true, types.OrderReasonExitSignal
	}

	return false, ""
}

func (s *VWAPCrossover) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *VWAPCrossover) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *VWAPCrossover) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *VWAPCrossover) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
