package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

type aroonCrossoverParams struct {
	Period int `yaml:"period" json:"period" validate:"required,gt=1"`
}

// AroonCrossover enters when the Aroon up line crosses the down line and
// exits on the reverse cross.
type AroonCrossover struct {
	params aroonCrossoverParams
}

// NewAroonCrossover creates an uninitialized Aroon crossover strategy.
func NewAroonCrossover() *AroonCrossover {
	return &AroonCrossover{}
}

func (s *AroonCrossover) Name() string {
	return "aroon_crossover"
}

func (s *AroonCrossover) Initialize(params Params) error {
	return params.Decode(&s.params)
}

func (s *AroonCrossover) signal(ctx *Context, instrument types.Instrument) int {
	window := ctx.History.Window(instrument.Key(), s.params.Period*3)
	up, down := ctx.Indicators.Aroon(types.Highs(window), types.Lows(window), s.params.Period)

	return indicator.Crossover(up, down)
}

func (s *AroonCrossover) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	crossover := s.signal(ctx, instrument)
	if (crossover == types.CrossoverDown && position.Side == types.PositionSideLong) ||
		(crossover == types.CrossoverUp && position.Side == types.PositionSideShort) {
		return true, types.OrderReasonExitSignal
	}

	return false, ""
}

func (s *AroonCrossover) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *AroonCrossover) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *AroonCrossover) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *AroonCrossover) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
