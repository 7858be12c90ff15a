package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

type obvCrossoverParams struct {
	Period int `yaml:"period" json:"period" validate:"required,gt=1"`
}

// OBVCrossover trades on-balance volume crossing its own moving average, a
// volume-led confirmation of price direction. Unlike the price crossovers it
// exits on any fresh signal, reverse or repeat, since a new OBV cross means
// the volume picture that justified the position is stale.
type OBVCrossover struct {
	params obvCrossoverParams
}

// NewOBVCrossover creates an uninitialized OBV crossover strategy.
func NewOBVCrossover() *OBVCrossover {
	return &OBVCrossover{}
}

func (s *OBVCrossover) Name() string {
	return "obv_crossover"
}

func (s *OBVCrossover) Initialize(params Params) error {
	return params.Decode(&s.params)
}

func (s *OBVCrossover) signal(ctx *Context, instrument types.Instrument) int {
	window := ctx.History.Window(instrument.Key(), s.params.Period*3)

	obv := ctx.Indicators.OBV(types.Closes(window), types.Volumes(window))

	return indicator.Crossover(obv, ctx.Indicators.SMA(obv, s.params.Period))
}

func (s *OBVCrossover) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	if s.signal(ctx, instrument) != types.CrossoverNone {
		return true, types.OrderReasonExitSignal
	}

	return false, ""
}

func (s *OBVCrossover) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *OBVCrossover) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *OBVCrossover) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *OBVCrossover) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
