package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

type stochasticCrossoverParams struct {
	FastKPeriod int `yaml:"fast_k_period" json:"fast_k_period" validate:"required,gt=1"`
	SlowKPeriod int `yaml:"slow_k_period" json:"slow_k_period" validate:"required,gt=0"`
	SlowDPeriod int `yaml:"slow_d_period" json:"slow_d_period" validate:"required,gt=0"`
}

// StochasticCrossover enters when the slow %K line crosses the %D line and
// exits on the reverse cross.
type StochasticCrossover struct {
	params stochasticCrossoverParams
}

// NewStochasticCrossover creates an uninitialized stochastic crossover strategy.
func NewStochasticCrossover() *StochasticCrossover {
	return &StochasticCrossover{}
}

func (s *StochasticCrossover) Name() string {
	return "stochastic_crossover"
}

func (s *StochasticCrossover) Initialize(params Params) error {
	return params.Decode(&s.params)
}

func (s *StochasticCrossover) signal(ctx *Context, instrument types.Instrument) int {
	lookback := (s.params.FastKPeriod + s.params.SlowKPeriod + s.params.SlowDPeriod) * 3
	window := ctx.History.Window(instrument.Key(), lookback)

	slowK, slowD := ctx.Indicators.Stochastic(
		types.Highs(window), types.Lows(window), types.Closes(window),
		s.params.FastKPeriod, s.params.SlowKPeriod, s.params.SlowDPeriod)

	return indicator.Crossover(slowK, slowD)
}

func (s *StochasticCrossover) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	crossover := s.signal(ctx, instrument)
	if (crossover == types.CrossoverDown && position.Side == types.PositionSideLong) ||
		(crossover == types.CrossoverUp && position.Side == types.PositionSideShort) {
		return true, types.OrderReasonExitSignal
	}

	return false, ""
}

func (s *StochasticCrossover) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *StochasticCrossover) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *StochasticCrossover) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *StochasticCrossover) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
