package strategy

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
)

type bollingerBandsParams struct {
	Period int     `yaml:"period" json:"period" validate:"required,gt=1"`
	StdDev float64 `yaml:"std_dev" json:"std_dev" validate:"gt=0"`
}

// BollingerBands trades reversals off the band edges: a touch of the lower
// band followed by an up candle buys, a touch of the upper band followed by a
// down candle sells short. Positions close when price reaches the opposite
// band.
type BollingerBands struct {
	params bollingerBandsParams
}

// NewBollingerBands creates an uninitialized Bollinger band strategy.
func NewBollingerBands() *BollingerBands {
	return &BollingerBands{}
}

func (s *BollingerBands) Name() string {
	return "bollinger_bands"
}

func (s *BollingerBands) Initialize(params Params) error {
	s.params = bollingerBandsParams{StdDev: 2}

	return params.Decode(&s.params)
}

func (s *BollingerBands) bands(ctx *Context, instrument types.Instrument) (window []types.Candle, upper, lower float64) {
	window = ctx.History.Window(instrument.Key(), s.params.Period*3)
	closes := types.Closes(window)

	upperBand, _, lowerBand := ctx.Indicators.BollingerBands(closes, s.params.Period, s.params.StdDev)
	if len(upperBand) == 0 {
		return window, math.NaN(), math.NaN()
	}

	return window, upperBand[len(upperBand)-1], lowerBand[len(lowerBand)-1]
}

func (s *BollingerBands) signal(ctx *Context, instrument types.Instrument) int {
	window, upper, lower := s.bands(ctx, instrument)

	return indicator.BandTouchReversal(
		types.Opens(window), types.Lows(window), types.Closes(window), upper, lower)
}

func (s *BollingerBands) shouldExit(ctx *Context, instrument types.Instrument, position *types.Position) (bool, string) {
	_, upper, lower := s.bands(ctx, instrument)
	if math.IsNaN(upper) || math.IsNaN(lower) {
		return false, ""
	}

	latest, ok := ctx.History.LastPrice(instrument.Key())
	if !ok {
		return false, ""
	}

	if position.Side == types.PositionSideLong && latest >= upper {
		return true, types.OrderReasonTakeProfit
	}
	if position.Side == types.PositionSideShort && latest <= lower {
		return true, types.OrderReasonTakeProfit
	}

	// Band touch against the position means the reversion thesis failed.
	crossover := s.signal(ctx, instrument)
	if (crossover == types.CrossoverDown && position.Side == types.PositionSideLong) ||
		(crossover == types.CrossoverUp && position.Side == types.PositionSideShort) {
		return true, types.OrderReasonExitSignal
	}

	return false, ""
}

func (s *BollingerBands) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectEntries(ctx, bucket, s.signal)
}

func (s *BollingerBands) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	return openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
}

func (s *BollingerBands) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	return selectExits(ctx, bucket, s.shouldExit)
}

func (s *BollingerBands) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	return closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
}
