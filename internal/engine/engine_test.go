package engine

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-strategies/internal/journal"
	"github.com/rxtech-lab/argo-strategies/internal/logger"
	"github.com/rxtech-lab/argo-strategies/internal/strategy"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite

	journal *journal.Journal
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (suite *EngineTestSuite) SetupTest() {
	j, err := journal.New(logger.NewNopLogger())
	suite.Require().NoError(err)
	suite.Require().NoError(j.Initialize())
	suite.journal = j
}

func (suite *EngineTestSuite) TearDownTest() {
	suite.NoError(suite.journal.Close())
}

func (suite *EngineTestSuite) candles(symbol string, closes []float64) []types.Candle {
	epoch := time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)

	candles := make([]types.Candle, len(closes))
	for i, close := range closes {
		candles[i] = types.Candle{
			Symbol: symbol,
			Time:   epoch.Add(time.Duration(i) * time.Minute),
			Open:   close,
			High:   close,
			Low:    close,
			Close:  close,
			Volume: 1000,
		}
	}

	return candles
}

func (suite *EngineTestSuite) TestReplayRoundTrip() {
	engine, err := New(Config{
		StrategyName: "sma_crossover",
		Params:       strategy.Params{"fast_period": 2, "slow_period": 4},
		Mode:         strategy.ModeDelivery,
		Lots:         1,
		Instruments:  []types.Instrument{types.NewEquityInstrument("NIFTY", 50)},
	}, logger.NewNopLogger(), suite.journal)
	suite.Require().NoError(err)

	closes := []float64{10, 10, 10, 12, 14, 16, 14, 12, 10, 8}
	suite.Require().NoError(engine.Replay(suite.candles("NIFTY", closes)))

	suite.Empty(engine.OpenPositions())

	trades, err := suite.journal.Trades("NIFTY")
	suite.Require().NoError(err)
	suite.Require().Len(trades, 2)
	suite.Equal(types.PurchaseTypeBuy, trades[0].Order.Side)
	suite.Equal(12.0, trades[0].ExecutedPrice)
	suite.Equal(types.PurchaseTypeSell, trades[1].Order.Side)
	suite.Equal(12.0, trades[1].ExecutedPrice)

	pnl, err := engine.RealizedPnL()
	suite.Require().NoError(err)
	suite.InDelta(0, pnl, 1e-9)
}

func (suite *EngineTestSuite) TestNonTradableCandlesOnlyFeedHistory() {
	engine, err := New(Config{
		StrategyName: "sma_crossover",
		Params:       strategy.Params{"fast_period": 2, "slow_period": 4},
		Instruments:  []types.Instrument{types.NewEquityInstrument("NIFTY", 50)},
	}, logger.NewNopLogger(), nil)
	suite.Require().NoError(err)

	// Rising series on a symbol outside the bucket must never trade.
	for _, candle := range suite.candles("BANKNIFTY", []float64{10, 10, 10, 12, 14}) {
		suite.Require().NoError(engine.Tick(candle))
	}

	suite.Empty(engine.OpenPositions())
}

func (suite *EngineTestSuite) TestUnknownStrategy() {
	_, err := New(Config{
		StrategyName: "martingale",
		Instruments:  []types.Instrument{types.NewEquityInstrument("NIFTY", 50)},
	}, logger.NewNopLogger(), nil)

	suite.Require().Error(err)
	suite.Equal(errors.ErrCodeUnknownStrategy, errors.GetCode(err))
}

func (suite *EngineTestSuite) TestBadParamsSurfaceAsConfigError() {
	_, err := New(Config{
		StrategyName: "sma_crossover",
		Params:       strategy.Params{"fast_period": 4, "slow_period": 2},
		Instruments:  []types.Instrument{types.NewEquityInstrument("NIFTY", 50)},
	}, logger.NewNopLogger(), nil)

	suite.Require().Error(err)
	suite.Equal(errors.ErrCodeStrategyConfigError, errors.GetCode(err))
}
