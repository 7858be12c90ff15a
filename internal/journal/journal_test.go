package journal

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-strategies/internal/logger"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/stretchr/testify/suite"
)

type JournalTestSuite struct {
	suite.Suite

	journal *Journal
}

func TestJournalSuite(t *testing.T) {
	suite.Run(t, new(JournalTestSuite))
}

func (suite *JournalTestSuite) SetupTest() {
	j, err := New(logger.NewNopLogger())
	suite.Require().NoError(err)
	suite.Require().NoError(j.Initialize())
	suite.journal = j
}

func (suite *JournalTestSuite) TearDownTest() {
	suite.NoError(suite.journal.Close())
}

func (suite *JournalTestSuite) handle(id, symbol string, side types.PurchaseType, price float64) types.OrderHandle {
	return types.OrderHandle{
		ID:       id,
		Symbol:   symbol,
		Side:     side,
		Status:   types.OrderStatusFilled,
		Price:    price,
		Quantity: 50,
		Time:     time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC),
	}
}

func (suite *JournalTestSuite) TestRecordAndQueryTrades() {
	reason := types.Reason{Reason: types.OrderReasonStrategy, Message: "entry"}
	handle := suite.handle("order-1", "NIFTY", types.PurchaseTypeBuy, 22000)

	suite.NoError(suite.journal.RecordOrder(handle, reason, "ema_crossover"))
	suite.NoError(suite.journal.RecordTrade(types.Trade{
		Order:         handle,
		ExecutedAt:    handle.Time,
		ExecutedQty:   50,
		ExecutedPrice: 22000,
		PnL:           0,
		StrategyName:  "ema_crossover",
		Reason:        reason,
	}))

	trades, err := suite.journal.Trades("NIFTY")
	suite.NoError(err)
	suite.Len(trades, 1)
	suite.Equal("order-1", trades[0].Order.ID)
	suite.Equal(types.PurchaseTypeBuy, trades[0].Order.Side)
	suite.Equal(22000.0, trades[0].ExecutedPrice)
}

func (suite *JournalTestSuite) TestTradesFilterBySymbol() {
	reason := types.Reason{Reason: types.OrderReasonStrategy}

	for i, symbol := range []string{"NIFTY", "BANKNIFTY"} {
		handle := suite.handle("order-"+symbol, symbol, types.PurchaseTypeBuy, float64(100+i))
		suite.NoError(suite.journal.RecordTrade(types.Trade{Order: handle, ExecutedAt: handle.Time, Reason: reason}))
	}

	trades, err := suite.journal.Trades("NIFTY")
	suite.NoError(err)
	suite.Len(trades, 1)

	all, err := suite.journal.Trades("")
	suite.NoError(err)
	suite.Len(all, 2)
}

func (suite *JournalTestSuite) TestRealizedPnL() {
	reason := types.Reason{Reason: types.OrderReasonExitSignal}

	pnls := []float64{150.5, -40.25}
	for i, pnl := range pnls {
		handle := suite.handle("order-"+string(rune('a'+i)), "NIFTY", types.PurchaseTypeSell, 100)
		suite.NoError(suite.journal.RecordTrade(types.Trade{Order: handle, ExecutedAt: handle.Time, PnL: pnl, Reason: reason}))
	}

	total, err := suite.journal.RealizedPnL()
	suite.NoError(err)
	suite.InDelta(110.25, total, 1e-9)
}

func (suite *JournalTestSuite) TestRealizedPnLEmpty() {
	total, err := suite.journal.RealizedPnL()
	suite.NoError(err)
	suite.Equal(0.0, total)
}
