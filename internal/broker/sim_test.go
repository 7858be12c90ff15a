package broker

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/logger"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/stretchr/testify/suite"
)

type SimGatewayTestSuite struct {
	suite.Suite

	gateway *SimGateway
}

func TestSimGatewaySuite(t *testing.T) {
	suite.Run(t, new(SimGatewayTestSuite))
}

func (suite *SimGatewayTestSuite) SetupTest() {
	suite.gateway = NewSimGateway(logger.NewNopLogger(), nil)
}

func (suite *SimGatewayTestSuite) order(symbol string, side types.PurchaseType, price, quantity float64) *types.ExecuteOrder {
	positionSide := types.PositionSideLong
	if side == types.PurchaseTypeSell {
		positionSide = types.PositionSideShort
	}

	return &types.ExecuteOrder{
		Symbol:       symbol,
		Side:         side,
		Quantity:     quantity,
		Price:        price,
		Time:         time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC),
		Reason:       types.Reason{Reason: types.OrderReasonStrategy, Message: "test"},
		StrategyName: "test_strategy",
		PositionSide: positionSide,
		StopLoss:     optional.None[types.StopLoss](),
	}
}

func (suite *SimGatewayTestSuite) TestFillsAtOrderPrice() {
	handle, err := suite.gateway.PlaceOrder(suite.order("NIFTY", types.PurchaseTypeBuy, 22000, 50))
	suite.NoError(err)
	suite.True(handle.IsComplete())
	suite.Equal(22000.0, handle.Price)
	suite.NotEmpty(handle.ID)
}

func (suite *SimGatewayTestSuite) TestRejectsConfiguredSymbols() {
	suite.gateway.RejectOrdersFor("NIFTY")

	handle, err := suite.gateway.PlaceOrder(suite.order("NIFTY", types.PurchaseTypeBuy, 22000, 50))
	suite.Error(err)
	suite.Equal(types.OrderStatusRejected, handle.Status)
	suite.False(handle.IsComplete())
}

func (suite *SimGatewayTestSuite) TestRejectsInvalidOrder() {
	order := suite.order("NIFTY", types.PurchaseTypeBuy, 22000, 50)
	order.Quantity = 0

	_, err := suite.gateway.PlaceOrder(order)
	suite.Error(err)
}

func (suite *SimGatewayTestSuite) TestRealizedPnLOnRoundTrip() {
	_, err := suite.gateway.PlaceOrder(suite.order("NIFTY", types.PurchaseTypeBuy, 100, 10))
	suite.NoError(err)

	// Closing sell at 110: PnL = (110-100)*10
	order := suite.order("NIFTY", types.PurchaseTypeSell, 110, 10)
	pnl := suite.gateway.fill(order)
	suite.InDelta(100.0, pnl, 1e-9)
}

func (suite *SimGatewayTestSuite) TestRealizedPnLOnShortCover() {
	_, err := suite.gateway.PlaceOrder(suite.order("NIFTY", types.PurchaseTypeSell, 100, 10))
	suite.NoError(err)

	// Covering buy at 90: PnL = (100-90)*10
	order := suite.order("NIFTY", types.PurchaseTypeBuy, 90, 10)
	pnl := suite.gateway.fill(order)
	suite.InDelta(100.0, pnl, 1e-9)
}
