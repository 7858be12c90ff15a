package ledger

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	suite.Suite

	ledger     *Ledger
	instrument types.Instrument
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (suite *LedgerTestSuite) SetupTest() {
	suite.ledger = New()
	suite.instrument = types.NewEquityInstrument("NIFTY", 50)
}

func (suite *LedgerTestSuite) TestGetFlatInstrument() {
	_, ok := suite.ledger.Get(suite.instrument)
	suite.False(ok)
	suite.Equal(0, suite.ledger.Len())
}

func (suite *LedgerTestSuite) TestOpenAndGet() {
	openedAt := time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)

	position, err := suite.ledger.Open(suite.instrument, types.PositionSideLong, 22000, 50, openedAt, "order-1")
	suite.NoError(err)
	suite.Equal("NIFTY", position.Symbol)
	suite.Equal(types.PositionSideLong, position.Side)
	suite.Equal(22000.0, position.EntryPrice)

	got, ok := suite.ledger.Get(suite.instrument)
	suite.True(ok)
	suite.Same(position, got)
	suite.Equal(1, suite.ledger.Len())
}

func (suite *LedgerTestSuite) TestAtMostOnePositionPerInstrument() {
	_, err := suite.ledger.Open(suite.instrument, types.PositionSideLong, 22000, 50, time.Now(), "order-1")
	suite.NoError(err)

	_, err = suite.ledger.Open(suite.instrument, types.PositionSideShort, 22100, 50, time.Now(), "order-2")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodePositionExists))
	suite.Equal(1, suite.ledger.Len())
}

func (suite *LedgerTestSuite) TestClose() {
	_, err := suite.ledger.Open(suite.instrument, types.PositionSideLong, 22000, 50, time.Now(), "order-1")
	suite.NoError(err)

	suite.ledger.Close(suite.instrument)

	_, ok := suite.ledger.Get(suite.instrument)
	suite.False(ok)
	suite.Equal(0, suite.ledger.Len())

	// Closing a flat instrument is a no-op
	suite.ledger.Close(suite.instrument)
}

func (suite *LedgerTestSuite) TestExtraState() {
	position, err := suite.ledger.Open(suite.instrument, types.PositionSideLong, 22000, 50, time.Now(), "order-1")
	suite.NoError(err)

	position.Extra["trail_high"] = 22500

	got, _ := suite.ledger.Get(suite.instrument)
	suite.Equal(22500.0, got.Extra["trail_high"])
}

func (suite *LedgerTestSuite) TestSymbols() {
	other := types.NewEquityInstrument("BANKNIFTY", 15)

	_, err := suite.ledger.Open(suite.instrument, types.PositionSideLong, 22000, 50, time.Now(), "order-1")
	suite.NoError(err)
	_, err = suite.ledger.Open(other, types.PositionSideShort, 48000, 15, time.Now(), "order-2")
	suite.NoError(err)

	suite.ElementsMatch([]string{"NIFTY", "BANKNIFTY"}, suite.ledger.Symbols())
}
