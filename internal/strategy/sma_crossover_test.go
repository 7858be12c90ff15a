package strategy

import (
	"testing"

	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/stretchr/testify/suite"
)

type SMACrossoverTestSuite struct {
	suite.Suite
}

func TestSMACrossoverSuite(t *testing.T) {
	suite.Run(t, new(SMACrossoverTestSuite))
}

func (suite *SMACrossoverTestSuite) TestInitializeRejectsBadPeriods() {
	s := NewSMACrossover()

	suite.Error(s.Initialize(Params{"fast_period": 4, "slow_period": 2}))
	suite.Error(s.Initialize(Params{"fast_period": 2}))
	suite.NoError(s.Initialize(Params{"fast_period": 2, "slow_period": 4}))
}

// Full lifecycle over a rise-then-fall series: one entry at the first tick
// the fast average exceeds the slow one, one exit at the crossunder, flat
// ledger on both sides.
func (suite *SMACrossoverTestSuite) TestEndToEndCrossoverCycle() {
	s := NewSMACrossover()
	suite.Require().NoError(s.Initialize(Params{"fast_period": 2, "slow_period": 4}))

	rig := newTestRig(ModeDelivery)
	instrument := types.NewEquityInstrument("NIFTY", 50)
	bucket := []types.Instrument{instrument}

	closes := []float64{10, 10, 10, 12, 14, 16, 14, 12, 10, 8}

	var entryTicks, exitTicks []int

	for tick, close := range closes {
		candle := bar("NIFTY", tick, close)
		rig.history.Append(candle)

		exits, exitMetas, err := s.SelectForExit(rig.ctx, candle, bucket)
		suite.Require().NoError(err)
		for i, leg := range exits {
			exitTicks = append(exitTicks, tick)
			closed, err := s.ExitPosition(rig.ctx, candle, leg, exitMetas[i])
			suite.Require().NoError(err)
			suite.True(closed)
		}

		entries, entryMetas, err := s.SelectForEntry(rig.ctx, candle, bucket)
		suite.Require().NoError(err)
		for i, picked := range entries {
			entryTicks = append(entryTicks, tick)
			suite.Equal(types.ActionBuy, entryMetas[i].Action())
			_, err := s.EnterPosition(rig.ctx, candle, picked, entryMetas[i])
			suite.Require().NoError(err)
		}

		suite.LessOrEqual(rig.ctx.Ledger.Len(), 1, "tick %d", tick)
	}

	suite.Equal([]int{3}, entryTicks)
	suite.Equal([]int{7}, exitTicks)
	suite.Equal(0, rig.ctx.Ledger.Len())
}

// A long protected by an ATR stop exits the first tick the close drops below
// entry minus atr times multiplier, no crossover needed.
func (suite *SMACrossoverTestSuite) TestTrailingStopExit() {
	s := NewSMACrossover()
	suite.Require().NoError(s.Initialize(Params{
		"fast_period": 2, "slow_period": 4,
		"atr_period": 3, "atr_multiplier": 2,
	}))

	rig := newTestRig(ModeIntraday)
	instrument := types.NewEquityInstrument("NIFTY", 50)
	bucket := []types.Instrument{instrument}

	position, err := rig.ctx.Ledger.Open(instrument, types.PositionSideLong, 100, 50, testEpoch, "order-1")
	suite.Require().NoError(err)
	position.Extra["atr"] = 2
	position.Extra["water_mark"] = 100

	for tick, close := range []float64{99, 97, 96.5} {
		candle := bar("NIFTY", tick, close)
		rig.history.Append(candle)

		exits, _, err := s.SelectForExit(rig.ctx, candle, bucket)
		suite.Require().NoError(err)
		suite.Empty(exits, "close %.1f is above the stop", close)
	}

	candle := bar("NIFTY", 3, 95.9)
	rig.history.Append(candle)

	exits, metas, err := s.SelectForExit(rig.ctx, candle, bucket)
	suite.Require().NoError(err)
	suite.Require().Len(exits, 1)
	suite.Equal(types.OrderReasonStopLoss, exitReason(metas[0]))

	closed, err := s.ExitPosition(rig.ctx, candle, exits[0], metas[0])
	suite.NoError(err)
	suite.True(closed)
	suite.Equal(0, rig.ctx.Ledger.Len())
}

// The stop trails the best close since entry.
func (suite *SMACrossoverTestSuite) TestStopTrailsWaterMark() {
	s := NewSMACrossover()
	suite.Require().NoError(s.Initialize(Params{
		"fast_period": 2, "slow_period": 4,
		"atr_period": 3, "atr_multiplier": 2,
	}))

	rig := newTestRig(ModeIntraday)
	instrument := types.NewEquityInstrument("NIFTY", 50)
	bucket := []types.Instrument{instrument}

	position, err := rig.ctx.Ledger.Open(instrument, types.PositionSideLong, 100, 50, testEpoch, "order-1")
	suite.Require().NoError(err)
	position.Extra["atr"] = 2
	position.Extra["water_mark"] = 100

	// Rally to 110 lifts the stop to 106; 97 would have survived the entry
	// stop but breaches the trailed one.
	for tick, close := range []float64{105, 110} {
		candle := bar("NIFTY", tick, close)
		rig.history.Append(candle)

		exits, _, err := s.SelectForExit(rig.ctx, candle, bucket)
		suite.Require().NoError(err)
		suite.Empty(exits)
	}

	candle := bar("NIFTY", 2, 97)
	rig.history.Append(candle)

	exits, _, err := s.SelectForExit(rig.ctx, candle, bucket)
	suite.Require().NoError(err)
	suite.Len(exits, 1)
}

// Selecting for exit twice without closing in between returns identical
// picks.
func (suite *SMACrossoverTestSuite) TestSelectForExitIdempotent() {
	s := NewSMACrossover()
	suite.Require().NoError(s.Initialize(Params{"fast_period": 2, "slow_period": 4}))

	rig := newTestRig(ModeDelivery)
	instrument := types.NewEquityInstrument("NIFTY", 50)
	bucket := []types.Instrument{instrument}

	// Ride the rally into a position, then stop just before the crossunder.
	closes := []float64{10, 10, 10, 12, 14, 16, 14}
	for tick, close := range closes {
		candle := bar("NIFTY", tick, close)
		rig.history.Append(candle)
		suite.Require().NoError(step(s, rig.ctx, candle, bucket))
	}
	suite.Require().Equal(1, rig.ctx.Ledger.Len())

	next := bar("NIFTY", len(closes), 12)
	rig.history.Append(next)

	first, firstMetas, err := s.SelectForExit(rig.ctx, next, bucket)
	suite.Require().NoError(err)
	second, secondMetas, err := s.SelectForExit(rig.ctx, next, bucket)
	suite.Require().NoError(err)

	suite.Require().Len(first, 1)
	suite.Equal(first, second)
	suite.Equal(firstMetas, secondMetas)
}

func (suite *SMACrossoverTestSuite) TestShortEntryGatedByMode() {
	s := NewSMACrossover()
	suite.Require().NoError(s.Initialize(Params{"fast_period": 2, "slow_period": 4}))

	instrument := types.NewEquityInstrument("NIFTY", 50)
	bucket := []types.Instrument{instrument}
	closes := []float64{16, 16, 16, 14, 12, 10}

	run := func(mode Mode) []types.Instrument {
		rig := newTestRig(mode)
		var selected []types.Instrument
		for tick, close := range closes {
			candle := bar("NIFTY", tick, close)
			rig.history.Append(candle)
			entries, _, err := s.SelectForEntry(rig.ctx, candle, bucket)
			suite.Require().NoError(err)
			selected = append(selected, entries...)
		}

		return selected
	}

	suite.NotEmpty(run(ModeIntraday))
	suite.Empty(run(ModeDelivery))
}
