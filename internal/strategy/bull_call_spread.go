package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/indicator"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
	"go.uber.org/zap"
)

type bullCallSpreadParams struct {
	FastPeriod int `yaml:"fast_period" json:"fast_period" validate:"required,gt=0"`
	SlowPeriod int `yaml:"slow_period" json:"slow_period" validate:"required,gt=0"`

	StrikeStep float64 `yaml:"strike_step" json:"strike_step" validate:"required,gt=0"`
	OTMSteps   int     `yaml:"otm_steps" json:"otm_steps" validate:"gte=1"`

	// TrailingStopPercent exits the spread once its value gives back this
	// much from the best value seen since entry.
	TrailingStopPercent float64 `yaml:"trailing_stop_percent" json:"trailing_stop_percent" validate:"required,gt=0,lt=100"`

	// MaxReentries caps how many spreads are opened per base over a run.
	// Zero means no cap.
	MaxReentries int `yaml:"max_reentries" json:"max_reentries" validate:"gte=0"`
}

// BullCallSpread is a two-leg debit spread on the base instrument's options:
// buy the at-the-money call, sell a call a few strikes out. Entry waits for a
// bullish moving average cross on the base; the exit trails the spread value.
// If the second leg order fails the filled leg is unwound and the run aborts,
// since a half-open spread is an unbounded position the strategy never meant
// to hold.
type BullCallSpread struct {
	params    bullCallSpreadParams
	reentries map[string]int
	highest   map[string]float64
}

// NewBullCallSpread creates an uninitialized bull call spread strategy.
func NewBullCallSpread() *BullCallSpread {
	return &BullCallSpread{
		reentries: make(map[string]int),
		highest:   make(map[string]float64),
	}
}

func (s *BullCallSpread) Name() string {
	return "options_bull_call_spread"
}

func (s *BullCallSpread) Initialize(params Params) error {
	s.params = bullCallSpreadParams{OTMSteps: 2}
	if err := params.Decode(&s.params); err != nil {
		return err
	}

	if s.params.FastPeriod >= s.params.SlowPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod,
			"fast period %d must be below slow period %d", s.params.FastPeriod, s.params.SlowPeriod)
	}

	return nil
}

func (s *BullCallSpread) legs() []spreadLeg {
	return []spreadLeg{
		{side: types.PurchaseTypeBuy, optionType: types.OptionTypeCall, otmSteps: 0},
		{side: types.PurchaseTypeSell, optionType: types.OptionTypeCall, otmSteps: s.params.OTMSteps},
	}
}

func (s *BullCallSpread) bullish(ctx *Context, base types.Instrument) bool {
	closes := types.Closes(ctx.History.Window(base.Key(), s.params.SlowPeriod*3))

	crossover := indicator.Crossover(
		ctx.Indicators.SMA(closes, s.params.FastPeriod),
		ctx.Indicators.SMA(closes, s.params.SlowPeriod),
	)

	return crossover == types.CrossoverUp
}

func (s *BullCallSpread) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	var selected []types.Instrument
	var metas []Meta

	for _, base := range bucket {
		if base.IsOption() || len(ctx.Mapper.ChildrenOf(base)) > 0 {
			continue
		}
		if s.params.MaxReentries > 0 && s.reentries[base.Key()] >= s.params.MaxReentries {
			continue
		}
		if !s.bullish(ctx, base) {
			continue
		}

		spot, ok := ctx.History.LastPrice(base.Key())
		if !ok {
			continue
		}

		legs := legInstruments(base, spot, s.params.StrikeStep, nextWeeklyExpiry(candle.Time), s.legs())
		if !legsPriced(ctx, legs) {
			ctx.Logger.Warn("skipping spread entry, legs have no premium history",
				zap.String("strategy", s.Name()),
				zap.String("base", base.Key()),
			)

			continue
		}

		for i, leg := range legs {
			ctx.Mapper.AddMapping(base, leg)
			selected = append(selected, leg)
			metas = append(metas, Meta{
				"action":          actionForSide(s.legs()[i].side),
				"base_instrument": base,
			})
		}

		s.reentries[base.Key()]++
	}

	return selected, metas, nil
}

func (s *BullCallSpread) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	handle, err := openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
	if err != nil {
		if base, ok := meta.BaseInstrument(); ok {
			unwindSpread(ctx, candle, base, s.Name())
			delete(s.highest, base.Key())
		}

		return handle, errors.Wrapf(errors.ErrCodeLegPlacementFail, err,
			"leg order failed for %s, spread unwound", instrument.Key())
	}

	return handle, nil
}

func (s *BullCallSpread) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	var selected []types.Instrument
	var metas []Meta

	for _, base := range bucket {
		children := ctx.Mapper.ChildrenOf(base)
		if len(children) != 2 {
			continue
		}

		buyPos, buyOpen := ctx.Ledger.Get(children[0])
		sellPos, sellOpen := ctx.Ledger.Get(children[1])
		if !buyOpen || !sellOpen {
			continue
		}

		buyPrice, ok := ctx.History.LastPrice(children[0].Key())
		if !ok {
			continue
		}
		sellPrice, ok := ctx.History.LastPrice(children[1].Key())
		if !ok {
			continue
		}

		spread := buyPrice - sellPrice
		entrySpread := buyPos.EntryPrice - sellPos.EntryPrice

		highest, seen := s.highest[base.Key()]
		if !seen {
			highest = entrySpread
		}
		if spread > highest {
			highest = spread
		}
		s.highest[base.Key()] = highest

		if spread > highest*(1-s.params.TrailingStopPercent/100) {
			continue
		}

		for _, leg := range children {
			selected = append(selected, leg)
			metas = append(metas, Meta{
				"action":          types.ActionExit,
				"base_instrument": base,
				"reason":          types.OrderReasonStopLoss,
			})
		}
	}

	return selected, metas, nil
}

func (s *BullCallSpread) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	closed, err := closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
	if err != nil || !closed {
		return closed, err
	}

	if base, ok := meta.BaseInstrument(); ok && spreadOpenLegs(ctx, base) == 0 {
		ctx.Mapper.RemoveMappings(base)
		delete(s.highest, base.Key())
	}

	return true, nil
}
