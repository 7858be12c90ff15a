package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/pkg/errors"
	"go.uber.org/zap"
)

type shortStraddleParams struct {
	StrikeStep float64 `yaml:"strike_step" json:"strike_step" validate:"required,gt=0"`

	// TargetPercent books profit when the combined premium has decayed this
	// much below the premium collected at entry.
	TargetPercent float64 `yaml:"target_percent" json:"target_percent" validate:"gt=0,lt=100"`
	// StopPercent cuts the straddle when the combined premium has risen this
	// much above the premium collected at entry.
	StopPercent float64 `yaml:"stop_percent" json:"stop_percent" validate:"gt=0"`

	// Warmup is the number of base candles required before the first entry.
	Warmup int `yaml:"warmup" json:"warmup" validate:"gte=1"`
	// MaxReentries caps straddles per base over a run. Zero means no cap.
	MaxReentries int `yaml:"max_reentries" json:"max_reentries" validate:"gte=0"`
}

// ShortStraddle sells the at-the-money call and put of the base instrument
// and manages the combined premium: profit target on decay, stop on expansion.
// It re-enters whenever flat, up to the configured cap. A failed leg order
// unwinds the filled leg and aborts the run, since a naked single leg carries
// risk the strategy never priced.
type ShortStraddle struct {
	params    shortStraddleParams
	reentries map[string]int
}

// NewShortStraddle creates an uninitialized short straddle strategy.
func NewShortStraddle() *ShortStraddle {
	return &ShortStraddle{
		reentries: make(map[string]int),
	}
}

func (s *ShortStraddle) Name() string {
	return "options_short_straddle"
}

func (s *ShortStraddle) Initialize(params Params) error {
	s.params = shortStraddleParams{
		TargetPercent: 30,
		StopPercent:   50,
		Warmup:        1,
	}

	return params.Decode(&s.params)
}

func (s *ShortStraddle) legs() []spreadLeg {
	return []spreadLeg{
		{side: types.PurchaseTypeSell, optionType: types.OptionTypeCall, otmSteps: 0},
		{side: types.PurchaseTypeSell, optionType: types.OptionTypePut, otmSteps: 0},
	}
}

func (s *ShortStraddle) SelectForEntry(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	var selected []types.Instrument
	var metas []Meta

	for _, base := range bucket {
		if base.IsOption() || len(ctx.Mapper.ChildrenOf(base)) > 0 {
			continue
		}
		if s.params.MaxReentries > 0 && s.reentries[base.Key()] >= s.params.MaxReentries {
			continue
		}
		if len(ctx.History.All(base.Key())) < s.params.Warmup {
			continue
		}

		spot, ok := ctx.History.LastPrice(base.Key())
		if !ok {
			continue
		}

		legs := legInstruments(base, spot, s.params.StrikeStep, nextWeeklyExpiry(candle.Time), s.legs())
		if !legsPriced(ctx, legs) {
			ctx.Logger.Warn("skipping straddle entry, legs have no premium history",
				zap.String("strategy", s.Name()),
				zap.String("base", base.Key()),
			)

			continue
		}

		for _, leg := range legs {
			ctx.Mapper.AddMapping(base, leg)
			selected = append(selected, leg)
			metas = append(metas, Meta{
				"action":          types.ActionSell,
				"base_instrument": base,
			})
		}

		s.reentries[base.Key()]++
	}

	return selected, metas, nil
}

func (s *ShortStraddle) EnterPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (types.OrderHandle, error) {
	handle, err := openPosition(ctx, candle, instrument, meta.Action(), s.Name(), optional.None[types.StopLoss]())
	if err != nil {
		if base, ok := meta.BaseInstrument(); ok {
			unwindSpread(ctx, candle, base, s.Name())
		}

		return handle, errors.Wrapf(errors.ErrCodeLegPlacementFail, err,
			"leg order failed for %s, straddle unwound", instrument.Key())
	}

	return handle, nil
}

func (s *ShortStraddle) SelectForExit(ctx *Context, candle types.Candle, bucket []types.Instrument) ([]types.Instrument, []Meta, error) {
	var selected []types.Instrument
	var metas []Meta

	for _, base := range bucket {
		children := ctx.Mapper.ChildrenOf(base)
		if len(children) != 2 {
			continue
		}

		entryPremium := 0.0
		currentPremium := 0.0
		complete := true

		for _, leg := range children {
			position, open := ctx.Ledger.Get(leg)
			if !open {
				complete = false

				break
			}

			price, ok := ctx.History.LastPrice(leg.Key())
			if !ok {
				complete = false

				break
			}

			entryPremium += position.EntryPrice
			currentPremium += price
		}

		if !complete || entryPremium <= 0 {
			continue
		}

		reason := ""
		switch {
		case currentPremium <= entryPremium*(1-s.params.TargetPercent/100):
			reason = types.OrderReasonTakeProfit
		case currentPremium >= entryPremium*(1+s.params.StopPercent/100):
			reason = types.OrderReasonStopLoss
		default:
			continue
		}

		for _, leg := range children {
			selected = append(selected, leg)
			metas = append(metas, Meta{
				"action":          types.ActionExit,
				"base_instrument": base,
				"reason":          reason,
			})
		}
	}

	return selected, metas, nil
}

func (s *ShortStraddle) ExitPosition(ctx *Context, candle types.Candle, instrument types.Instrument, meta Meta) (bool, error) {
	if meta.Action() != types.ActionExit {
		return false, nil
	}

	closed, err := closePosition(ctx, candle, instrument, s.Name(), exitReason(meta))
	if err != nil || !closed {
		return closed, err
	}

	if base, ok := meta.BaseInstrument(); ok && spreadOpenLegs(ctx, base) == 0 {
		ctx.Mapper.RemoveMappings(base)
	}

	return true, nil
}
