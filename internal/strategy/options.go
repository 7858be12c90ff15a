package strategy

import (
	"math"
	"time"

	"github.com/rxtech-lab/argo-strategies/internal/types"
	"go.uber.org/zap"
)

// spreadLeg describes one leg of an option structure relative to the spot.
type spreadLeg struct {
	side       types.PurchaseType
	optionType types.OptionType
	otmSteps   int
}

// atmStrike rounds the spot price to the nearest strike step.
func atmStrike(spot, step float64) float64 {
	return math.Round(spot/step) * step
}

// legStrike returns the strike otmSteps out of the money. Out of the money is
// above spot for calls and below spot for puts; zero steps is at the money.
func legStrike(spot, step float64, otmSteps int, optionType types.OptionType) float64 {
	atm := atmStrike(spot, step)
	offset := float64(otmSteps) * step

	if optionType == types.OptionTypePut {
		return atm - offset
	}

	return atm + offset
}

// nextWeeklyExpiry returns the first Thursday on or after t, the weekly
// expiry convention of the index options these strategies trade.
func nextWeeklyExpiry(t time.Time) time.Time {
	day := t
	for day.Weekday() != time.Thursday {
		day = day.AddDate(0, 0, 1)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// legInstruments derives the leg instruments for a base at the current spot.
// Legs keep the order of the leg definitions, which the exit selectors rely
// on when reading the spread back out of the mapper.
func legInstruments(base types.Instrument, spot, step float64, expiry time.Time, legs []spreadLeg) []types.Instrument {
	instruments := make([]types.Instrument, len(legs))
	for i, leg := range legs {
		strike := legStrike(spot, step, leg.otmSteps, leg.optionType)
		instruments[i] = types.NewOptionInstrument(base, leg.optionType, strike, expiry)
	}

	return instruments
}

// legsPriced reports whether every leg has premium history to price from.
// A leg without history means the host is not feeding premium bars yet, which
// reads as no signal rather than an error.
func legsPriced(ctx *Context, legs []types.Instrument) bool {
	for _, leg := range legs {
		if _, ok := ctx.History.LastPrice(leg.Key()); !ok {
			return false
		}
	}

	return true
}

// actionForSide maps an order side to the entry action carried in leg meta.
func actionForSide(side types.PurchaseType) types.Action {
	if side == types.PurchaseTypeSell {
		return types.ActionSell
	}

	return types.ActionBuy
}

// unwindSpread closes any already-filled sibling legs after one leg failed to
// place, then drops the base's mappings. Unwind orders that fail themselves
// are logged and skipped; the position record is dropped either way since the
// spread is already broken.
func unwindSpread(ctx *Context, candle types.Candle, base types.Instrument, strategyName string) {
	for _, leg := range ctx.Mapper.ChildrenOf(base) {
		if _, open := ctx.Ledger.Get(leg); !open {
			continue
		}

		if _, err := closePosition(ctx, candle, leg, strategyName, types.OrderReasonLegUnwind); err != nil {
			ctx.Logger.Error("failed to unwind leg",
				zap.String("strategy", strategyName),
				zap.String("symbol", leg.Key()),
				zap.Error(err),
			)
			ctx.Ledger.Close(leg)
		}
	}

	ctx.Mapper.RemoveMappings(base)
}

// spreadOpenLegs counts the legs of a base that still have open positions.
func spreadOpenLegs(ctx *Context, base types.Instrument) int {
	open := 0
	for _, leg := range ctx.Mapper.ChildrenOf(base) {
		if _, ok := ctx.Ledger.Get(leg); ok {
			open++
		}
	}

	return open
}
